package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAuthorizeURL(t *testing.T) {
	p := NewGitHubProvider("client-id", "client-secret")
	got := p.AuthorizeURL("state-123", "https://papers.example.com/auth/callback")

	if !strings.HasPrefix(got, "https://github.com/login/oauth/authorize?") {
		t.Fatalf("AuthorizeURL() = %q", got)
	}
	for _, want := range []string{"client_id=client-id", "state=state-123", "scope=read%3Auser+user%3Aemail"} {
		if !strings.Contains(got, want) {
			t.Errorf("AuthorizeURL() missing %q in %q", want, got)
		}
	}
}

func TestExchange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("code") != "the-code" || r.PostForm.Get("client_secret") != "client-secret" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "gho_token"})
	}))
	defer srv.Close()

	p := NewGitHubProviderWithBaseURLs("client-id", "client-secret", srv.URL+"/authorize", srv.URL, srv.URL)
	token, err := p.Exchange(context.Background(), "the-code")
	if err != nil {
		t.Fatalf("Exchange() error = %v", err)
	}
	if token != "gho_token" {
		t.Errorf("Exchange() = %q", token)
	}
}

func TestExchangeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "bad_verification_code",
			"error_description": "The code passed is incorrect or expired.",
		})
	}))
	defer srv.Close()

	p := NewGitHubProviderWithBaseURLs("client-id", "client-secret", srv.URL+"/authorize", srv.URL, srv.URL)
	if _, err := p.Exchange(context.Background(), "stale-code"); err == nil {
		t.Fatal("Exchange() should surface provider errors")
	}
}

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user" {
			t.Errorf("path = %s, want /user", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer gho_token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         42,
			"login":      "dan",
			"name":       "Dan",
			"email":      "dan@example.com",
			"avatar_url": "https://avatars.example.com/42",
		})
	}))
	defer srv.Close()

	p := NewGitHubProviderWithBaseURLs("client-id", "client-secret", srv.URL+"/authorize", srv.URL+"/token", srv.URL)
	profile, err := p.FetchProfile(context.Background(), "gho_token")
	if err != nil {
		t.Fatalf("FetchProfile() error = %v", err)
	}
	if profile.ID != "github:42" {
		t.Errorf("profile.ID = %q, want github:42", profile.ID)
	}
	if profile.Username != "dan" || profile.Name != "Dan" {
		t.Errorf("profile = %+v", profile)
	}
}
