// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, reading, rendering, creating, updating,
// and deleting articles.
package article

import (
	"errors"
	"net/http"
	"time"

	"dan-papers/internal/domain/entity"
	artUC "dan-papers/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorImage string    `json:"authorImage,omitempty"`
	Date        string    `json:"date"`
	ReadTime    int       `json:"readTime"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`
	Content     string    `json:"content"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func fromEntity(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		AuthorID:    a.AuthorID,
		AuthorName:  a.AuthorName,
		AuthorImage: a.AuthorImage,
		Date:        a.Date,
		ReadTime:    a.ReadTime,
		Tags:        tags,
		Image:       a.Image,
		Content:     a.Content,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// writeRequest is the JSON body shared by the create and update endpoints.
type writeRequest struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, artUC.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, artUC.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
