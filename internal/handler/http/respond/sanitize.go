package respond

import "regexp"

var (
	// Order matters: the anthropic pattern is more specific and must run
	// before the generic OpenAI pattern.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// GitHub tokens used by the legacy patcher.
	githubTokenPattern = regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`)

	// Credentials embedded in a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError masks credentials in an error message before it reaches a log.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = githubTokenPattern.ReplaceAllString(msg, "gh*_****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}
