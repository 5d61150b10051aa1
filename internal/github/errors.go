package github

import "errors"

// Common GitHub API errors.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when authentication fails.
	ErrUnauthorized = errors.New("unauthorized: check your GitHub token")
	// ErrForbidden is returned when authorization fails.
	ErrForbidden = errors.New("forbidden")
	// ErrRateLimited is returned when the API rate limit is exhausted.
	ErrRateLimited = errors.New("rate limited: set GITHUB_TOKEN or retry later")
)
