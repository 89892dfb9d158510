package domain

import "time"

// UnknownAuthor is used when the source omits the PR author.
const UnknownAuthor = "unknown"

// PullRequest is the normalized summary of a pull request from a tracked repository.
type PullRequest struct {
	ID           int64     `json:"id"`
	Number       int       `json:"number"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	State        string    `json:"state"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	HTMLURL      string    `json:"htmlUrl"`
	RepoFullName string    `json:"repoFullName"`
}
