package domain

import (
	"errors"
	"strings"
)

var ErrInvalidRepoRef = errors.New("repository reference must be owner/repo")

// RepoRef identifies a tracked code repository.
type RepoRef struct {
	Owner string
	Repo  string
}

func NewRepoRef(owner, repo string) (RepoRef, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" || strings.Contains(owner, "/") || strings.Contains(repo, "/") {
		return RepoRef{}, ErrInvalidRepoRef
	}
	return RepoRef{Owner: owner, Repo: repo}, nil
}

// ParseRepoRef parses the "owner/repo" form stored in the tracked repo set.
func ParseRepoRef(fullName string) (RepoRef, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok {
		return RepoRef{}, ErrInvalidRepoRef
	}
	return NewRepoRef(owner, repo)
}

func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

func (r RepoRef) String() string {
	return r.FullName()
}
