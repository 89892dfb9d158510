package pull_request_port

//go:generate go run go.uber.org/mock/mockgen -source=pull_request_port.go -destination=../../mocks/mock_pull_request_port.go -package=mocks PullRequestPort

import (
	"context"

	"unrot/domain"
)

type PullRequestPort interface {
	// FetchPullRequests returns the most recently updated pull requests of repo.
	FetchPullRequests(ctx context.Context, repo domain.RepoRef) ([]domain.PullRequest, error)
	// FetchFeedItems never fails; source errors yield an empty slice.
	FetchFeedItems(ctx context.Context, repo domain.RepoRef) []domain.FeedItem
}
