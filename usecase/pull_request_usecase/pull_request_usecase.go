package pull_request_usecase

import (
	"context"

	"unrot/domain"
	"unrot/port/pull_request_port"
	"unrot/utils/errors"
)

type PullRequestUsecase struct {
	pulls pull_request_port.PullRequestPort
}

func NewPullRequestUsecase(pulls pull_request_port.PullRequestPort) *PullRequestUsecase {
	return &PullRequestUsecase{pulls: pulls}
}

// ListPullRequests queries the code host directly; errors are returned, not swallowed.
func (u *PullRequestUsecase) ListPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error) {
	ref, err := domain.NewRepoRef(owner, repo)
	if err != nil {
		return nil, errors.InvalidInputError("owner and repo are required", err, map[string]interface{}{
			"owner": owner,
			"repo":  repo,
		})
	}
	return u.pulls.FetchPullRequests(ctx, ref)
}
