package pull_request_usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"unrot/domain"
	"unrot/mocks"
	"unrot/utils/errors"
)

func TestPullRequestUsecase_ListPullRequests(t *testing.T) {
	t.Run("delegates to the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pulls := mocks.NewMockPullRequestPort(ctrl)
		ref := domain.RepoRef{Owner: "golang", Repo: "go"}
		want := []domain.PullRequest{{Number: 1, Title: "docs: clarify", Author: "gopher"}}
		pulls.EXPECT().FetchPullRequests(gomock.Any(), ref).Return(want, nil)

		got, err := NewPullRequestUsecase(pulls).ListPullRequests(context.Background(), "golang", "go")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rate limit is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pulls := mocks.NewMockPullRequestPort(ctrl)
		pulls.EXPECT().FetchPullRequests(gomock.Any(), gomock.Any()).
			Return(nil, errors.RateLimitedError("github rate limit exceeded", nil, nil))

		_, err := NewPullRequestUsecase(pulls).ListPullRequests(context.Background(), "o", "r")

		assert.True(t, errors.IsRateLimited(err))
	})

	t.Run("rejects malformed reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pulls := mocks.NewMockPullRequestPort(ctrl)

		_, err := NewPullRequestUsecase(pulls).ListPullRequests(context.Background(), "o/x", "r")

		assert.True(t, errors.IsInvalidInput(err))
		assert.ErrorIs(t, err, domain.ErrInvalidRepoRef)
	})
}
