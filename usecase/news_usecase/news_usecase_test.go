package news_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"unrot/domain"
	"unrot/mocks"
	"unrot/utils/errors"
)

func TestNewsUsecase_FetchNews(t *testing.T) {
	articles := []domain.Article{{Title: "A", URL: "https://a"}}

	tests := []struct {
		name      string
		category  string
		date      string
		setupMock func(*mocks.MockDigestPort)
		want      []domain.Article
		check     func(t *testing.T, err error)
	}{
		{
			name:     "valid category and date",
			category: "ai",
			date:     "2026-10-16",
			setupMock: func(m *mocks.MockDigestPort) {
				m.EXPECT().FetchDigest(gomock.Any(), "ai", "2026-10-16").Return(articles, nil)
			},
			want: articles,
		},
		{
			name:      "unknown category",
			category:  "sports",
			date:      "2026-10-16",
			setupMock: func(*mocks.MockDigestPort) {},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsInvalidInput(err))
				assert.ErrorIs(t, err, domain.ErrUnknownCategory)
			},
		},
		{
			name:      "malformed date",
			category:  "tech",
			date:      "yesterday",
			setupMock: func(*mocks.MockDigestPort) {},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsInvalidInput(err))
				assert.ErrorIs(t, err, domain.ErrInvalidDate)
			},
		},
		{
			name:     "source failure passes through",
			category: "tech",
			date:     "2026-10-16",
			setupMock: func(m *mocks.MockDigestPort) {
				m.EXPECT().FetchDigest(gomock.Any(), "tech", "2026-10-16").
					Return(nil, errors.SourceUnavailableError("status 500", nil, nil))
			},
			check: func(t *testing.T, err error) {
				assert.True(t, errors.IsSourceUnavailable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			digest := mocks.NewMockDigestPort(ctrl)
			tt.setupMock(digest)

			got, err := NewNewsUsecase(digest, "tech").FetchNews(context.Background(), tt.category, tt.date)

			if tt.check != nil {
				require.Error(t, err)
				tt.check(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewsUsecase_FetchTodayAndCatchUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	digest := mocks.NewMockDigestPort(ctrl)
	u := NewNewsUsecase(digest, "tech")
	u.now = func() time.Time { return time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC) }

	digest.EXPECT().FetchDigest(gomock.Any(), "devops", "2026-10-16").Return([]domain.Article{}, nil)
	digest.EXPECT().FetchDigest(gomock.Any(), "tech", "2026-10-01").Return([]domain.Article{}, nil)

	_, err := u.FetchToday(context.Background(), "devops")
	require.NoError(t, err)
	_, err = u.CatchUp(context.Background(), "2026-10-01")
	require.NoError(t, err)

	_, err = u.CatchUp(context.Background(), "10/01/2026")
	assert.True(t, errors.IsInvalidInput(err))
}

func TestNewsUsecase_Categories(t *testing.T) {
	u := NewNewsUsecase(nil, "")
	categories := u.Categories()

	assert.Equal(t, domain.DigestCategories, categories)
	categories[0] = "changed"
	assert.Equal(t, "tech", domain.DigestCategories[0])
}
