package news_usecase

import (
	"context"
	"slices"
	"time"

	"unrot/domain"
	"unrot/port/digest_port"
	"unrot/utils/errors"
)

// NewsUsecase serves digest articles by category and date.
type NewsUsecase struct {
	digest       digest_port.DigestPort
	defaultTopic string
	now          func() time.Time
}

func NewNewsUsecase(digest digest_port.DigestPort, defaultTopic string) *NewsUsecase {
	if defaultTopic == "" {
		defaultTopic = "tech"
	}
	return &NewsUsecase{digest: digest, defaultTopic: defaultTopic, now: time.Now}
}

func (u *NewsUsecase) Categories() []string {
	return slices.Clone(domain.DigestCategories)
}

func (u *NewsUsecase) FetchNews(ctx context.Context, category, date string) ([]domain.Article, error) {
	if !domain.IsDigestCategory(category) {
		return nil, errors.InvalidInputError("invalid category", domain.ErrUnknownCategory, map[string]interface{}{
			"category": category,
		})
	}
	if err := domain.ValidateDigestDate(date); err != nil {
		return nil, errors.InvalidInputError("invalid date", err, map[string]interface{}{"date": date})
	}
	return u.digest.FetchDigest(ctx, category, date)
}

func (u *NewsUsecase) FetchToday(ctx context.Context, category string) ([]domain.Article, error) {
	return u.FetchNews(ctx, category, domain.DigestDate(u.now()))
}

// CatchUp returns the default topic's digest for date.
func (u *NewsUsecase) CatchUp(ctx context.Context, date string) ([]domain.Article, error) {
	return u.FetchNews(ctx, u.defaultTopic, date)
}
