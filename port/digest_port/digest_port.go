package digest_port

//go:generate go run go.uber.org/mock/mockgen -source=digest_port.go -destination=../../mocks/mock_digest_port.go -package=mocks DigestPort

import (
	"context"

	"unrot/domain"
)

// DigestPort fetches the parsed newsletter digest for a category and date.
type DigestPort interface {
	FetchDigest(ctx context.Context, category, date string) ([]domain.Article, error)
}
