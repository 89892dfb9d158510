package catalog_usecase

import (
	"math/rand/v2"
	"slices"

	"unrot/domain"
	"unrot/driver/catalog_driver"
	"unrot/utils/errors"
)

// CatalogUsecase answers lookups over the static books and math datasets.
type CatalogUsecase struct {
	catalog *catalog_driver.Catalog
	intN    func(n int) int
}

func NewCatalogUsecase(catalog *catalog_driver.Catalog) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog, intN: rand.IntN}
}

func (u *CatalogUsecase) BookCategories() []string {
	return slices.Clone(domain.BookCategories)
}

// Books lists every book, or only those in category when it is set.
func (u *CatalogUsecase) Books(category string) []domain.Book {
	if category == "" {
		return slices.Clone(u.catalog.Books)
	}
	out := make([]domain.Book, 0)
	for _, b := range u.catalog.Books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

func (u *CatalogUsecase) Book(id string) (domain.Book, error) {
	for _, b := range u.catalog.Books {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Book{}, errors.NotFoundError("Book not found", domain.ErrBookNotFound, map[string]interface{}{"id": id})
}

// MathCategories lists topic categories in first-seen order.
func (u *CatalogUsecase) MathCategories() []string {
	out := make([]string, 0)
	for _, topic := range u.catalog.MathTopics {
		if !slices.Contains(out, topic.Category) {
			out = append(out, topic.Category)
		}
	}
	return out
}

func (u *CatalogUsecase) MathTopics() []domain.MathTopicSummary {
	out := make([]domain.MathTopicSummary, 0, len(u.catalog.MathTopics))
	for _, topic := range u.catalog.MathTopics {
		out = append(out, topic.Summary())
	}
	return out
}

func (u *CatalogUsecase) MathTopic(id string) (domain.MathTopic, error) {
	for _, topic := range u.catalog.MathTopics {
		if topic.ID == id {
			return topic, nil
		}
	}
	return domain.MathTopic{}, errors.NotFoundError("Topic not found", domain.ErrMathTopicNotFound, map[string]interface{}{"id": id})
}

func (u *CatalogUsecase) RandomMathTopic() (domain.MathTopic, error) {
	if len(u.catalog.MathTopics) == 0 {
		return domain.MathTopic{}, errors.NotFoundError("Topic not found", domain.ErrMathTopicNotFound, nil)
	}
	return u.catalog.MathTopics[u.intN(len(u.catalog.MathTopics))], nil
}
