package html_parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"unrot/domain"
)

// excludedSections lists section ids whose articles are never emitted (compared case-insensitively).
var excludedSections = []string{"sponsor"}

var readTimePattern = regexp.MustCompile(`\s*\((\d+)\s+minute\s+read\)`)

// ParseDigest converts one digest page into articles in document order:
// section order first, then article order within the section.
// Items missing a link or a title are dropped.
func ParseDigest(markup string) []domain.Article {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return []domain.Article{}
	}

	articles := make([]domain.Article, 0)

	doc.Find("section").Each(func(_ int, section *goquery.Selection) {
		if isExcludedSection(section.AttrOr("id", "")) {
			return
		}

		sectionName := strings.TrimSpace(section.Find("header h3").First().Text())

		section.Find("article").Each(func(_ int, item *goquery.Selection) {
			url := strings.TrimSpace(item.Find("a").First().AttrOr("href", ""))
			rawTitle := strings.TrimSpace(item.Find("h3").First().Text())
			summary := strings.TrimSpace(item.Find(".newsletter-html").Text())

			title, readTime := splitReadTime(rawTitle)
			if url == "" || title == "" {
				return
			}

			articles = append(articles, domain.Article{
				Title:    title,
				URL:      url,
				Summary:  summary,
				Section:  sectionName,
				ReadTime: readTime,
			})
		})
	})

	return articles
}

// splitReadTime strips the first "(N minute read)" annotation from a raw title.
func splitReadTime(rawTitle string) (string, int) {
	loc := readTimePattern.FindStringSubmatchIndex(rawTitle)
	if loc == nil {
		return strings.TrimSpace(rawTitle), 0
	}

	minutes, err := strconv.Atoi(rawTitle[loc[2]:loc[3]])
	if err != nil {
		minutes = 0
	}

	title := rawTitle[:loc[0]] + rawTitle[loc[1]:]
	return strings.TrimSpace(title), minutes
}

func isExcludedSection(id string) bool {
	for _, excluded := range excludedSections {
		if strings.EqualFold(id, excluded) {
			return true
		}
	}
	return false
}
