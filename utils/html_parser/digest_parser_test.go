package html_parser

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrot/domain"
)

func loadFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/digest_sample.html")
	require.NoError(t, err)
	return string(data)
}

func TestParseDigest_Fixture(t *testing.T) {
	articles := ParseDigest(loadFixture(t))

	require.Len(t, articles, 3)

	assert.Equal(t, domain.Article{
		Title:    "OpenAI Launches GPT-5 with Major Reasoning Upgrades",
		URL:      "https://example.com/article-1",
		Summary:  "The new model shows large gains in mathematical reasoning and code generation.",
		Section:  "Big Tech & Startups",
		ReadTime: 4,
	}, articles[0])

	assert.Equal(t, "Chip Startup Raises $400M", articles[1].Title)
	assert.Equal(t, "Funding round led by sovereign funds.", articles[1].Summary)
	assert.Equal(t, 0, articles[1].ReadTime)

	assert.Equal(t, "Why Go Generics Took a Decade", articles[2].Title)
	assert.Equal(t, "Programming, Design & Data Science", articles[2].Section)
	assert.Equal(t, 5, articles[2].ReadTime)
	assert.Empty(t, articles[2].Summary)
}

func TestParseDigest_ExcludesSponsorSections(t *testing.T) {
	articles := ParseDigest(loadFixture(t))

	for _, article := range articles {
		assert.NotEqual(t, "Sponsor", article.Section)
		assert.NotContains(t, article.URL, "sponsor.example.com")
	}
}

func TestParseDigest_TitlesHaveNoReadTimeAnnotation(t *testing.T) {
	annotation := regexp.MustCompile(`\(\d+\s+minute\s+read\)`)

	for _, article := range ParseDigest(loadFixture(t)) {
		assert.False(t, annotation.MatchString(article.Title), "title %q still has annotation", article.Title)
	}
}

func TestParseDigest_IsDeterministic(t *testing.T) {
	markup := loadFixture(t)

	assert.Equal(t, ParseDigest(markup), ParseDigest(markup))
}

func TestParseDigest_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected []domain.Article
	}{
		{
			name:     "empty document",
			markup:   "",
			expected: []domain.Article{},
		},
		{
			name:     "articles outside sections are ignored",
			markup:   `<article><a href="https://x"><h3>Loose</h3></a></article>`,
			expected: []domain.Article{},
		},
		{
			name: "section without heading yields empty section name",
			markup: `<section id="misc"><article><a href="https://x/1"><h3>Untitled section item</h3></a>
				<div class="newsletter-html">s</div></article></section>`,
			expected: []domain.Article{{Title: "Untitled section item", URL: "https://x/1", Summary: "s"}},
		},
		{
			name: "only the first read time annotation is stripped",
			markup: `<section><header><h3>Dev</h3></header><article><a href="https://x/2">
				<h3>Part one (3 minute read) and part two (7 minute read)</h3></a></article></section>`,
			expected: []domain.Article{{
				Title:    "Part one and part two (7 minute read)",
				URL:      "https://x/2",
				Section:  "Dev",
				ReadTime: 3,
			}},
		},
		{
			name: "exclusion matching is case insensitive",
			markup: `<section id="SPONSOR"><header><h3>Sponsor</h3></header>
				<article><a href="https://ad"><h3>Ad</h3></a></article></section>`,
			expected: []domain.Article{},
		},
		{
			name: "first link wins",
			markup: `<section><header><h3>S</h3></header><article>
				<a href="https://first"><h3>Title</h3></a><a href="https://second">more</a></article></section>`,
			expected: []domain.Article{{Title: "Title", URL: "https://first", Section: "S"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDigest(tt.markup))
		})
	}
}

func TestSplitReadTime(t *testing.T) {
	title, minutes := splitReadTime("Title (12 minute read)")
	assert.Equal(t, "Title", title)
	assert.Equal(t, 12, minutes)

	title, minutes = splitReadTime("No annotation")
	assert.Equal(t, "No annotation", title)
	assert.Equal(t, 0, minutes)

	title, minutes = splitReadTime("Mid (2 minute read) tail")
	assert.Equal(t, "Mid tail", title)
	assert.Equal(t, 2, minutes)
}
