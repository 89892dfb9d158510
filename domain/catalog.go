package domain

// Book is an entry of the static reading list.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	KeyIdeas    []string `json:"keyIdeas"`
	ReadMinutes int      `json:"readMinutes"`
}

// MathTopic is a short lesson of the static math dataset.
type MathTopic struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// BookCategories is the fixed category list of the reading list.
var BookCategories = []string{
	"personal-growth",
	"habits",
	"love-relationships",
	"self-improvement",
	"public-speaking",
	"conversation-skills",
}

// MathTopicSummary is the list form of a MathTopic.
type MathTopicSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (t MathTopic) Summary() MathTopicSummary {
	return MathTopicSummary{ID: t.ID, Title: t.Title, Category: t.Category}
}
