package domain

// Article is one entry scraped from a digest page.
type Article struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Section  string `json:"section"`
	ReadTime int    `json:"readTime"`
}
