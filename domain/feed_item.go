package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// FeedItemKind discriminates the payload carried by a FeedItem.
type FeedItemKind string

const (
	FeedItemKindNews   FeedItemKind = "news"
	FeedItemKindGitHub FeedItemKind = "github"
)

// FeedItem is one entry of the merged feed. Exactly one payload is set, matching Kind.
// ID is derived from source content so refetching the same item yields the same ID.
type FeedItem struct {
	Kind        FeedItemKind
	ID          string
	News        *Article
	PullRequest *PullRequest
}

// NewNewsFeedItem wraps a digest article. The article URL is the stable id.
func NewNewsFeedItem(article Article) FeedItem {
	a := article
	return FeedItem{
		Kind: FeedItemKindNews,
		ID:   a.URL,
		News: &a,
	}
}

// NewPullRequestFeedItem wraps a pull request of repo as pr:{owner}/{repo}/{number}.
func NewPullRequestFeedItem(repo RepoRef, pr PullRequest) FeedItem {
	p := pr
	if p.RepoFullName == "" {
		p.RepoFullName = repo.FullName()
	}
	return FeedItem{
		Kind:        FeedItemKindGitHub,
		ID:          PullRequestFeedItemID(repo, pr.Number),
		PullRequest: &p,
	}
}

func PullRequestFeedItemID(repo RepoRef, number int) string {
	return fmt.Sprintf("pr:%s/%d", repo.FullName(), number)
}

// Title returns the display title regardless of kind.
func (i FeedItem) Title() string {
	switch i.Kind {
	case FeedItemKindNews:
		if i.News != nil {
			return i.News.Title
		}
	case FeedItemKindGitHub:
		if i.PullRequest != nil {
			return i.PullRequest.Title
		}
	}
	return ""
}

// newsRecord and pullRequestRecord are the flat serialized shapes stored in the feed list and
// sent to clients. Every field of the item's kind is always present.
type newsRecord struct {
	Type     FeedItemKind `json:"type"`
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Summary  string       `json:"summary"`
	Section  string       `json:"section"`
	ReadTime int          `json:"readTime"`
}

type pullRequestRecord struct {
	Type          FeedItemKind `json:"type"`
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	PullRequestID int64        `json:"prId"`
	Number        int          `json:"number"`
	Author        string       `json:"author"`
	Description   string       `json:"description"`
	State         string       `json:"state"`
	CreatedAt     *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time   `json:"updatedAt,omitempty"`
	HTMLURL       string       `json:"htmlUrl"`
	RepoFullName  string       `json:"repoFullName"`
}

// feedItemRecord accepts either record shape when decoding.
type feedItemRecord struct {
	Type  FeedItemKind `json:"type"`
	ID    string       `json:"id"`
	Title string       `json:"title"`

	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Section  string `json:"section"`
	ReadTime int    `json:"readTime"`

	PullRequestID int64      `json:"prId"`
	Number        int        `json:"number"`
	Author        string     `json:"author"`
	Description   string     `json:"description"`
	State         string     `json:"state"`
	CreatedAt     *time.Time `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	HTMLURL       string     `json:"htmlUrl"`
	RepoFullName  string     `json:"repoFullName"`
}

func (i FeedItem) newsRecord() (newsRecord, error) {
	if i.News == nil {
		return newsRecord{}, fmt.Errorf("news feed item %q has no article", i.ID)
	}
	return newsRecord{
		Type:     FeedItemKindNews,
		ID:       i.ID,
		Title:    i.News.Title,
		URL:      i.News.URL,
		Summary:  i.News.Summary,
		Section:  i.News.Section,
		ReadTime: i.News.ReadTime,
	}, nil
}

func (i FeedItem) pullRequestRecord() (pullRequestRecord, error) {
	pr := i.PullRequest
	if pr == nil {
		return pullRequestRecord{}, fmt.Errorf("github feed item %q has no pull request", i.ID)
	}
	rec := pullRequestRecord{
		Type:          FeedItemKindGitHub,
		ID:            i.ID,
		Title:         pr.Title,
		PullRequestID: pr.ID,
		Number:        pr.Number,
		Author:        pr.Author,
		Description:   pr.Description,
		State:         pr.State,
		HTMLURL:       pr.HTMLURL,
		RepoFullName:  pr.RepoFullName,
	}
	if !pr.CreatedAt.IsZero() {
		createdAt := pr.CreatedAt
		rec.CreatedAt = &createdAt
	}
	if !pr.UpdatedAt.IsZero() {
		updatedAt := pr.UpdatedAt
		rec.UpdatedAt = &updatedAt
	}
	return rec, nil
}

func (rec feedItemRecord) item() (FeedItem, error) {
	switch rec.Type {
	case FeedItemKindNews:
		return FeedItem{
			Kind: FeedItemKindNews,
			ID:   rec.ID,
			News: &Article{
				Title:    rec.Title,
				URL:      rec.URL,
				Summary:  rec.Summary,
				Section:  rec.Section,
				ReadTime: rec.ReadTime,
			},
		}, nil
	case FeedItemKindGitHub:
		pr := &PullRequest{
			ID:           rec.PullRequestID,
			Number:       rec.Number,
			Title:        rec.Title,
			Author:       rec.Author,
			Description:  rec.Description,
			State:        rec.State,
			HTMLURL:      rec.HTMLURL,
			RepoFullName: rec.RepoFullName,
		}
		if rec.CreatedAt != nil {
			pr.CreatedAt = *rec.CreatedAt
		}
		if rec.UpdatedAt != nil {
			pr.UpdatedAt = *rec.UpdatedAt
		}
		return FeedItem{Kind: FeedItemKindGitHub, ID: rec.ID, PullRequest: pr}, nil
	default:
		return FeedItem{}, fmt.Errorf("%w: %q", ErrUnknownFeedItemKind, rec.Type)
	}
}

func (i FeedItem) MarshalJSON() ([]byte, error) {
	switch i.Kind {
	case FeedItemKindNews:
		rec, err := i.newsRecord()
		if err != nil {
			return nil, err
		}
		return json.Marshal(rec)
	case FeedItemKindGitHub:
		rec, err := i.pullRequestRecord()
		if err != nil {
			return nil, err
		}
		return json.Marshal(rec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeedItemKind, i.Kind)
	}
}

func (i *FeedItem) UnmarshalJSON(data []byte) error {
	var rec feedItemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	item, err := rec.item()
	if err != nil {
		return err
	}
	*i = item
	return nil
}

// ViewedFeedItem is a feed item annotated with a user's viewed flag.
type ViewedFeedItem struct {
	Item   FeedItem
	Viewed bool
}

func (v ViewedFeedItem) MarshalJSON() ([]byte, error) {
	switch v.Item.Kind {
	case FeedItemKindNews:
		rec, err := v.Item.newsRecord()
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			newsRecord
			Viewed bool `json:"viewed"`
		}{rec, v.Viewed})
	case FeedItemKindGitHub:
		rec, err := v.Item.pullRequestRecord()
		if err != nil {
			return nil, err
		}
		return json.Marshal(struct {
			pullRequestRecord
			Viewed bool `json:"viewed"`
		}{rec, v.Viewed})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeedItemKind, v.Item.Kind)
	}
}

// FilterNewFeedItems keeps items whose id is neither in existing nor earlier in items,
// preserving order.
func FilterNewFeedItems(existing map[string]struct{}, items []FeedItem) []FeedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]FeedItem, 0, len(items))
	for _, item := range items {
		if _, ok := existing[item.ID]; ok {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// FeedItemIDs returns the set of ids in items.
func FeedItemIDs(items []FeedItem) map[string]struct{} {
	ids := make(map[string]struct{}, len(items))
	for _, item := range items {
		ids[item.ID] = struct{}{}
	}
	return ids
}
