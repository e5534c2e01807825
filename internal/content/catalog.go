package content

import (
	"errors"
	"fmt"

	"misterMoAPI/internal/tier"
)

var (
	ErrNotFound       = errors.New("content not found")
	ErrPageOutOfRange = errors.New("page out of range")
)

type Book struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	PreviewPages int       `json:"preview_pages"`
	TotalPages   int       `json:"total_pages"`
	RequiredTier tier.Tier `json:"required_tier"`
	Locked       bool      `json:"locked"`
}

type Page struct {
	BookID  string `json:"book_id"`
	Number  int    `json:"number"`
	Total   int    `json:"total"`
	URL     string `json:"url"`
	Preview bool   `json:"preview"`
}

type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	YouTubeID    string    `json:"youtube_id,omitempty"`
	RequiredTier tier.Tier `json:"required_tier"`
	Locked       bool      `json:"locked"`
}

type Download struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileURL      string    `json:"file_url,omitempty"`
	RequiredTier tier.Tier `json:"required_tier"`
	Locked       bool      `json:"locked"`
}

// Panel is a dashboard block. MaxTier, when set, hides the panel from
// higher tiers (upsell blocks shown to basic users only).
type Panel struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	MinTier tier.Tier `json:"min_tier"`
	MaxTier tier.Tier `json:"max_tier,omitempty"`
}

// Visible reports whether the panel renders for userTier.
func (p Panel) Visible(userTier tier.Tier) bool {
	if !tier.CanAccess(userTier, p.MinTier) {
		return false
	}
	return p.MaxTier == "" || tier.Rank(userTier) <= tier.Rank(p.MaxTier)
}

// Catalog holds the static content library. Every accessor takes the
// caller's tier and strips gated payloads before returning.
type Catalog struct {
	books     []Book
	videos    []Video
	downloads []Download
	panels    []Panel
}

func NewCatalog(books []Book, videos []Video, downloads []Download, panels []Panel) *Catalog {
	return &Catalog{books: books, videos: videos, downloads: downloads, panels: panels}
}

func (c *Catalog) Books(userTier tier.Tier) []Book {
	out := make([]Book, 0, len(c.books))
	for _, b := range c.books {
		b.Locked = !tier.CanAccess(userTier, b.RequiredTier)
		out = append(out, b)
	}
	return out
}

// Page returns a single book page, applying the free preview carve-out.
func (c *Catalog) Page(bookID string, number int, userTier tier.Tier) (*Page, error) {
	book, ok := c.book(bookID)
	if !ok {
		return nil, ErrNotFound
	}
	if number < 1 || number > book.TotalPages {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, number, book.TotalPages)
	}
	if !tier.CanViewPage(userTier, book.RequiredTier, number, book.PreviewPages) {
		return nil, tier.GateError{
			Resource: fmt.Sprintf("book %s page %d", book.ID, number),
			Required: book.RequiredTier,
			Current:  userTier,
		}
	}
	return &Page{
		BookID:  book.ID,
		Number:  number,
		Total:   book.TotalPages,
		URL:     fmt.Sprintf("/books/%s/pages/%d", book.ID, number),
		Preview: !tier.CanAccess(userTier, book.RequiredTier),
	}, nil
}

func (c *Catalog) book(id string) (Book, bool) {
	for _, b := range c.books {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

func (c *Catalog) Videos(userTier tier.Tier) []Video {
	out := make([]Video, 0, len(c.videos))
	for _, v := range c.videos {
		v.Locked = !tier.CanAccess(userTier, v.RequiredTier)
		if v.Locked {
			v.YouTubeID = ""
		}
		out = append(out, v)
	}
	return out
}

// Video returns a single video or a tier.GateError when it is locked.
func (c *Catalog) Video(id string, userTier tier.Tier) (*Video, error) {
	for _, v := range c.videos {
		if v.ID != id {
			continue
		}
		if err := tier.Check("video "+v.ID, userTier, v.RequiredTier); err != nil {
			return nil, err
		}
		return &v, nil
	}
	return nil, ErrNotFound
}

func (c *Catalog) Downloads(userTier tier.Tier) []Download {
	out := make([]Download, 0, len(c.downloads))
	for _, d := range c.downloads {
		d.Locked = !tier.CanAccess(userTier, d.RequiredTier)
		if d.Locked {
			d.FileURL = ""
		}
		out = append(out, d)
	}
	return out
}

// Panels returns only the dashboard panels visible to userTier.
func (c *Catalog) Panels(userTier tier.Tier) []Panel {
	var out []Panel
	for _, p := range c.panels {
		if p.Visible(userTier) {
			out = append(out, p)
		}
	}
	return out
}

// PanelsView is the dashboard layout for one tier.
type PanelsView struct {
	SubscriptionTier tier.Tier `json:"subscription_tier"`
	Panels           []Panel   `json:"panels"`
}

func (c *Catalog) PanelsFor(userTier tier.Tier) PanelsView {
	return PanelsView{SubscriptionTier: userTier, Panels: c.Panels(userTier)}
}
