package page

import (
	"time"

	"tierless/internal/menu"
)

type Page struct {
	ID          int        `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Currency    string     `json:"currency"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PublicPage is the JSON rendering of a published page: the page header
// plus its items grouped into sections in reading order.
type PublicPage struct {
	Slug     string          `json:"slug"`
	Title    string          `json:"title"`
	Currency string          `json:"currency"`
	Sections []PublicSection `json:"sections"`
}

type PublicSection struct {
	Name  string      `json:"name,omitempty"`
	Items []menu.Item `json:"items"`
}
