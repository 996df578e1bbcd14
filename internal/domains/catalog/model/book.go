package model

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Pricing rule for the storefront: the feed's own prices are never
// trusted. The first 10 books of the feed are the special offer at
// 9.99, everything after sells at 19.99.
var (
	SpecialOfferPrice = decimal.RequireFromString("9.99")
	RegularPrice      = decimal.RequireFromString("19.99")
)

// SpecialOfferCount is how many leading feed records get the offer price.
const SpecialOfferCount = 10

// BookID is the catalog identifier. The feed is not consistent about
// its type (some dumps carry numeric ids, some strings), so the id is
// normalized to a string at the JSON boundary and every comparison in
// the system goes through NormalizeID.
type BookID string

func (id *BookID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = BookID(s)
		return nil
	}

	// Numeric id: keep the raw token as its string form.
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = BookID(n.String())
	return nil
}

// NormalizeID produces the canonical comparison form of an id.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// GenreList always unmarshals to an ordered list of trimmed, non-empty
// labels, whatever shape the feed delivered: absent, a single string,
// a comma-joined string, or a proper array.
type GenreList []string

func (g *GenreList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = NormalizeGenres(list...)
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*g = NormalizeGenres(strings.Split(single, ",")...)
		return nil
	}

	// null or any other shape degrades to "no genres"
	*g = GenreList{}
	return nil
}

// NormalizeGenres trims the raw labels and drops empty ones,
// preserving source order.
func NormalizeGenres(raw ...string) GenreList {
	genres := make(GenreList, 0, len(raw))
	for _, label := range raw {
		label = strings.TrimSpace(label)
		if label != "" {
			genres = append(genres, label)
		}
	}
	return genres
}

// Book is one catalog record. Records are immutable once fetched;
// cart and favorites keep their own snapshot copies.
type Book struct {
	ID          BookID          `json:"id"`
	Title       string          `json:"title"`
	Authors     string          `json:"authors"`
	Description string          `json:"description"`
	Genres      GenreList       `json:"genres"`
	Format      string          `json:"format,omitempty"`
	NumPages    *int            `json:"num_pages,omitempty"`
	Rating      float64         `json:"rating"`
	RatingCount int             `json:"rating_count"`
	ReviewCount int             `json:"review_count,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// NormalizedID returns the book's id in canonical comparison form.
func (b *Book) NormalizedID() string {
	return NormalizeID(string(b.ID))
}

// IsSpecialOffer reports whether the book carries the offer price.
func (b *Book) IsSpecialOffer() bool {
	return b.Price.Equal(SpecialOfferPrice)
}

// HasGenre reports whether any normalized genre label equals the given
// value, case-insensitively. Exact match, not substring.
func (b *Book) HasGenre(genre string) bool {
	for _, label := range b.Genres {
		if strings.EqualFold(label, genre) {
			return true
		}
	}
	return false
}
