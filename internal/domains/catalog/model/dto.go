package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Listing types
const (
	TypeAll      = "all"
	TypeFeatured = "featured"
	TypeSpecial  = "special"
)

// Search fields
const (
	SearchByTitle  = "title"
	SearchByAuthor = "author"
	SearchByGenre  = "genre"
	SearchByPages  = "pages"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// FilterSpec is the full set of listing parameters. Query parameters
// map 1:1 onto its fields.
type FilterSpec struct {
	Type        string `json:"type"`
	Limit       int    `json:"limit"`
	GenreFilter string `json:"category"`
	Format      string `json:"format"`
	Search      string `json:"search"`
	SearchBy    string `json:"search_by"`
}

// Normalize fills the defaults the UI relies on.
func (f FilterSpec) Normalize() FilterSpec {
	if f.Type == "" {
		f.Type = TypeAll
	}
	if f.SearchBy == "" {
		f.SearchBy = SearchByTitle
	}
	return f
}

func (f FilterSpec) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Type,
			validation.In(TypeAll, TypeFeatured, TypeSpecial).Error("type must be all, featured or special"),
		),
		validation.Field(&f.SearchBy,
			validation.In(SearchByTitle, SearchByAuthor, SearchByGenre, SearchByPages).Error("searchBy must be title, author, genre or pages"),
		),
		validation.Field(&f.Limit,
			validation.Min(0).Error("limit must not be negative"),
		),
	)
}

// Snapshot is the catalog store state: the fetched records plus the
// loading flag and an optional advisory error message.
type Snapshot struct {
	Items     []Book `json:"items"`
	IsLoading bool   `json:"is_loading"`
	Error     string `json:"error,omitempty"`
}

// FilterOptions are the distinct genre and format values present in
// the catalog, used to build filter sidebars.
type FilterOptions struct {
	Genres  []string `json:"genres"`
	Formats []string `json:"formats"`
}
