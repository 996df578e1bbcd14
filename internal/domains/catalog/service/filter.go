package service

import (
	"sort"
	"strconv"
	"strings"

	"bookshop-api/internal/domains/catalog/model"
)

// ApplyFilter derives the display list from a catalog snapshot.
// Pure function; the input slice is never mutated.
//
// Stage order is fixed and observable: search narrows first, then
// category, then format, then the listing type, then the limit.
// Reordering the stages changes output for overlapping filters.
func ApplyFilter(books []model.Book, spec model.FilterSpec) []model.Book {
	spec = spec.Normalize()

	filtered := make([]model.Book, len(books))
	copy(filtered, books)

	filtered = applySearch(filtered, spec.Search, spec.SearchBy)
	filtered = applyCategory(filtered, spec.GenreFilter)
	filtered = applyFormat(filtered, spec.Format)
	filtered = applyType(filtered, spec.Type)
	filtered = applyLimit(filtered, spec.Limit)

	return filtered
}

// applySearch matches case-insensitive substrings against the chosen
// field. For pages the term is an integer upper bound; a term that
// does not parse passes everything through unchanged.
func applySearch(books []model.Book, search, searchBy string) []model.Book {
	if search == "" {
		return books
	}

	needle := strings.ToLower(search)

	switch searchBy {
	case model.SearchByTitle:
		return keep(books, func(b model.Book) bool {
			return strings.Contains(strings.ToLower(b.Title), needle)
		})

	case model.SearchByAuthor:
		return keep(books, func(b model.Book) bool {
			return strings.Contains(strings.ToLower(b.Authors), needle)
		})

	case model.SearchByGenre:
		return keep(books, func(b model.Book) bool {
			for _, genre := range b.Genres {
				if strings.Contains(strings.ToLower(genre), needle) {
					return true
				}
			}
			return false
		})

	case model.SearchByPages:
		maxPages, err := strconv.Atoi(strings.TrimSpace(search))
		if err != nil {
			return books
		}
		return keep(books, func(b model.Book) bool {
			return b.NumPages != nil && *b.NumPages <= maxPages
		})
	}

	return books
}

// applyCategory keeps books with a genre exactly equal to the filter,
// case-insensitively. "all" is the no-filter sentinel.
func applyCategory(books []model.Book, genreFilter string) []model.Book {
	if genreFilter == "" || strings.EqualFold(genreFilter, model.CategoryAll) {
		return books
	}

	return keep(books, func(b model.Book) bool {
		return b.HasGenre(genreFilter)
	})
}

func applyFormat(books []model.Book, format string) []model.Book {
	if format == "" {
		return books
	}

	return keep(books, func(b model.Book) bool {
		return b.Format != "" && strings.EqualFold(b.Format, format)
	})
}

// applyType resolves the listing type. "featured" sorts by rating
// descending without dropping anything; the sort is stable so equal
// ratings keep their upstream order. "special" keeps only offer-priced
// books. "all" is a no-op.
func applyType(books []model.Book, listType string) []model.Book {
	switch listType {
	case model.TypeFeatured:
		sort.SliceStable(books, func(i, j int) bool {
			return books[i].Rating > books[j].Rating
		})
		return books

	case model.TypeSpecial:
		return keep(books, func(b model.Book) bool {
			return b.IsSpecialOffer()
		})
	}

	return books
}

func applyLimit(books []model.Book, limit int) []model.Book {
	if limit > 0 && limit < len(books) {
		return books[:limit]
	}
	return books
}

func keep(books []model.Book, match func(model.Book) bool) []model.Book {
	kept := books[:0:0]
	for _, book := range books {
		if match(book) {
			kept = append(kept, book)
		}
	}
	return kept
}
