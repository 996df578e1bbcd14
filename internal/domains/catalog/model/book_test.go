package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreListUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want GenreList
	}{
		{"comma joined string", `"Fiction, Drama"`, GenreList{"Fiction", "Drama"}},
		{"single string", `"Sci-Fi"`, GenreList{"Sci-Fi"}},
		{"array", `["Sci-Fi"]`, GenreList{"Sci-Fi"}},
		{"array with padding", `[" Fantasy ", "", "Horror"]`, GenreList{"Fantasy", "Horror"}},
		{"null", `null`, GenreList{}},
		{"empty string", `""`, GenreList{}},
		{"number degrades to empty", `42`, GenreList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GenreList
			err := json.Unmarshal([]byte(tt.raw), &got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenreListAbsentField(t *testing.T) {
	var book Book
	err := json.Unmarshal([]byte(`{"id":"1","title":"No Genres"}`), &book)
	require.NoError(t, err)
	assert.Empty(t, book.Genres)
}

func TestBookIDUnmarshal(t *testing.T) {
	t.Run("string id", func(t *testing.T) {
		var book Book
		err := json.Unmarshal([]byte(`{"id":"abc-1"}`), &book)
		require.NoError(t, err)
		assert.Equal(t, BookID("abc-1"), book.ID)
	})

	t.Run("numeric id keeps string form", func(t *testing.T) {
		var book Book
		err := json.Unmarshal([]byte(`{"id":42}`), &book)
		require.NoError(t, err)
		assert.Equal(t, BookID("42"), book.ID)
	})
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "42", NormalizeID(" 42 "))
	assert.Equal(t, "abc", NormalizeID("abc"))

	book := Book{ID: BookID("42")}
	assert.Equal(t, NormalizeID(" 42"), book.NormalizedID())
}

func TestHasGenre(t *testing.T) {
	book := Book{Genres: GenreList{"Fantasy", "Young Adult"}}

	assert.True(t, book.HasGenre("fantasy"))
	assert.True(t, book.HasGenre("YOUNG ADULT"))
	assert.False(t, book.HasGenre("Fan")) // exact match, not substring
	assert.False(t, book.HasGenre("Horror"))
}

func TestIsSpecialOffer(t *testing.T) {
	special := Book{Price: SpecialOfferPrice}
	regular := Book{Price: RegularPrice}

	assert.True(t, special.IsSpecialOffer())
	assert.False(t, regular.IsSpecialOffer())
}

func TestFilterSpecValidate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		spec := FilterSpec{}.Normalize()
		assert.NoError(t, spec.Validate())
		assert.Equal(t, TypeAll, spec.Type)
		assert.Equal(t, SearchByTitle, spec.SearchBy)
	})

	t.Run("bad type rejected", func(t *testing.T) {
		spec := FilterSpec{Type: "hot", SearchBy: SearchByTitle}
		assert.Error(t, spec.Validate())
	})

	t.Run("bad searchBy rejected", func(t *testing.T) {
		spec := FilterSpec{Type: TypeAll, SearchBy: "isbn"}
		assert.Error(t, spec.Validate())
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		spec := FilterSpec{Type: TypeAll, SearchBy: SearchByTitle, Limit: -1}
		assert.Error(t, spec.Validate())
	})
}
