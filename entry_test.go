package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetail_Genre(t *testing.T) {
	t.Parallel()

	t.Run("joins genres with comma and space", func(t *testing.T) {
		t.Parallel()

		d := &catalog.Detail{Genres: []string{"Action", "Fantasy", "Isekai"}}

		assert.Equal(t, "Action, Fantasy, Isekai", d.Genre())
	})

	t.Run("returns empty string without genres", func(t *testing.T) {
		t.Parallel()

		d := &catalog.Detail{}

		assert.Equal(t, "", d.Genre())
	})
}

func TestDetail_Stub(t *testing.T) {
	t.Parallel()

	d := &catalog.Detail{
		Identifier:  "/manga/solo/",
		Title:       "Solo",
		CoverURL:    "https://example.org/solo.jpg",
		Description: "ignored",
	}

	assert.Equal(t, &catalog.EntryStub{
		Identifier: "/manga/solo/",
		Title:      "Solo",
		CoverURL:   "https://example.org/solo.jpg",
	}, d.Stub())
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("zero value is unknown", func(t *testing.T) {
		t.Parallel()

		var d catalog.Detail
		assert.Equal(t, catalog.StatusUnknown, d.Status)
		assert.Equal(t, "unknown", d.Status.String())
	})

	t.Run("encodes by name in JSON", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(&catalog.Detail{Status: catalog.StatusCompleted})
		require.NoError(t, err)
		assert.Contains(t, string(b), `"status":"completed"`)
	})

	t.Run("decodes unrecognised names as unknown", func(t *testing.T) {
		t.Parallel()

		var s catalog.Status
		require.NoError(t, s.UnmarshalText([]byte("hiatus")))
		assert.Equal(t, catalog.StatusUnknown, s)

		require.NoError(t, s.UnmarshalText([]byte(" Ongoing ")))
		assert.Equal(t, catalog.StatusOngoing, s)
	})
}
