package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/partbill/internal/model"
)

func testCatalog() []model.Part {
	return []model.Part{
		{ID: 1, Name: "Filter", Price: 100},
		{ID: 2, Name: "Belt", Price: 250},
	}
}

func TestSuggestMatchesCaseInsensitively(t *testing.T) {
	got := Suggest(testCatalog(), "fil")
	require.Equal(t, []model.Part{{ID: 1, Name: "Filter", Price: 100}}, got)

	got = Suggest(testCatalog(), "ELT")
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestSuggestBlankQuery(t *testing.T) {
	for _, q := range []string{"", " ", "\t  \n"} {
		require.Empty(t, Suggest(testCatalog(), q), "query %q", q)
	}
}

func TestSuggestNoMatch(t *testing.T) {
	require.Empty(t, Suggest(testCatalog(), "piston"))
	require.Empty(t, Suggest(nil, "filter"))
}

func TestSuggestCapsAtFiveInCatalogOrder(t *testing.T) {
	var catalog []model.Part
	names := []string{"Oil Filter", "Air Filter", "Bolt", "Fuel Filter", "Hydraulic filter", "Seal", "Cabin Filter", "Filter Cap"}
	for i, n := range names {
		catalog = append(catalog, model.Part{ID: int64(i + 1), Name: n, Price: float64(10 * (i + 1))})
	}

	got := Suggest(catalog, "filter")
	require.Len(t, got, MaxSuggestions)

	var ids []int64
	for _, p := range got {
		require.True(t, strings.Contains(strings.ToLower(p.Name), "filter"))
		ids = append(ids, p.ID)
	}
	require.Equal(t, []int64{1, 2, 4, 5, 7}, ids)
}

func TestSuggestKeepsInnerWhitespace(t *testing.T) {
	catalog := []model.Part{{ID: 1, Name: "Oil Filter"}, {ID: 2, Name: "Oilfilter"}}
	got := Suggest(catalog, "oil f")
	require.Len(t, got, 1)
	require.Equal(t, int64(1), got[0].ID)
}
