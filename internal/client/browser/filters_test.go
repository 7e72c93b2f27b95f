package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bidcars/bidcars-cli/internal/client/models"
)

func f64(v float64) *float64 { return &v }

func sampleAuctions() []models.AuctionSummary {
	end := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return []models.AuctionSummary{
		{ID: 1, Make: "Ford", Model: "Mustang", Year: 2020, CurrentBid: 75000, EndTime: end},
		{ID: 2, Make: "BMW", Model: "M4", Year: 2022, CurrentBid: 65000, EndTime: end},
		{ID: 3, Make: "Ford", Model: "Bronco", Year: 2021, CurrentBid: 42000, EndTime: end},
	}
}

func ids(auctions []models.AuctionSummary) []int64 {
	out := make([]int64, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterAuctions_Search(t *testing.T) {
	list := sampleAuctions()

	t.Run("case-insensitive model match", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{SearchTerm: "mustang"})
		assert.Equal(t, []int64{1}, ids(got))
	})

	t.Run("matches across make and model", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{SearchTerm: "ford b"})
		assert.Equal(t, []int64{3}, ids(got))
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{SearchTerm: "tesla"})
		assert.Empty(t, got)
	})

	t.Run("surrounding whitespace ignored", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{SearchTerm: "  mustang  "})
		assert.Equal(t, []int64{1}, ids(got))
	})
}

func TestFilterAuctions_Make(t *testing.T) {
	list := sampleAuctions()

	got := FilterAuctions(list, FilterState{Make: "Ford"})
	assert.Equal(t, []int64{1, 3}, ids(got))

	// exact match, not substring or case-folded
	assert.Empty(t, FilterAuctions(list, FilterState{Make: "ford"}))
}

func TestFilterAuctions_PriceRange(t *testing.T) {
	list := sampleAuctions()

	t.Run("bounded range", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{PriceMin: f64(50000), PriceMax: f64(70000)})
		assert.Equal(t, []int64{2}, ids(got))
	})

	t.Run("open-ended above", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{PriceMin: f64(50000)})
		assert.Equal(t, []int64{1, 2}, ids(got))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := FilterAuctions(list, FilterState{PriceMin: f64(42000), PriceMax: f64(65000)})
		assert.Equal(t, []int64{2, 3}, ids(got))
	})
}

func TestFilterAuctions_CombinedDimensions(t *testing.T) {
	list := sampleAuctions()

	got := FilterAuctions(list, FilterState{
		SearchTerm: "ford",
		PriceMin:   f64(50000),
	})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestFilterAuctions_PureAndIdempotent(t *testing.T) {
	list := sampleAuctions()
	snapshot := append([]models.AuctionSummary(nil), list...)
	filters := FilterState{SearchTerm: "ford", PriceMax: f64(80000)}

	first := FilterAuctions(list, filters)
	second := FilterAuctions(list, filters)

	assert.Equal(t, first, second, "same inputs must yield the same output")
	assert.Equal(t, snapshot, list, "the source list must not be mutated")

	// output is a subset of the input, in input order
	seen := make(map[int64]int)
	for i, a := range list {
		seen[a.ID] = i
	}
	prev := -1
	for _, a := range first {
		idx, ok := seen[a.ID]
		require.True(t, ok, "filtered element %d not in source", a.ID)
		require.Greater(t, idx, prev, "filtered output must preserve source order")
		prev = idx
	}
}

func TestFilterAuctions_NoFiltersReturnsAll(t *testing.T) {
	list := sampleAuctions()
	got := FilterAuctions(list, FilterState{})
	assert.Equal(t, ids(list), ids(got))
}

func TestBrowser_FilterDimensionsIndependent(t *testing.T) {
	fake := &fakeAPI{AuctionsRet: sampleAuctions()}
	b := New(fake, testLogger())
	require.NoError(t, b.LoadAuctions(context.Background()))

	b.SetSearchTerm("ford")
	b.SetPriceRange(f64(50000), nil)
	assert.Equal(t, []int64{1}, ids(b.FilteredAuctions()))

	// clearing one dimension leaves the other applied
	b.SetSearchTerm("")
	assert.Equal(t, []int64{1, 2}, ids(b.FilteredAuctions()))

	b.ClearFilters()
	assert.Equal(t, []int64{1, 2, 3}, ids(b.FilteredAuctions()))
	assert.Equal(t, FilterState{}, b.Filters())
}

func TestBrowser_Makes(t *testing.T) {
	fake := &fakeAPI{AuctionsRet: sampleAuctions()}
	b := New(fake, testLogger())
	require.NoError(t, b.LoadAuctions(context.Background()))

	assert.Equal(t, []string{"BMW", "Ford"}, b.Makes())
}
