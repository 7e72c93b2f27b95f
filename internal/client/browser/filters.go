package browser

import (
	"sort"
	"strings"

	"github.com/bidcars/bidcars-cli/internal/client/models"
)

// FilterState is the local search/filter criteria. It is never persisted
// and never mutates the auction list it is applied to; each field is
// independently settable and clearable.
type FilterState struct {
	// SearchTerm matches case-insensitively as a substring of
	// "{make} {model}".
	SearchTerm string

	// Make, when non-empty, must match the auction make exactly.
	Make string

	// PriceMin and PriceMax bound the current bid inclusively. A nil
	// PriceMax with PriceMin set means open-ended above.
	PriceMin *float64
	PriceMax *float64
}

// FilterAuctions derives the filtered view of auctions. Pure: the input
// slice is never modified, the output is always a subset of the input in
// the same order, and identical inputs yield identical outputs.
func FilterAuctions(auctions []models.AuctionSummary, f FilterState) []models.AuctionSummary {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	filtered := make([]models.AuctionSummary, 0, len(auctions))
	for _, a := range auctions {
		if term != "" && !strings.Contains(strings.ToLower(a.Make+" "+a.Model), term) {
			continue
		}
		if f.Make != "" && a.Make != f.Make {
			continue
		}
		if f.PriceMin != nil && a.CurrentBid < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && a.CurrentBid > *f.PriceMax {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// SetSearchTerm updates the search dimension, leaving the others alone.
func (b *Browser) SetSearchTerm(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.SearchTerm = term
}

// SetMakeFilter updates the make dimension; "" clears it.
func (b *Browser) SetMakeFilter(make string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.Make = make
}

// SetPriceRange updates the price dimension; nil bounds clear it.
func (b *Browser) SetPriceRange(min, max *float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.PriceMin = min
	b.filters.PriceMax = max
}

// ClearFilters resets every dimension.
func (b *Browser) ClearFilters() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters = FilterState{}
}

func (b *Browser) Filters() FilterState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filters
}

// FilteredAuctions applies the current criteria to the loaded auction list.
func (b *Browser) FilteredAuctions() []models.AuctionSummary {
	b.mu.Lock()
	auctions := b.auctions
	filters := b.filters
	b.mu.Unlock()
	return FilterAuctions(auctions, filters)
}

// Makes lists the distinct makes across loaded auctions, sorted, for
// presenting the make-filter choices.
func (b *Browser) Makes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	seen := make(map[string]struct{}, len(b.auctions))
	makes := make([]string, 0, len(b.auctions))
	for _, a := range b.auctions {
		if _, ok := seen[a.Make]; ok {
			continue
		}
		seen[a.Make] = struct{}{}
		makes = append(makes, a.Make)
	}
	sort.Strings(makes)
	return makes
}
