package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceflow/internal/domain"
)

func seedListing(id int, mutate func(*domain.Listing)) *domain.Listing {
	listing := &domain.Listing{
		ID:          fmt.Sprintf("ilan-%02d", id),
		Title:       fmt.Sprintf("Toplantı salonu %02d", id),
		Description: "Şehir merkezinde ferah bir salon",
		Category:    domain.CategoryMeeting,
		Price:       100,
		Period:      domain.PeriodHour,
		City:        "İstanbul",
		Location:    "Kadıköy",
		Capacity:    20,
		Images:      []string{domain.PlaceholderImageURL},
		Amenities:   []string{},
		OwnerID:     "sahip",
		OwnerName:   "İlan Sahibi",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		Status:      domain.ListingStatusActive,
	}
	if mutate != nil {
		mutate(listing)
	}
	return listing
}

func (f *fixture) seed(t *testing.T, listings ...*domain.Listing) {
	t.Helper()
	require.NoError(t, f.listingRepo.SaveAll(listings))
}

func ids(listings []*domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestSearchFiltersByCategory(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Category = domain.CategorySocial }),
		seedListing(2, nil),
		seedListing(3, func(l *domain.Listing) { l.Category = domain.CategorySocial }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.Category = domain.CategorySocial

	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	criteria.Category = domain.CategoryAll
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}

func TestSearchMatchesTextCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Title = "Deniz manzaralı stüdyo" }),
		seedListing(2, func(l *domain.Listing) { l.Description = "deniz kenarında büyük bahçe" }),
		seedListing(3, func(l *domain.Listing) { l.City = "Ankara" }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.SearchText = "dEnIz"

	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)

	criteria.SearchText = "ankara"
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
}

func TestSearchPriceWindowInclusive(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Price = 50 }),
		seedListing(2, func(l *domain.Listing) { l.Price = 100 }),
		seedListing(3, func(l *domain.Listing) { l.Price = 200 }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.PriceMin = 50
	criteria.PriceMax = 100

	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ilan-01", "ilan-02"}, ids(result.Items))
}

func TestSearchZeroCriteriaFiltersNothing(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Price = 50 }),
		seedListing(2, func(l *domain.Listing) { l.Price = 25000 }),
	)

	// The zero value has no price ceiling; every listing matches.
	result, err := f.search.Search(domain.FilterCriteria{}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestSearchCapacityMinimum(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Capacity = 5 }),
		seedListing(2, func(l *domain.Listing) { l.Capacity = 50 }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.CapacityMin = 10

	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-02"}, ids(result.Items))

	// Zero means no capacity constraint.
	criteria.CapacityMin = 0
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestSearchSortOrders(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Price = 300; l.Rating = 2; l.ViewCount = 10 }),
		seedListing(2, func(l *domain.Listing) { l.Price = 100; l.Rating = 5; l.ViewCount = 30 }),
		seedListing(3, func(l *domain.Listing) { l.Price = 200; l.Rating = 4; l.ViewCount = 20 }),
	)

	criteria := domain.DefaultFilterCriteria()

	criteria.SortOrder = domain.SortPriceAsc
	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-02", "ilan-03", "ilan-01"}, ids(result.Items))

	criteria.SortOrder = domain.SortPriceDesc
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-01", "ilan-03", "ilan-02"}, ids(result.Items))

	criteria.SortOrder = domain.SortRatingDesc
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-02", "ilan-03", "ilan-01"}, ids(result.Items))

	criteria.SortOrder = domain.SortViewsDesc
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-02", "ilan-03", "ilan-01"}, ids(result.Items))

	// Newest first is the default.
	criteria.SortOrder = domain.SortNewest
	result, err = f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-03", "ilan-02", "ilan-01"}, ids(result.Items))
}

func TestSearchSortIsStable(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Price = 100 }),
		seedListing(2, func(l *domain.Listing) { l.Price = 100 }),
		seedListing(3, func(l *domain.Listing) { l.Price = 100 }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.SortOrder = domain.SortPriceAsc

	result, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-01", "ilan-02", "ilan-03"}, ids(result.Items))
}

func TestSearchPagination(t *testing.T) {
	f := newFixture(t)

	listings := make([]*domain.Listing, 0, 20)
	for i := 1; i <= 20; i++ {
		listings = append(listings, seedListing(i, nil))
	}
	f.seed(t, listings...)

	criteria := domain.DefaultFilterCriteria()
	criteria.SortOrder = domain.SortPriceAsc // stable, keeps the seeded order

	page1, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, domain.DefaultPageSize, page1.PageSize)
	require.Len(t, page1.Items, 9)
	assert.Equal(t, "ilan-01", page1.Items[0].ID)
	assert.Equal(t, "ilan-09", page1.Items[8].ID)

	page3, err := f.search.Search(criteria, 3)
	require.NoError(t, err)
	require.Len(t, page3.Items, 2)
	assert.Equal(t, "ilan-19", page3.Items[0].ID)
	assert.Equal(t, "ilan-20", page3.Items[1].ID)

	page4, err := f.search.Search(criteria, 4)
	require.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, 20, page4.Total)

	// Page numbers below one clamp to the first page.
	clamped, err := f.search.Search(criteria, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Page)
}

func TestSearchDoesNotMutateStoredOrder(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Price = 300 }),
		seedListing(2, func(l *domain.Listing) { l.Price = 100 }),
		seedListing(3, func(l *domain.Listing) { l.Price = 200 }),
	)

	criteria := domain.DefaultFilterCriteria()
	criteria.SortOrder = domain.SortPriceAsc

	first, err := f.search.Search(criteria, 1)
	require.NoError(t, err)

	// Idempotent: the same criteria over the same collection yields the same page.
	second, err := f.search.Search(criteria, 1)
	require.NoError(t, err)
	assert.Equal(t, ids(first.Items), ids(second.Items))

	stored, err := f.listingRepo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"ilan-01", "ilan-02", "ilan-03"}, ids(stored))
}

func TestSearchDebouncedCoalesces(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		seedListing(1, func(l *domain.Listing) { l.Title = "Sahil evi" }),
		seedListing(2, func(l *domain.Listing) { l.Title = "Dağ evi" }),
	)

	type delivery struct {
		result *domain.SearchResult
		err    error
	}

	results := make(chan delivery, 3)
	deliver := func(result *domain.SearchResult, err error) {
		results <- delivery{result: result, err: err}
	}

	// Rapid burst: only the last criteria reaches the pipeline.
	for _, text := range []string{"S", "Sa", "Sahil"} {
		criteria := domain.DefaultFilterCriteria()
		criteria.SearchText = text
		f.search.SearchDebounced(criteria, 1, deliver)
	}

	select {
	case got := <-results:
		require.NoError(t, got.err)
		require.Len(t, got.result.Items, 1)
		assert.Equal(t, "ilan-01", got.result.Items[0].ID)
	case <-time.After(time.Second):
		t.Fatal("debounced arama sonucu gelmedi")
	}

	select {
	case <-results:
		t.Fatal("birden fazla arama çalıştı")
	case <-time.After(50 * time.Millisecond):
	}
}
