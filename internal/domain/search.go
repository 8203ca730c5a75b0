package domain

type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortPriceAsc   SortOrder = "price-asc"
	SortPriceDesc  SortOrder = "price-desc"
	SortRatingDesc SortOrder = "rating-desc"
	SortViewsDesc  SortOrder = "views-desc"

	DefaultPageSize = 9
	DefaultMaxPrice = 10000
)

// FilterCriteria is the ephemeral filter state driving the search pipeline.
// It is never persisted. A PriceMax of zero or below means no ceiling, so the
// zero value filters nothing out.
type FilterCriteria struct {
	Category    Category  `json:"category"`
	SearchText  string    `json:"searchText"`
	PriceMin    float64   `json:"priceMin"`
	PriceMax    float64   `json:"priceMax"`
	CapacityMin int       `json:"capacityMin"`
	SortOrder   SortOrder `json:"sortOrder"`
}

// DefaultFilterCriteria mirrors the initial filter state of the UI: every
// category, full default price window, newest first.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Category:  CategoryAll,
		PriceMin:  0,
		PriceMax:  DefaultMaxPrice,
		SortOrder: SortNewest,
	}
}

type SearchResult struct {
	Items      []*Listing `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}

type SearchService interface {
	Search(criteria FilterCriteria, page int) (*SearchResult, error)
	SearchDebounced(criteria FilterCriteria, page int, deliver func(*SearchResult, error))
}
