package service

import (
	"sort"
	"strings"
	"time"

	"spaceflow/internal/domain"
	"spaceflow/pkg/debounce"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
)

type searchService struct {
	listings  domain.ListingService
	pageSize  int
	debouncer *debounce.Debouncer
	logger    logger.Logger
}

func NewSearchService(listings domain.ListingService, pageSize int, debounceDelay time.Duration, logger logger.Logger) domain.SearchService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &searchService{
		listings:  listings,
		pageSize:  pageSize,
		debouncer: debounce.NewDebouncer(debounceDelay),
		logger:    logger,
	}
}

// Search runs the filter, sort and paginate pipeline. The pipeline is pure:
// it works on a copied slice and never mutates the stored listings.
func (s *searchService) Search(criteria domain.FilterCriteria, page int) (*domain.SearchResult, error) {
	if page < 1 {
		page = 1
	}

	all, err := s.listings.List()
	if err != nil {
		return nil, err
	}

	filtered := filterListings(all, criteria)
	sortListings(filtered, criteria.SortOrder)

	total := len(filtered)
	totalPages := (total + s.pageSize - 1) / s.pageSize

	start := (page - 1) * s.pageSize
	items := []*domain.Listing{}
	if start < total {
		end := start + s.pageSize
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	metrics.RecordSearch()

	return &domain.SearchResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: totalPages,
	}, nil
}

// SearchDebounced delays the search until the caller has been quiet for the
// debounce period. Only the last of a rapid burst reaches the pipeline; the
// result is handed to deliver.
func (s *searchService) SearchDebounced(criteria domain.FilterCriteria, page int, deliver func(*domain.SearchResult, error)) {
	s.debouncer.Debounce(func() {
		deliver(s.Search(criteria, page))
	})
}

func filterListings(listings []*domain.Listing, criteria domain.FilterCriteria) []*domain.Listing {
	needle := strings.ToLower(strings.TrimSpace(criteria.SearchText))

	filtered := make([]*domain.Listing, 0, len(listings))
	for _, listing := range listings {
		if criteria.Category != "" && criteria.Category != domain.CategoryAll && listing.Category != criteria.Category {
			continue
		}
		if needle != "" && !matchesText(listing, needle) {
			continue
		}
		if listing.Price < criteria.PriceMin {
			continue
		}
		if criteria.PriceMax > 0 && listing.Price > criteria.PriceMax {
			continue
		}
		if criteria.CapacityMin > 0 && listing.Capacity < criteria.CapacityMin {
			continue
		}
		filtered = append(filtered, listing)
	}
	return filtered
}

func matchesText(listing *domain.Listing, needle string) bool {
	return strings.Contains(strings.ToLower(listing.Title), needle) ||
		strings.Contains(strings.ToLower(listing.Description), needle) ||
		strings.Contains(strings.ToLower(listing.Location), needle) ||
		strings.Contains(strings.ToLower(listing.City), needle)
}

func sortListings(listings []*domain.Listing, order domain.SortOrder) {
	switch order {
	case domain.SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price > listings[j].Price })
	case domain.SortRatingDesc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Rating > listings[j].Rating })
	case domain.SortViewsDesc:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].ViewCount > listings[j].ViewCount })
	default:
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].CreatedAt.After(listings[j].CreatedAt) })
	}
}
