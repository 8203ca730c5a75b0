package domain

import "time"

type Category string
type Period string
type ListingStatus string

const (
	CategoryCorporate Category = "corporate"
	CategorySocial    Category = "social"
	CategoryMeeting   Category = "meeting"
	CategoryCultural  Category = "cultural"
	CategoryLodging   Category = "lodging"
	CategoryMultiUse  Category = "multi-use"

	// CategoryAll is only meaningful as a filter value, never stored.
	CategoryAll Category = "all"

	PeriodHour  Period = "hour"
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"

	ListingStatusActive ListingStatus = "active"

	MaxImages       = 10
	DefaultCapacity = 10

	PlaceholderImageURL = "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCorporate, CategorySocial, CategoryMeeting, CategoryCultural, CategoryLodging, CategoryMultiUse:
		return true
	}
	return false
}

func (p Period) Valid() bool {
	switch p {
	case PeriodHour, PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

type Review struct {
	ID              string    `json:"id"`
	AuthorID        string    `json:"authorId"`
	AuthorName      string    `json:"authorName"`
	AuthorAvatarURL string    `json:"authorAvatarUrl"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Listing struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     Category      `json:"category"`
	Price        float64       `json:"price"`
	Period       Period        `json:"period"`
	City         string        `json:"city"`
	Location     string        `json:"location"`
	Capacity     int           `json:"capacity"`
	Images       []string      `json:"images"`
	Amenities    []string      `json:"amenities"`
	ContactPhone string        `json:"contactPhone"`
	OwnerID      string        `json:"ownerId"`
	OwnerName    string        `json:"ownerName"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	ViewCount    int64         `json:"viewCount"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	Reviews      []Review      `json:"reviews"`
	Status       ListingStatus `json:"status"`
}

// HasReviewBy reports whether the given user already reviewed this listing.
func (l *Listing) HasReviewBy(userID string) bool {
	for _, r := range l.Reviews {
		if r.AuthorID == userID {
			return true
		}
	}
	return false
}

// RecalculateRating recomputes the mean rating and the review count from the
// embedded reviews.
func (l *Listing) RecalculateRating() {
	l.ReviewCount = len(l.Reviews)
	if l.ReviewCount == 0 {
		l.Rating = 0
		return
	}

	total := 0
	for _, r := range l.Reviews {
		total += r.Rating
	}
	l.Rating = float64(total) / float64(l.ReviewCount)
}

// ListingInput carries the caller-supplied fields of an upsert. Derived fields
// (views, rating, reviews) are never taken from input.
type ListingInput struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Price        float64  `json:"price"`
	Period       Period   `json:"period"`
	City         string   `json:"city"`
	Location     string   `json:"location"`
	Capacity     int      `json:"capacity"`
	Images       []string `json:"images"`
	Amenities    []string `json:"amenities"`
	ContactPhone string   `json:"contactPhone"`
}

type ListingRepository interface {
	FindAll() ([]*Listing, error)
	FindByID(id string) (*Listing, error)
	FindByOwner(ownerID string) ([]*Listing, error)
	Append(listing *Listing) error
	Replace(listing *Listing) error
	Remove(id string) error
	SaveAll(listings []*Listing) error
}

type ListingService interface {
	List() ([]*Listing, error)
	GetByID(id string) (*Listing, error)
	GetByOwner(ownerID string) ([]*Listing, error)
	Upsert(session *Session, input *ListingInput) (*Listing, error)
	Delete(session *Session, id string) error
	RecordView(id string)
}

type FavoriteService interface {
	Toggle(session *Session, listingID string) (bool, error)
	IsFavorite(session *Session, listingID string) bool
	List(session *Session) ([]*Listing, error)
	CascadeRemove(listingID string) error
}

type ReviewService interface {
	Add(session *Session, listingID string, rating int, comment string) (*Review, error)
	List(listingID string) ([]Review, error)
}
