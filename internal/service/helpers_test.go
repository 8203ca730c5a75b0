package service

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"spaceflow/internal/domain"
	"spaceflow/internal/repository"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/notify"
	"spaceflow/pkg/store"
)

type fixture struct {
	store       store.Store
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	listingRepo domain.ListingRepository
	auditRepo   domain.AuditLogRepository

	auth      *AuthService
	listings  domain.ListingService
	favorites domain.FavoriteService
	reviews   domain.ReviewService
	search    domain.SearchService
}

func newTestLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

func newTestNotifier(log logger.Logger) *notify.LogNotifier {
	return notify.NewLogNotifier(log)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := newTestLogger()
	notifier := newTestNotifier(log)
	memStore := store.NewMemoryStore()

	userRepo := repository.NewUserRepository(memStore, log)
	sessionRepo := repository.NewSessionRepository(memStore, log)
	listingRepo := repository.NewListingRepository(memStore, log)
	auditRepo := repository.NewAuditLogRepository(memStore, log)

	auth := NewAuthService(userRepo, sessionRepo, auditRepo, log, notifier)
	favorites := NewFavoriteService(userRepo, sessionRepo, listingRepo, log, notifier, notifier)
	listings := NewListingService(listingRepo, favorites, auditRepo, log, notifier, notifier)
	reviews := NewReviewService(listingRepo, auditRepo, log, notifier, notifier)
	search := NewSearchService(listings, domain.DefaultPageSize, 10*time.Millisecond, log)

	return &fixture{
		store:       memStore,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		listingRepo: listingRepo,
		auditRepo:   auditRepo,
		auth:        auth,
		listings:    listings,
		favorites:   favorites,
		reviews:     reviews,
		search:      search,
	}
}

// registerAndLogin creates an account and returns its active session.
func (f *fixture) registerAndLogin(t *testing.T, name, email string) *domain.Session {
	t.Helper()

	_, err := f.auth.Register(name, email, "parola1", "parola1")
	require.NoError(t, err)

	session, err := f.auth.Login(email, "parola1")
	require.NoError(t, err)
	return session
}

func validInput() *domain.ListingInput {
	return &domain.ListingInput{
		Title:        "Merkezi toplantı salonu",
		Description:  "Şehir merkezinde, projektörlü ve ferah bir toplantı salonu.",
		Category:     domain.CategoryMeeting,
		Price:        250,
		Period:       domain.PeriodHour,
		City:         "İstanbul",
		Location:     "Kadıköy",
		Capacity:     20,
		Images:       []string{"https://example.com/salon.jpg"},
		Amenities:    []string{"wifi", "projektör"},
		ContactPhone: "(216) 5551-2345",
	}
}

// createListing registers an owner, logs in and publishes a listing.
func (f *fixture) createListing(t *testing.T, ownerEmail string, mutate func(*domain.ListingInput)) (*domain.Session, *domain.Listing) {
	t.Helper()

	session := f.registerAndLogin(t, "İlan Sahibi", ownerEmail)

	input := validInput()
	if mutate != nil {
		mutate(input)
	}

	listing, err := f.listings.Upsert(session, input)
	require.NoError(t, err)
	return session, listing
}
