package service

import (
	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/notify"
)

type favoriteService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	listingRepo domain.ListingRepository
	logger      logger.Logger
	notifier    notify.Notifier
	navigator   notify.Navigator
}

func NewFavoriteService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	listingRepo domain.ListingRepository,
	logger logger.Logger,
	notifier notify.Notifier,
	navigator notify.Navigator,
) domain.FavoriteService {
	return &favoriteService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		listingRepo: listingRepo,
		logger:      logger,
		notifier:    notifier,
		navigator:   navigator,
	}
}

// Toggle flips the favorite state of a listing for the session user and
// returns the new state. The user record is the source of truth; the session
// copy is refreshed afterwards.
func (s *favoriteService) Toggle(session *domain.Session, listingID string) (bool, error) {
	if session == nil {
		s.notifier.Notify("Favorilere eklemek için giriş yapmalısınız", notify.SeverityWarning)
		s.navigator.Navigate("login")
		return false, domain.ErrAuthRequired
	}

	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		return false, err
	}
	if listing == nil {
		return false, domain.ErrListingNotFound
	}

	user, err := s.userRepo.FindByID(session.ID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, domain.ErrUserNotFound
	}

	added := true
	favorites := make([]string, 0, len(user.Favorites)+1)
	for _, id := range user.Favorites {
		if id == listingID {
			added = false
			continue
		}
		favorites = append(favorites, id)
	}
	if added {
		favorites = append(favorites, listingID)
	}
	user.Favorites = favorites

	if err := s.userRepo.Update(user); err != nil {
		s.notifier.Notify("Favoriler kaydedilemedi", notify.SeverityError)
		return false, err
	}

	session.Favorites = make([]string, len(favorites))
	copy(session.Favorites, favorites)
	if err := s.sessionRepo.Save(session); err != nil {
		s.logger.Error("Oturum favorileri güncellenemedi", map[string]interface{}{"userId": session.ID, "error": err.Error()})
	}

	if added {
		s.notifier.Notify("Favorilere eklendi", notify.SeveritySuccess)
	} else {
		s.notifier.Notify("Favorilerden çıkarıldı", notify.SeverityInfo)
	}
	return added, nil
}

func (s *favoriteService) IsFavorite(session *domain.Session, listingID string) bool {
	if session == nil {
		return false
	}
	return session.HasFavorite(listingID)
}

// List returns the session user's favorited listings. Ids whose listing no
// longer exists are skipped silently.
func (s *favoriteService) List(session *domain.Session) ([]*domain.Listing, error) {
	if session == nil {
		return nil, domain.ErrAuthRequired
	}

	listings, err := s.listingRepo.FindAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	favorites := []*domain.Listing{}
	for _, id := range session.Favorites {
		if listing, ok := byID[id]; ok {
			favorites = append(favorites, listing)
		}
	}
	return favorites, nil
}

// CascadeRemove drops a deleted listing from every user's favorites and from
// the persisted session.
func (s *favoriteService) CascadeRemove(listingID string) error {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return err
	}

	changed := false
	for _, user := range users {
		remaining := make([]string, 0, len(user.Favorites))
		for _, id := range user.Favorites {
			if id == listingID {
				changed = true
				continue
			}
			remaining = append(remaining, id)
		}
		user.Favorites = remaining
	}

	if changed {
		if err := s.userRepo.SaveAll(users); err != nil {
			return err
		}
	}

	session, err := s.sessionRepo.Get()
	if err != nil || session == nil {
		return err
	}
	if session.HasFavorite(listingID) {
		remaining := make([]string, 0, len(session.Favorites))
		for _, id := range session.Favorites {
			if id != listingID {
				remaining = append(remaining, id)
			}
		}
		session.Favorites = remaining
		if err := s.sessionRepo.Save(session); err != nil {
			return err
		}
	}
	return nil
}
