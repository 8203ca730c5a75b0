package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
	"spaceflow/pkg/notify"
)

type reviewService struct {
	listingRepo domain.ListingRepository
	auditRepo   domain.AuditLogRepository
	logger      logger.Logger
	notifier    notify.Notifier
	navigator   notify.Navigator
}

func NewReviewService(
	listingRepo domain.ListingRepository,
	auditRepo domain.AuditLogRepository,
	logger logger.Logger,
	notifier notify.Notifier,
	navigator notify.Navigator,
) domain.ReviewService {
	return &reviewService{
		listingRepo: listingRepo,
		auditRepo:   auditRepo,
		logger:      logger,
		notifier:    notifier,
		navigator:   navigator,
	}
}

// Add appends a review and recomputes the listing's aggregate rating. A user
// can review a listing once; the author's name and avatar are snapshotted
// onto the review.
func (s *reviewService) Add(session *domain.Session, listingID string, rating int, comment string) (*domain.Review, error) {
	if session == nil {
		s.notifier.Notify("Değerlendirme yapmak için giriş yapmalısınız", notify.SeverityWarning)
		s.navigator.Navigate("login")
		return nil, domain.ErrAuthRequired
	}

	if rating < 1 || rating > 5 {
		return nil, s.failValidation("Puan 1 ile 5 arasında olmalıdır")
	}
	if utf8.RuneCountInString(comment) < 10 {
		return nil, s.failValidation("Yorum en az 10 karakter olmalıdır")
	}

	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	if listing.HasReviewBy(session.ID) {
		s.notifier.Notify(domain.ErrAlreadyReviewed.Message, notify.SeverityWarning)
		return nil, domain.ErrAlreadyReviewed
	}

	review := domain.Review{
		ID:              uuid.NewString(),
		AuthorID:        session.ID,
		AuthorName:      session.Name,
		AuthorAvatarURL: session.AvatarURL,
		Rating:          rating,
		Comment:         comment,
		CreatedAt:       time.Now(),
	}

	listing.Reviews = append(listing.Reviews, review)
	listing.RecalculateRating()

	if err := s.listingRepo.Replace(listing); err != nil {
		s.notifier.Notify("Değerlendirme kaydedilemedi", notify.SeverityError)
		return nil, err
	}

	metrics.RecordReview()
	s.audit(listingID, fmt.Sprintf("Değerlendirme eklendi: %d puan", rating))

	s.notifier.Notify("Değerlendirmeniz kaydedildi", notify.SeveritySuccess)
	return &review, nil
}

func (s *reviewService) List(listingID string) ([]domain.Review, error) {
	listing, err := s.listingRepo.FindByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	if listing.Reviews == nil {
		return []domain.Review{}, nil
	}
	return listing.Reviews, nil
}

func (s *reviewService) failValidation(message string) error {
	s.notifier.Notify(message, notify.SeverityError)
	return domain.NewValidationError(message)
}

func (s *reviewService) audit(listingID, details string) {
	entry := &domain.AuditLog{
		ID:         uuid.NewString(),
		EntityType: domain.EntityTypeListing,
		EntityID:   listingID,
		Action:     domain.ActionTypeUpdate,
		Details:    details,
		CreatedAt:  time.Now(),
	}

	if err := s.auditRepo.Append(entry); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"entityId": listingID, "error": err.Error()})
	}
}
