package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
	"spaceflow/pkg/notify"
)

var phonePattern = regexp.MustCompile(`^(\+\d{1,3}\s?)?(\(?\d{2,3}\)?\s?)?\d{4,5}-?\d{4}$`)

func isValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

type listingService struct {
	listingRepo domain.ListingRepository
	favorites   domain.FavoriteService
	auditRepo   domain.AuditLogRepository
	logger      logger.Logger
	notifier    notify.Notifier
	navigator   notify.Navigator
}

func NewListingService(
	listingRepo domain.ListingRepository,
	favorites domain.FavoriteService,
	auditRepo domain.AuditLogRepository,
	logger logger.Logger,
	notifier notify.Notifier,
	navigator notify.Navigator,
) domain.ListingService {
	return &listingService{
		listingRepo: listingRepo,
		favorites:   favorites,
		auditRepo:   auditRepo,
		logger:      logger,
		notifier:    notifier,
		navigator:   navigator,
	}
}

func (s *listingService) List() ([]*domain.Listing, error) {
	return s.listingRepo.FindAll()
}

func (s *listingService) GetByID(id string) (*domain.Listing, error) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}
	return listing, nil
}

func (s *listingService) GetByOwner(ownerID string) ([]*domain.Listing, error) {
	return s.listingRepo.FindByOwner(ownerID)
}

// Upsert creates a listing when the input carries no known id, and updates it
// otherwise. Derived fields (views, rating, reviews, status) are never taken
// from input; on update they are preserved from the stored record.
func (s *listingService) Upsert(session *domain.Session, input *domain.ListingInput) (*domain.Listing, error) {
	if session == nil {
		s.notifier.Notify("İlan vermek için giriş yapmalısınız", notify.SeverityWarning)
		s.navigator.Navigate("login")
		return nil, domain.ErrAuthRequired
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	normalizeInput(input)

	var existing *domain.Listing
	if input.ID != "" {
		found, err := s.listingRepo.FindByID(input.ID)
		if err != nil {
			return nil, err
		}
		existing = found
	}

	now := time.Now()

	if existing == nil {
		listing := &domain.Listing{
			ID:           uuid.NewString(),
			Title:        input.Title,
			Description:  input.Description,
			Category:     input.Category,
			Price:        input.Price,
			Period:       input.Period,
			City:         input.City,
			Location:     input.Location,
			Capacity:     input.Capacity,
			Images:       input.Images,
			Amenities:    input.Amenities,
			ContactPhone: input.ContactPhone,
			OwnerID:      session.ID,
			OwnerName:    session.Name,
			CreatedAt:    now,
			UpdatedAt:    now,
			ViewCount:    0,
			Rating:       0,
			ReviewCount:  0,
			Reviews:      []domain.Review{},
			Status:       domain.ListingStatusActive,
		}

		if err := s.listingRepo.Append(listing); err != nil {
			s.notifier.Notify("İlan kaydedilemedi", notify.SeverityError)
			return nil, err
		}

		metrics.RecordListingOperation("create")
		s.audit(domain.EntityTypeListing, listing.ID, domain.ActionTypeCreate, fmt.Sprintf("İlan oluşturuldu: %s", listing.Title))

		s.notifier.Notify("İlanınız yayınlandı!", notify.SeveritySuccess)
		return listing, nil
	}

	if existing.OwnerID != session.ID {
		s.notifier.Notify(domain.ErrNotOwner.Message, notify.SeverityError)
		return nil, domain.ErrNotOwner
	}

	updated := &domain.Listing{
		ID:           existing.ID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		Period:       input.Period,
		City:         input.City,
		Location:     input.Location,
		Capacity:     input.Capacity,
		Images:       input.Images,
		Amenities:    input.Amenities,
		ContactPhone: input.ContactPhone,
		OwnerID:      existing.OwnerID,
		OwnerName:    existing.OwnerName,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    now,
		ViewCount:    existing.ViewCount,
		Rating:       existing.Rating,
		ReviewCount:  existing.ReviewCount,
		Reviews:      existing.Reviews,
		Status:       existing.Status,
	}

	if err := s.listingRepo.Replace(updated); err != nil {
		s.notifier.Notify("İlan güncellenemedi", notify.SeverityError)
		return nil, err
	}

	metrics.RecordListingOperation("update")
	s.audit(domain.EntityTypeListing, updated.ID, domain.ActionTypeUpdate, fmt.Sprintf("İlan güncellendi: %s", updated.Title))

	s.notifier.Notify("İlanınız güncellendi", notify.SeveritySuccess)
	return updated, nil
}

// Delete removes a listing and drops it from every user's favorites.
func (s *listingService) Delete(session *domain.Session, id string) error {
	if session == nil {
		s.notifier.Notify(domain.ErrAuthRequired.Message, notify.SeverityWarning)
		s.navigator.Navigate("login")
		return domain.ErrAuthRequired
	}

	listing, err := s.listingRepo.FindByID(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return domain.ErrListingNotFound
	}

	if listing.OwnerID != session.ID {
		s.notifier.Notify(domain.ErrNotOwner.Message, notify.SeverityError)
		return domain.ErrNotOwner
	}

	if err := s.listingRepo.Remove(id); err != nil {
		s.notifier.Notify("İlan silinemedi", notify.SeverityError)
		return err
	}

	if err := s.favorites.CascadeRemove(id); err != nil {
		s.logger.Error("Favoriler temizlenemedi", map[string]interface{}{"listingId": id, "error": err.Error()})
	}

	metrics.RecordListingOperation("delete")
	s.audit(domain.EntityTypeListing, id, domain.ActionTypeDelete, fmt.Sprintf("İlan silindi: %s", listing.Title))

	s.notifier.Notify("İlanınız silindi", notify.SeveritySuccess)
	return nil
}

// RecordView increments a listing's view counter. Failures are logged and
// swallowed so a broken counter never blocks a detail view.
func (s *listingService) RecordView(id string) {
	listing, err := s.listingRepo.FindByID(id)
	if err != nil || listing == nil {
		return
	}

	listing.ViewCount++
	if err := s.listingRepo.Replace(listing); err != nil {
		s.logger.Warn("Görüntülenme sayısı güncellenemedi", map[string]interface{}{"listingId": id, "error": err.Error()})
		return
	}

	metrics.RecordView()
}

// validateInput enforces the field minimums in character counts, not bytes.
func (s *listingService) validateInput(input *domain.ListingInput) error {
	if utf8.RuneCountInString(input.Title) < 5 {
		return s.failValidation("Başlık en az 5 karakter olmalıdır")
	}
	if utf8.RuneCountInString(input.Description) < 20 {
		return s.failValidation("Açıklama en az 20 karakter olmalıdır")
	}
	if input.Price <= 0 {
		return s.failValidation("Geçerli bir fiyat girin")
	}
	if utf8.RuneCountInString(input.City) < 3 {
		return s.failValidation("Şehir en az 3 karakter olmalıdır")
	}
	if !isValidPhone(input.ContactPhone) {
		return s.failValidation("Geçerli bir telefon numarası girin")
	}
	return nil
}

func (s *listingService) failValidation(message string) error {
	s.notifier.Notify(message, notify.SeverityError)
	return domain.NewValidationError(message)
}

func (s *listingService) audit(entityType, entityID, action, details string) {
	entry := &domain.AuditLog{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		CreatedAt:  time.Now(),
	}

	if err := s.auditRepo.Append(entry); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"entityId": entityID, "error": err.Error()})
	}
}

// normalizeInput coerces out-of-range fields onto safe defaults instead of
// rejecting them.
func normalizeInput(input *domain.ListingInput) {
	if !input.Category.Valid() {
		input.Category = domain.CategoryMultiUse
	}
	if !input.Period.Valid() {
		input.Period = domain.PeriodHour
	}
	if input.Capacity <= 0 {
		input.Capacity = domain.DefaultCapacity
	}

	images := make([]string, 0, len(input.Images))
	for _, img := range input.Images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		images = append(images, img)
		if len(images) == domain.MaxImages {
			break
		}
	}
	if len(images) == 0 {
		images = []string{domain.PlaceholderImageURL}
	}
	input.Images = images

	if strings.TrimSpace(input.Location) == "" {
		input.Location = input.City
	}
	if input.Amenities == nil {
		input.Amenities = []string{}
	}
}
