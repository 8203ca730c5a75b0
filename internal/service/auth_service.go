package service

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/metrics"
	"spaceflow/pkg/notify"
)

var (
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	hasLetterPattern = regexp.MustCompile(`[a-zA-Z]`)
	hasDigitPattern  = regexp.MustCompile(`[0-9]`)
)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func isValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < 6 {
		return false
	}
	return hasLetterPattern.MatchString(password) && hasDigitPattern.MatchString(password)
}

type AuthService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	auditRepo   domain.AuditLogRepository
	logger      logger.Logger
	notifier    notify.Notifier

	current *domain.Session
}

func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	auditRepo domain.AuditLogRepository,
	logger logger.Logger,
	notifier notify.Notifier,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		logger:      logger,
		notifier:    notifier,
	}
}

// Register creates a new account. Validation order is fixed: empty fields,
// name length, email format, password policy, confirmation, uniqueness.
// A successful registration does not log the user in.
func (s *AuthService) Register(name, email, password, confirmPassword string) (*domain.User, error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, s.failValidation("Tüm alanları doldurun")
	}

	// Minimums count characters, not bytes; Turkish input is multibyte.
	if utf8.RuneCountInString(name) < 3 {
		return nil, s.failValidation("İsim en az 3 karakter olmalıdır")
	}

	if !isValidEmail(email) {
		return nil, s.failValidation("Geçersiz e-posta adresi")
	}

	if !isValidPassword(password) {
		return nil, s.failValidation("Şifre en az 6 karakter olmalı, harf ve rakam içermelidir")
	}

	if password != confirmPassword {
		return nil, s.failValidation("Şifreler eşleşmiyor")
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		s.logger.Error("E-posta kontrolü sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if existing != nil {
		s.notifier.Notify(domain.ErrEmailTaken.Message, notify.SeverityError)
		return nil, domain.ErrEmailTaken
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Şifre özeti oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("şifre özeti oluşturulamadı: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		PasswordDigest: string(digest),
		CreatedAt:      now,
		LastLogin:      now,
		AvatarURL:      avatarURL(name),
		Favorites:      []string{},
	}

	if err := s.userRepo.Append(user); err != nil {
		s.notifier.Notify("Kayıt kaydedilemedi", notify.SeverityError)
		return nil, err
	}

	s.audit(domain.EntityTypeUser, user.ID, domain.ActionTypeCreate, fmt.Sprintf("Kullanıcı kaydedildi: %s", user.Name))

	s.notifier.Notify("Kayıt tamamlandı! Devam etmek için giriş yapın.", notify.SeveritySuccess)
	return user, nil
}

// Login fails distinctly for an unknown email and a wrong password.
func (s *AuthService) Login(email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, s.failValidation("Tüm alanları doldurun")
	}

	if !isValidEmail(email) {
		return nil, s.failValidation("Geçersiz e-posta adresi")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.notifier.Notify(domain.ErrUserNotFound.Message, notify.SeverityError)
		return nil, domain.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)); err != nil {
		s.logger.Warn("Şifre eşleşmiyor", map[string]interface{}{"email": email})
		s.notifier.Notify(domain.ErrWrongPassword.Message, notify.SeverityError)
		return nil, domain.ErrWrongPassword
	}

	user.LastLogin = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	session := domain.NewSession(user)
	if err := s.sessionRepo.Save(session); err != nil {
		return nil, err
	}

	s.current = session
	metrics.SetSessionActive(true)

	s.notifier.Notify(fmt.Sprintf("Hoş geldiniz, %s!", user.Name), notify.SeveritySuccess)
	return session, nil
}

func (s *AuthService) Logout() error {
	s.current = nil
	metrics.SetSessionActive(false)

	if err := s.sessionRepo.Clear(); err != nil {
		return err
	}

	s.notifier.Notify("Oturumunuzdan çıkış yaptınız", notify.SeverityInfo)
	return nil
}

// CurrentUser returns the active session, rehydrating it from the store on
// first access after a restart.
func (s *AuthService) CurrentUser() *domain.Session {
	if s.current == nil {
		session, err := s.sessionRepo.Get()
		if err != nil {
			// A storage fault is not "logged out"; make it visible.
			s.logger.Warn("Oturum geri yüklenemedi", map[string]interface{}{"error": err.Error()})
			return nil
		}
		if session != nil {
			s.current = session
			metrics.SetSessionActive(true)
		}
	}
	return s.current
}

func (s *AuthService) failValidation(message string) error {
	s.notifier.Notify(message, notify.SeverityError)
	return domain.NewValidationError(message)
}

func (s *AuthService) audit(entityType, entityID, action, details string) {
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

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=2563eb&color=fff", url.QueryEscape(name))
}
