package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"spaceflow/internal/domain"
	"spaceflow/internal/repository"
	"spaceflow/pkg/logger"
)

func TestRegisterCreatesUser(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register("Ayşe Yılmaz", "ayse@example.com", "parola1", "parola1")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ayşe Yılmaz", user.Name)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.Empty(t, user.Favorites)
	assert.Contains(t, user.AvatarURL, "ui-avatars.com")

	// The digest is bcrypt, never the raw password.
	assert.NotEqual(t, "parola1", user.PasswordDigest)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte("parola1")))

	// Registration does not open a session.
	assert.Nil(t, f.auth.CurrentUser())

	stored, err := f.userRepo.FindByEmail("ayse@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name            string
		userName        string
		email           string
		password        string
		confirmPassword string
	}{
		{"empty fields", "", "ayse@example.com", "parola1", "parola1"},
		{"short name", "Ay", "ayse@example.com", "parola1", "parola1"},
		{"short multibyte name", "Ağ", "ayse@example.com", "parola1", "parola1"},
		{"invalid email", "Ayşe Yılmaz", "ayse-example.com", "parola1", "parola1"},
		{"short password", "Ayşe Yılmaz", "ayse@example.com", "p1", "p1"},
		{"short multibyte password", "Ayşe Yılmaz", "ayse@example.com", "şifr1", "şifr1"},
		{"password without digit", "Ayşe Yılmaz", "ayse@example.com", "parolaa", "parolaa"},
		{"password without letter", "Ayşe Yılmaz", "ayse@example.com", "1234567", "1234567"},
		{"mismatched confirmation", "Ayşe Yılmaz", "ayse@example.com", "parola1", "parola2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.auth.Register(tc.userName, tc.email, tc.password, tc.confirmPassword)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}

	users, err := f.userRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("Ayşe Yılmaz", "ayse@example.com", "parola1", "parola1")
	require.NoError(t, err)

	_, err = f.auth.Register("Başka Ayşe", "ayse@example.com", "parola2", "parola2")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	users, err := f.userRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestLoginDistinguishesFailures(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register("Ayşe Yılmaz", "ayse@example.com", "parola1", "parola1")
	require.NoError(t, err)

	_, err = f.auth.Login("bilinmeyen@example.com", "parola1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.auth.Login("ayse@example.com", "yanlis9")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	// Neither failure opened a session.
	assert.Nil(t, f.auth.CurrentUser())
}

func TestLoginOpensSession(t *testing.T) {
	f := newFixture(t)

	session := f.registerAndLogin(t, "Ayşe Yılmaz", "ayse@example.com")

	assert.Equal(t, "ayse@example.com", session.Email)
	assert.Empty(t, session.Favorites)

	current := f.auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)

	stored, err := f.sessionRepo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session.ID, stored.ID)
}

func TestLogoutClearsSession(t *testing.T) {
	f := newFixture(t)

	f.registerAndLogin(t, "Ayşe Yılmaz", "ayse@example.com")
	require.NoError(t, f.auth.Logout())

	assert.Nil(t, f.auth.CurrentUser())

	stored, err := f.sessionRepo.Get()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCurrentUserRehydratesFromStore(t *testing.T) {
	f := newFixture(t)

	session := f.registerAndLogin(t, "Ayşe Yılmaz", "ayse@example.com")

	// A fresh service over the same store finds the persisted session lazily.
	log := newTestLogger()
	fresh := NewAuthService(f.userRepo, f.sessionRepo, f.auditRepo, log, newTestNotifier(log))

	current := fresh.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, session.ID, current.ID)
}

type brokenStore struct{}

func (brokenStore) Set(key string, value interface{}) error {
	return errors.New("depolama devre dışı")
}

func (brokenStore) Get(key string, dest interface{}) (bool, error) {
	return false, errors.New("depolama devre dışı")
}

func (brokenStore) Remove(key string) error {
	return errors.New("depolama devre dışı")
}

func TestCurrentUserReportsStorageFailure(t *testing.T) {
	f := newFixture(t)

	var buf bytes.Buffer
	log := logger.New(logger.WarnLevel, &buf)
	sessionRepo := repository.NewSessionRepository(brokenStore{}, log)
	auth := NewAuthService(f.userRepo, sessionRepo, f.auditRepo, log, newTestNotifier(log))

	assert.Nil(t, auth.CurrentUser())
	assert.Contains(t, buf.String(), "Oturum geri yüklenemedi")
}

func TestRegisterWritesAuditLog(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register("Ayşe Yılmaz", "ayse@example.com", "parola1", "parola1")
	require.NoError(t, err)

	logs, err := f.auditRepo.FindRecent(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.EntityTypeUser, logs[0].EntityType)
	assert.Equal(t, user.ID, logs[0].EntityID)
	assert.Equal(t, domain.ActionTypeCreate, logs[0].Action)
}
