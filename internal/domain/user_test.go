package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionCopiesFavorites(t *testing.T) {
	user := &User{
		ID:             "u1",
		Name:           "Ayşe Yılmaz",
		Email:          "ayse@example.com",
		PasswordDigest: "gizli",
		Favorites:      []string{"ilan-1"},
	}

	session := NewSession(user)

	assert.Equal(t, user.ID, session.ID)
	assert.Equal(t, user.Favorites, session.Favorites)

	// The copy is independent of the user record.
	session.Favorites = append(session.Favorites, "ilan-2")
	assert.Len(t, user.Favorites, 1)
}

func TestSessionHasFavorite(t *testing.T) {
	session := &Session{Favorites: []string{"ilan-1"}}

	assert.True(t, session.HasFavorite("ilan-1"))
	assert.False(t, session.HasFavorite("ilan-2"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(NewValidationError("hatalı alan")))
	assert.Equal(t, KindConflict, KindOf(ErrEmailTaken))
	assert.Equal(t, ErrorKind(""), KindOf(assert.AnError))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
