package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceflow/internal/domain"
)

func TestToggleRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.favorites.Toggle(nil, "herhangi")
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestToggleUnknownListing(t *testing.T) {
	f := newFixture(t)
	session := f.registerAndLogin(t, "Hayran Kullanıcı", "hayran@example.com")

	_, err := f.favorites.Toggle(session, "boyle-bir-ilan-yok")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestToggleTwiceRestoresState(t *testing.T) {
	f := newFixture(t)
	_, listing := f.createListing(t, "sahip@example.com", nil)

	session := f.registerAndLogin(t, "Hayran Kullanıcı", "hayran@example.com")

	added, err := f.favorites.Toggle(session, listing.ID)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, f.favorites.IsFavorite(session, listing.ID))

	removed, err := f.favorites.Toggle(session, listing.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, f.favorites.IsFavorite(session, listing.ID))

	user, err := f.userRepo.FindByID(session.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.Favorites)
}

func TestToggleRefreshesSessionCopy(t *testing.T) {
	f := newFixture(t)
	_, listing := f.createListing(t, "sahip@example.com", nil)

	session := f.registerAndLogin(t, "Hayran Kullanıcı", "hayran@example.com")

	_, err := f.favorites.Toggle(session, listing.ID)
	require.NoError(t, err)

	// Both the live session object and the persisted copy carry the new state.
	assert.Equal(t, []string{listing.ID}, session.Favorites)

	stored, err := f.sessionRepo.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{listing.ID}, stored.Favorites)
}

func TestFavoriteListSkipsMissing(t *testing.T) {
	f := newFixture(t)
	_, listing := f.createListing(t, "sahip@example.com", nil)

	session := f.registerAndLogin(t, "Hayran Kullanıcı", "hayran@example.com")
	_, err := f.favorites.Toggle(session, listing.ID)
	require.NoError(t, err)

	// A stale id left behind in the user record must not surface.
	user, err := f.userRepo.FindByID(session.ID)
	require.NoError(t, err)
	user.Favorites = append(user.Favorites, "silinmis-ilan")
	require.NoError(t, f.userRepo.Update(user))
	session.Favorites = user.Favorites

	favorites, err := f.favorites.List(session)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, listing.ID, favorites[0].ID)
}

func TestFavoriteListRequiresSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.favorites.List(nil)
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}
