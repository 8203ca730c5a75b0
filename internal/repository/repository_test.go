package repository

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceflow/internal/domain"
	"spaceflow/pkg/logger"
	"spaceflow/pkg/store"
)

func newRepos(t *testing.T) (domain.UserRepository, domain.ListingRepository, domain.SessionRepository, domain.AuditLogRepository) {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)
	memStore := store.NewMemoryStore()

	return NewUserRepository(memStore, log),
		NewListingRepository(memStore, log),
		NewSessionRepository(memStore, log),
		NewAuditLogRepository(memStore, log)
}

func TestUserRepositoryEmptyStore(t *testing.T) {
	users, _, _, _ := newRepos(t)

	all, err := users.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	user, err := users.FindByID("yok")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = users.FindByEmail("yok@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryAppendAndUpdate(t *testing.T) {
	users, _, _, _ := newRepos(t)

	require.NoError(t, users.Append(&domain.User{ID: "u1", Email: "ayse@example.com", Name: "Ayşe"}))
	require.NoError(t, users.Append(&domain.User{ID: "u2", Email: "fatma@example.com", Name: "Fatma"}))

	found, err := users.FindByEmail("fatma@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u2", found.ID)

	found.Name = "Fatma Demir"
	require.NoError(t, users.Update(found))

	again, err := users.FindByID("u2")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, "Fatma Demir", again.Name)

	err = users.Update(&domain.User{ID: "yok"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListingRepositoryReplaceAndRemove(t *testing.T) {
	_, listings, _, _ := newRepos(t)

	require.NoError(t, listings.Append(&domain.Listing{ID: "l1", OwnerID: "u1", Title: "Salon"}))
	require.NoError(t, listings.Append(&domain.Listing{ID: "l2", OwnerID: "u2", Title: "Stüdyo"}))

	owned, err := listings.FindByOwner("u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "l1", owned[0].ID)

	require.NoError(t, listings.Replace(&domain.Listing{ID: "l1", OwnerID: "u1", Title: "Büyük salon"}))

	updated, err := listings.FindByID("l1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Büyük salon", updated.Title)

	assert.ErrorIs(t, listings.Replace(&domain.Listing{ID: "yok"}), domain.ErrListingNotFound)

	require.NoError(t, listings.Remove("l1"))
	assert.ErrorIs(t, listings.Remove("l1"), domain.ErrListingNotFound)

	remaining, err := listings.FindAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "l2", remaining[0].ID)
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	_, _, sessions, _ := newRepos(t)

	stored, err := sessions.Get()
	require.NoError(t, err)
	assert.Nil(t, stored)

	require.NoError(t, sessions.Save(&domain.Session{ID: "u1", Name: "Ayşe"}))

	stored, err = sessions.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "u1", stored.ID)

	require.NoError(t, sessions.Clear())

	stored, err = sessions.Get()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestAuditLogRepositoryRecentIsNewestFirst(t *testing.T) {
	_, _, _, logs := newRepos(t)

	require.NoError(t, logs.Append(&domain.AuditLog{ID: "a1", Details: "ilk"}))
	require.NoError(t, logs.Append(&domain.AuditLog{ID: "a2", Details: "ikinci"}))
	require.NoError(t, logs.Append(&domain.AuditLog{ID: "a3", Details: "üçüncü"}))

	recent, err := logs.FindRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "a3", recent[0].ID)
	assert.Equal(t, "a2", recent[1].ID)
}
