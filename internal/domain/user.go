package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordDigest string    `json:"passwordDigest"`
	CreatedAt      time.Time `json:"createdAt"`
	LastLogin      time.Time `json:"lastLogin"`
	AvatarURL      string    `json:"avatarUrl"`
	Favorites      []string  `json:"favorites"`
}

// Session is the externally visible projection of a logged-in User. It never
// carries the password digest; favorites are a derived copy of the user record
// and get refreshed after every favorite toggle.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
	AvatarURL string    `json:"avatarUrl"`
	Favorites []string  `json:"favorites"`
}

// NewSession derives a Session from a User record.
func NewSession(user *User) *Session {
	favorites := make([]string, len(user.Favorites))
	copy(favorites, user.Favorites)

	return &Session{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		AvatarURL: user.AvatarURL,
		Favorites: favorites,
	}
}

// HasFavorite reports whether the session user has favorited the listing.
func (s *Session) HasFavorite(listingID string) bool {
	for _, id := range s.Favorites {
		if id == listingID {
			return true
		}
	}
	return false
}

type UserRepository interface {
	FindAll() ([]*User, error)
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Append(user *User) error
	Update(user *User) error
	SaveAll(users []*User) error
}

type SessionRepository interface {
	Get() (*Session, error)
	Save(session *Session) error
	Clear() error
}

type AuthService interface {
	Register(name, email, password, confirmPassword string) (*User, error)
	Login(email, password string) (*Session, error)
	Logout() error
	CurrentUser() *Session
}
