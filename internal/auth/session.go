package auth

import (
	"log"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"proker/internal/models"
	"proker/internal/storage"
)

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service manages the current-user and session records in the store.
type Service struct {
	store *storage.Store
}

// NewService builds a session service over the given store.
func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// IsLoggedIn reports whether a user record and a session with a token exist.
func (s *Service) IsLoggedIn() bool {
	user := s.store.CurrentUser()
	session := s.store.Session()
	return user != nil && session != nil && session.Token != ""
}

// Login authenticates against the stored user record. When a user with a
// password hash exists, the password must verify; a fresh store accepts any
// credentials and creates the user record on the spot. On success a session
// token is minted (30 days with remember, 1 day otherwise) and default data
// is seeded.
func (s *Service) Login(email, password string, remember bool) (*models.User, bool) {
	if email == "" || password == "" {
		return nil, false
	}

	user := s.store.CurrentUser()
	if user != nil && user.Email == email && user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, false
		}
	} else {
		user = &models.User{
			ID:        uuid.NewString(),
			Name:      displayNameFromEmail(email),
			Email:     email,
			Role:      "admin",
			CreatedAt: time.Now(),
			Preferences: models.Preferences{
				Theme:         "light",
				Notifications: true,
			},
		}
		if !s.store.SetCurrentUser(user) {
			return nil, false
		}
	}

	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	if !s.openSession(user, ttl) {
		return nil, false
	}
	s.store.Init()
	return user, true
}

// Register validates the input, creates the user record with a bcrypt
// password hash, opens a session and seeds default data.
func (s *Service) Register(name, email, password string) (*models.User, bool) {
	if !ValidateEmail(email) {
		return nil, false
	}
	if strength := PasswordStrength(password); strength.Score < 3 {
		log.Printf("auth: weak password rejected: %s", strength.Message)
		return nil, false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: error hashing password: %v", err)
		return nil, false
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         "member",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		Preferences: models.Preferences{
			Theme:         "light",
			Notifications: true,
		},
	}
	if !s.store.SetCurrentUser(user) {
		return nil, false
	}
	if !s.openSession(user, sessionTTL) {
		return nil, false
	}
	s.store.Init()
	return user, true
}

// Logout clears the user and session records.
func (s *Service) Logout() {
	s.store.Remove(storage.KeyUser)
	s.store.Remove(storage.KeySession)
}

// CheckSession reports whether the stored session is present, verifiable and
// unexpired. An expired or invalid session is logged out as a side effect.
func (s *Service) CheckSession() bool {
	session := s.store.Session()
	if session == nil || session.Token == "" {
		return false
	}
	if time.Now().After(session.ExpiresAt) {
		s.Logout()
		return false
	}
	if _, err := ValidateToken(session.Token); err != nil {
		s.Logout()
		return false
	}
	return true
}

func (s *Service) openSession(user *models.User, ttl time.Duration) bool {
	token, expiresAt, err := GenerateToken(user.ID, user.Email, ttl)
	if err != nil {
		log.Printf("auth: error generating session token: %v", err)
		return false
	}
	return s.store.SetSession(&models.Session{Token: token, ExpiresAt: expiresAt})
}

func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "User"
	}
	return strings.ToUpper(local[:1]) + local[1:]
}

// ValidateEmail checks the rough shape of an email address.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Strength is a password strength verdict.
type Strength struct {
	Score   int
	Message string
}

// PasswordStrength scores a password one point each for length >= 8, a
// lowercase letter, an uppercase letter, a digit, and a symbol.
func PasswordStrength(password string) Strength {
	score := 0
	if len(password) >= 8 {
		score++
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			score++
		}
	}

	message := "Strong password"
	switch {
	case score < 3:
		message = "Password is too weak: use at least 8 characters with mixed case and numbers"
	case score < 5:
		message = "Password is acceptable; add symbols to strengthen it"
	}
	return Strength{Score: score, Message: message}
}
