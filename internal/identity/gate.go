// Package identity implements registration, login and the current
// session record. Passwords are stored as bcrypt hashes only.
package identity

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/store"
	"github.com/youriscent/storefront/internal/ui"
	"github.com/youriscent/storefront/pkg/errors"
)

// Gate holds the account store and the current session.
//
// Not safe for concurrent use; the dispatcher serializes all calls.
type Gate struct {
	store     store.Store
	navigator ui.Navigator
	logger    *zap.Logger
	now       func() time.Time

	current *domain.UserAccount
}

// NewGate creates an identity gate and restores any persisted session.
func NewGate(ctx context.Context, st store.Store, navigator ui.Navigator, logger *zap.Logger) *Gate {
	g := &Gate{
		store:     st,
		navigator: navigator,
		logger:    logger,
		now:       time.Now,
	}
	g.restoreSession(ctx)
	return g
}

// Register validates the fields, checks email uniqueness and appends a
// new account to the store. The returned account has the password hash
// already applied.
func (g *Gate) Register(ctx context.Context, name, email, password, phone string) (*domain.UserAccount, error) {
	if name == "" || email == "" || password == "" || phone == "" {
		return nil, &errors.ErrValidation{Message: "semua field harus diisi"}
	}
	if len(password) < 6 {
		return nil, &errors.ErrValidation{Field: "password", Message: "password minimal 6 karakter"}
	}
	if !strings.Contains(email, "@") {
		return nil, &errors.ErrValidation{Field: "email", Message: "email tidak valid"}
	}
	if len(phone) < 10 {
		return nil, &errors.ErrValidation{Field: "phone", Message: "nomor telepon minimal 10 digit"}
	}

	users := g.loadUsers(ctx)
	for _, u := range users {
		if u.Email == email {
			return nil, &errors.ErrConflict{Resource: "account", Key: email}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := g.now()
	account := domain.UserAccount{
		ID:           now.UnixMilli(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		CreatedAt:    now,
		Orders:       []string{},
		Wishlist:     []int{},
	}

	users = append(users, account)
	if err := g.saveUsers(ctx, users); err != nil {
		return nil, err
	}

	g.logger.Info("Account registered", zap.String("email", email))
	return &account, nil
}

// Login verifies the credentials against the stored accounts and, on
// success, sets and persists the current session.
func (g *Gate) Login(ctx context.Context, email, password string) (*domain.UserAccount, error) {
	if email == "" || password == "" {
		return nil, &errors.ErrValidation{Message: "email dan password harus diisi"}
	}

	users := g.loadUsers(ctx)
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			break
		}

		account := users[i]
		g.current = &account
		g.persistSession(ctx)
		g.logger.Info("Login successful", zap.String("email", email))
		return &account, nil
	}

	return nil, &errors.ErrAuth{Message: "email atau password salah"}
}

// Logout clears the session record and navigates home.
func (g *Gate) Logout(ctx context.Context) {
	g.current = nil
	if err := g.store.Delete(ctx, store.KeyCurrentUser); err != nil {
		g.logger.Error("Failed to clear session", zap.Error(err))
	}
	g.navigator.Navigate("home")
}

// Current returns the logged-in account, or nil.
func (g *Gate) Current() *domain.UserAccount {
	return g.current
}

// IsLoggedIn reports whether a session exists.
func (g *Gate) IsLoggedIn() bool {
	return g.current != nil
}

// RequireLogin returns true when a session exists; otherwise it
// navigates to the redirect target and returns false.
func (g *Gate) RequireLogin(redirectTarget string) bool {
	if g.current != nil {
		return true
	}
	g.navigator.Navigate(redirectTarget)
	return false
}

// ProfileUpdate carries the fields UpdateProfile may overwrite. Nil
// fields are left unchanged.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// UpdateProfile merges the updates into the stored account and
// re-persists the session.
func (g *Gate) UpdateProfile(ctx context.Context, updates ProfileUpdate) (*domain.UserAccount, error) {
	if g.current == nil {
		return nil, &errors.ErrAuth{Message: "user not logged in"}
	}

	users := g.loadUsers(ctx)
	for i := range users {
		if users[i].ID != g.current.ID {
			continue
		}

		if updates.Name != nil {
			users[i].Name = *updates.Name
		}
		if updates.Email != nil {
			users[i].Email = *updates.Email
		}
		if updates.Phone != nil {
			users[i].Phone = *updates.Phone
		}

		if err := g.saveUsers(ctx, users); err != nil {
			return nil, err
		}

		account := users[i]
		g.current = &account
		g.persistSession(ctx)
		return &account, nil
	}

	return nil, &errors.ErrNotFound{Resource: "account", ID: g.current.Email}
}

func (g *Gate) loadUsers(ctx context.Context) []domain.UserAccount {
	raw, err := g.store.Get(ctx, store.KeyUsers)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); !ok {
			g.logger.Error("Failed to load accounts", zap.Error(err))
		}
		return nil
	}

	var users []domain.UserAccount
	if err := json.Unmarshal(raw, &users); err != nil {
		readErr := &errors.ErrStorageRead{Key: store.KeyUsers, Err: err}
		g.logger.Warn("Discarding malformed accounts payload", zap.Error(readErr))
		return nil
	}
	return users
}

func (g *Gate) saveUsers(ctx context.Context, users []domain.UserAccount) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return g.store.Set(ctx, store.KeyUsers, raw)
}

func (g *Gate) persistSession(ctx context.Context) {
	raw, err := json.Marshal(g.current)
	if err != nil {
		g.logger.Error("Failed to encode session", zap.Error(err))
		return
	}
	if err := g.store.Set(ctx, store.KeyCurrentUser, raw); err != nil {
		g.logger.Error("Failed to persist session", zap.Error(err))
	}
}

func (g *Gate) restoreSession(ctx context.Context) {
	raw, err := g.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); !ok {
			g.logger.Error("Failed to load session", zap.Error(err))
		}
		return
	}

	var account domain.UserAccount
	if err := json.Unmarshal(raw, &account); err != nil {
		readErr := &errors.ErrStorageRead{Key: store.KeyCurrentUser, Err: err}
		g.logger.Warn("Discarding malformed session payload", zap.Error(readErr))
		return
	}
	g.current = &account
}
