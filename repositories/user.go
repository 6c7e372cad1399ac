//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"conference-sim/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	SaveUsers(snapshot domain.UserSnapshot) error
	LoadUsers() (domain.UserSnapshot, error)
}

type UserRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewUserRepository(db *badger.DB, log *slog.Logger) UserRepository {
	return UserRepository{db: db, log: log}
}

// SaveUsers replaces the stored users, keyed "user:{position}:{id}".
// Passwords are stored as given.
func (r UserRepository) SaveUsers(snapshot domain.UserSnapshot) error {
	err := replaceAll(r.db, PrefixUser, snapshot.Users, func(u domain.User) string { return u.ID })
	if err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	r.log.Debug("Users saved", "users", len(snapshot.Users))
	return nil
}

func (r UserRepository) LoadUsers() (domain.UserSnapshot, error) {
	users, err := loadAll[domain.User](r.db, PrefixUser)
	if err != nil {
		return domain.UserSnapshot{}, fmt.Errorf("load users: %w", err)
	}
	return domain.UserSnapshot{Users: users}, nil
}
