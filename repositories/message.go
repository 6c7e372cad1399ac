//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"conference-sim/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	SaveMessages(snapshot domain.MessageSnapshot) error
	LoadMessages() (domain.MessageSnapshot, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// SaveMessages replaces the stored log, keyed "msg:{position}:{uuid}".
// The position keeps the append order, which a timestamp key would lose
// for two messages sent within the same clock tick.
func (r MessageRepository) SaveMessages(snapshot domain.MessageSnapshot) error {
	err := replaceAll(r.db, PrefixMessage, snapshot.Messages, func(m domain.Message) string { return m.ID.String() })
	if err != nil {
		return fmt.Errorf("save messages: %w", err)
	}
	r.log.Debug("Messages saved", "messages", len(snapshot.Messages))
	return nil
}

func (r MessageRepository) LoadMessages() (domain.MessageSnapshot, error) {
	messages, err := loadAll[domain.Message](r.db, PrefixMessage)
	if err != nil {
		return domain.MessageSnapshot{}, fmt.Errorf("load messages: %w", err)
	}
	return domain.MessageSnapshot{Messages: messages}, nil
}
