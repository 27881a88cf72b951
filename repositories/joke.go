//go:generate go run go.uber.org/mock/mockgen -source=joke.go -destination=../mocks/mock_joke_repository.go -package=mocks
package repositories

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// IJokeRepository remembers the jokes already told in one dialogue session.
// It only grows: there is no eviction.
type IJokeRepository interface {
	Contains(joke string) (bool, error)
	Add(joke string) error
	List() ([]string, error)
}

type JokeRepository struct {
	db      *badger.DB
	log     *slog.Logger
	session uuid.UUID
}

// NewJokeRepository scopes the told jokes to session, so several sessions
// can share one database without seeing each other's history.
func NewJokeRepository(db *badger.DB, log *slog.Logger, session uuid.UUID) JokeRepository {
	return JokeRepository{db: db, log: log, session: session}
}

// Contains reports whether the exact joke text was already told.
func (j JokeRepository) Contains(joke string) (bool, error) {
	err := j.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(j.key(joke))
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to look up joke: %w", err)
	}
}

// Add records the joke. The key is "joke:{session}:{sha256(text)}" so that
// arbitrary long texts stay addressable; the value keeps the text itself.
func (j JokeRepository) Add(joke string) error {
	bytes, err := proto.Marshal(wrapperspb.String(joke))
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(j.key(joke), bytes)
	})
}

// List returns every joke told in the session, in key order.
func (j JokeRepository) List() ([]string, error) {
	var jokes []string
	err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := j.prefix()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var text wrapperspb.StringValue
				if err := proto.Unmarshal(value, &text); err != nil {
					return fmt.Errorf("failed to unmarshal joke: %w", err)
				}
				jokes = append(jokes, text.GetValue())
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	j.log.Debug("Told jokes listed", "session", j.session, "count", len(jokes))
	return jokes, nil
}

func (j JokeRepository) prefix() []byte {
	return []byte(fmt.Sprintf("joke:%s:", j.session))
}

func (j JokeRepository) key(joke string) []byte {
	sum := sha256.Sum256([]byte(joke))
	return append(j.prefix(), hex.EncodeToString(sum[:])...)
}
