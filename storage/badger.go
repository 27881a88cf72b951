// Package storage opens the key-value store backing session state.
package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// OpenInMemory opens a Badger database that lives only as long as the process.
func OpenInMemory(log *slog.Logger) (*badger.DB, error) {
	options := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(badgerLogger{log: log})
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("in-memory database opening failed: %w", err)
	}
	return db, nil
}

// badgerLogger routes Badger messages to slog. Badger is chatty at info level,
// so info is demoted to debug.
type badgerLogger struct {
	log *slog.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.log.Error(line(format, args...), "component", "badger")
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.log.Warn(line(format, args...), "component", "badger")
}

func (b badgerLogger) Infof(format string, args ...interface{}) {
	b.log.Debug(line(format, args...), "component", "badger")
}

func (b badgerLogger) Debugf(format string, args ...interface{}) {
	b.log.Debug(line(format, args...), "component", "badger")
}

func line(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
