package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogSpy is a slog.Handler that records every log record for assertions.
type LogSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

func NewLogSpy() *LogSpy {
	return &LogSpy{}
}

// Logger returns a logger writing into the spy.
func (s *LogSpy) Logger() *slog.Logger {
	return slog.New(s)
}

func (s *LogSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record.Clone())
	return nil
}

func (s *LogSpy) Enabled(context.Context, slog.Level) bool {
	return true
}

func (s *LogSpy) WithAttrs([]slog.Attr) slog.Handler {
	return s
}

func (s *LogSpy) WithGroup(string) slog.Handler {
	return s
}

func (s *LogSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *LogSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

// Has reports whether a record with the given level and message was logged.
func (s *LogSpy) Has(level slog.Level, message string) bool {
	_, ok := s.find(level, message)
	return ok
}

// Attr returns the string form of attribute key on the first record matching
// level and message.
func (s *LogSpy) Attr(level slog.Level, message, key string) (string, bool) {
	record, ok := s.find(level, message)
	if !ok {
		return "", false
	}

	var value string
	var found bool
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			found = true
			return false
		}
		return true
	})
	return value, found
}

// Levels returns the number of records logged at each level.
func (s *LogSpy) Levels() map[slog.Level]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[slog.Level]int)
	for _, r := range s.records {
		counts[r.Level]++
	}
	return counts
}

func (s *LogSpy) find(level slog.Level, message string) (slog.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.Level == level && r.Message == message {
			return r, true
		}
	}
	return slog.Record{}, false
}
