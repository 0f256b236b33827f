package audit

import (
	"log/slog"
	"os"
)

// Logger writes audit events to the console. Persisting them anywhere
// else is out of scope for a one-chair shop.
type Logger struct {
	log *slog.Logger
}

func New() *Logger {
	return &Logger{
		log: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (l *Logger) Log(action string, entity string, entityID *uint, metadata map[string]any) error {
	attrs := []any{
		slog.String("entity", entity),
	}
	if entityID != nil {
		attrs = append(attrs, slog.Uint64("entity_id", uint64(*entityID)))
	}
	for k, v := range metadata {
		attrs = append(attrs, slog.Any(k, v))
	}

	l.log.Info(action, attrs...)
	return nil
}
