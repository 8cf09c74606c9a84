package notification

import (
	"context"
	"log/slog"
)

const (
	// KindTransfer indicates a wallet-to-wallet transfer event.
	KindTransfer = "transfer"
	// KindSettlement indicates a prediction settlement report.
	KindSettlement = "settlement"
)

// Message is the plain structured payload handed to the presentation
// collaborator. Rendering (embeds, mentions, emoji) happens downstream.
type Message struct {
	Kind        string
	Destination string
	Title       string
	Body        string
	Fields      map[string]string
}

// Notifier delivers messages to downstream systems.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is a stub implementation that writes messages to the logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier stub.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	attrs := []any{
		slog.String("kind", message.Kind),
		slog.String("destination", message.Destination),
		slog.String("title", message.Title),
		slog.String("body", message.Body),
	}
	for name, value := range message.Fields {
		attrs = append(attrs, slog.String("field."+name, value))
	}
	n.logger.Info("notification", attrs...)
	return nil
}
