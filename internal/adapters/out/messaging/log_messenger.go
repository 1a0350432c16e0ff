package messaging

import (
	"context"
	"log/slog"

	"paperwork/internal/pkg/errs"
)

// LogMessenger writes messages to the log instead of delivering them. It stands in
// for an SMS gateway, which is outside this service.
type LogMessenger struct {
	logger *slog.Logger
}

func NewLogMessenger(logger *slog.Logger) *LogMessenger {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMessenger{logger: logger.With("component", "LogMessenger")}
}

func (m *LogMessenger) Send(ctx context.Context, phone, text string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if err := ctx.Err(); err != nil {
		return errs.NewUpstreamUnavailableError("messenger", err)
	}

	m.logger.InfoContext(ctx, "customer message", "phone", phone, "text", text)
	return nil
}
