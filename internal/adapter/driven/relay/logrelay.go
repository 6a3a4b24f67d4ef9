package relay

import (
	"context"
	"log/slog"

	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactRelay = (*LogRelay)(nil)

// LogRelay accepts every submission and only writes it to the log. It is
// used when no EmailJS credentials are configured.
type LogRelay struct {
	logger *slog.Logger
}

// NewLogRelay creates a LogRelay writing to logger.
func NewLogRelay(logger *slog.Logger) *LogRelay {
	return &LogRelay{logger: logger}
}

// Send logs the submission and never fails unless ctx is already done.
func (l *LogRelay) Send(ctx context.Context, sub model.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "contact submission received (log relay)",
		"submission", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"message_length", len(sub.Message),
	)
	return nil
}
