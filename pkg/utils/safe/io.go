package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
)

// Close closes closer and logs a failure instead of returning it. nil is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("failed to close", slog.Any("error", err))
	}
}

// Print writes text to w and logs a failure instead of returning it. A nil
// writer is ignored.
func Print(ctx context.Context, w io.Writer, text string) {
	if w == nil {
		return
	}
	if _, err := io.WriteString(w, text); err != nil {
		logging.From(ctx).Error("failed to write output", slog.Any("error", err), slog.Int("bytes", len(text)))
	}
}
