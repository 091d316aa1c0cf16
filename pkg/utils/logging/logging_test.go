package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)

	logger.Debug("hidden")
	logger.Info("sprint simulated", "sprints", 3)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Value(t, entry["msg"]).Equal("sprint simulated")
	gt.Value(t, entry["sprints"]).Equal(float64(3))
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelDebug, logging.FormatConsole, false)

	logger.Info("risk drawn", "risk", "Accumulated technical debt")
	gt.String(t, buf.String()).Contains("risk drawn")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON, false)

	ctx := logging.With(context.Background(), logger)
	gt.Value(t, logging.From(ctx)).Equal(logger)

	// Falls back to default when no logger is attached
	gt.Value(t, logging.From(context.Background())).Equal(logging.Default())
}
