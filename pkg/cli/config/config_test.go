package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sprintrisk/pkg/cli/config"
	"github.com/secmon-lab/sprintrisk/pkg/utils/logging"
)

func TestLogger_Configure(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"console info", "info", "console", false},
		{"json debug", "debug", "json", false},
		{"upper case level", "WARN", "json", false},
		{"invalid level", "verbose", "console", true},
		{"invalid format", "info", "xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewLoggerForTest(tt.level, tt.format, "stderr")
			closer, err := cfg.Configure()
			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}
			gt.NoError(t, err).Required()
			closer()
		})
	}
}

func TestLogger_ConfigureFileOutput(t *testing.T) {
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	path := filepath.Join(t.TempDir(), "sprintrisk.log")
	cfg := config.NewLoggerForTest("info", "json", path)

	closer, err := cfg.Configure()
	gt.NoError(t, err).Required()
	logging.Default().Info("written to file", "sprints", 2)
	closer()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.String(t, string(data)).Contains("written to file")
}

func TestLogger_ConfigureBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "log.txt")
	_, err := config.NewLoggerForTest("info", "json", path).Configure()
	gt.Value(t, err).NotNil()
}

func TestRandom_Configure(t *testing.T) {
	gt.Value(t, config.NewRandomForTest(0).Configure()).Nil()

	a := config.NewRandomForTest(7).Configure()
	b := config.NewRandomForTest(7).Configure()
	gt.Value(t, a).NotNil().Required()

	for range 20 {
		gt.Value(t, a.IntN(1000)).Equal(b.IntN(1000))
	}
}
