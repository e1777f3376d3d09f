package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// #region parse-level
func TestParseLevel(t *testing.T) {
	cases := []struct {
		name string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.name)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.name, got, c.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level name")
	}
}

// #endregion parse-level

// #region setup
func TestSetup_FileFanout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closeLog, err := Setup("info", path)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	logger.Info("probe trained", "probe_id", "is_deceptive_L8_0001", "auc", 0.91)
	logger.Debug("suppressed at info level")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("log file line is not JSON: %v", err)
		}
		lines = append(lines, rec)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 record (debug suppressed), got %d", len(lines))
	}
	if lines[0]["probe_id"] != "is_deceptive_L8_0001" {
		t.Errorf("expected structured attribute in file record, got %v", lines[0])
	}
}

func TestSetup_BadLevel(t *testing.T) {
	if _, _, err := Setup("loud", ""); err == nil {
		t.Fatal("expected error for bad level")
	}
}

// #endregion setup
