package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_LevelAndFormat(t *testing.T) {
	tests := []struct {
		level, format string
		wantLevel     logrus.Level
		wantJSON      bool
	}{
		{"debug", "json", logrus.DebugLevel, true},
		{"warn", "text", logrus.WarnLevel, false},
		{"nonsense", "", logrus.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")
		Init(tt.level, tt.format)
		if Log.GetLevel() != tt.wantLevel {
			t.Errorf("Init(%q, %q) level = %v, want %v", tt.level, tt.format, Log.GetLevel(), tt.wantLevel)
		}
		_, isJSON := Log.Formatter.(*logrus.JSONFormatter)
		if isJSON != tt.wantJSON {
			t.Errorf("Init(%q, %q) json = %v, want %v", tt.level, tt.format, isJSON, tt.wantJSON)
		}
	}
}

func TestInit_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "JSON")
	Init("", "")

	var buf bytes.Buffer
	SetOutput(&buf)
	Log.WithField("room", 3).Error("left the map")
	Log.Info("hidden")

	out := buf.String()
	if !strings.Contains(out, `"room":3`) {
		t.Errorf("output %q lacks the room field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at error level: %q", out)
	}
}
