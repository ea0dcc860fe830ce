package app

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGetLogger(t *testing.T) {
	modules["module1"] = "debug"
	modules["module2"] = "warn"
	defer delete(modules, "module1")
	defer delete(modules, "module2")

	logger1 := GetLogger("module1")
	if logger1.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level for module1, got %s", logger1.GetLevel().String())
	}

	logger2 := GetLogger("module2")
	if logger2.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level for module2, got %s", logger2.GetLevel().String())
	}

	// non-existent module falls back to the global logger level
	logger3 := GetLogger("nonexistent")
	if logger3.GetLevel() != Logger.GetLevel() {
		t.Errorf("Expected default logger level for nonexistent module, got %s", logger3.GetLevel().String())
	}
}
