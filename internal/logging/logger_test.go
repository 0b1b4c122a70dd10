package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeDisabled(t *testing.T) {
	ws := t.TempDir()
	if err := Initialize(ws, Options{DebugMode: false}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if IsDebugMode() {
		t.Error("Debug mode should be off")
	}
	if IsCategoryEnabled(CategoryClassify) {
		t.Error("Categories should be disabled without debug mode")
	}

	// Writing through a disabled logger must not panic or create files.
	Get(CategoryClassify).Info("ignored")
	if _, err := os.Stat(filepath.Join(ws, ".soilworks", "logs")); !os.IsNotExist(err) {
		t.Error("Logs directory should not exist in production mode")
	}
}

func TestInitializeDebug(t *testing.T) {
	ws := t.TempDir()
	if err := Initialize(ws, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	Get(CategorySPT).Info("corrected N60 computed")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(ws, ".soilworks", "logs"))
	if err != nil {
		t.Fatalf("Logs directory missing: %v", err)
	}
	var found bool
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_spt.log") {
			found = true
			data, err := os.ReadFile(filepath.Join(ws, ".soilworks", "logs", e.Name()))
			if err != nil {
				t.Fatalf("Failed to read log: %v", err)
			}
			if !strings.Contains(string(data), "corrected N60 computed") {
				t.Error("Log entry missing from file")
			}
		}
	}
	if !found {
		t.Error("Expected an spt log file")
	}
}

func TestCategoryFilter(t *testing.T) {
	ws := t.TempDir()
	err := Initialize(ws, Options{
		DebugMode:  true,
		Level:      "info",
		Categories: []string{"bearing"},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer CloseAll()

	if !IsCategoryEnabled(CategoryBearing) {
		t.Error("bearing category should be enabled")
	}
	if IsCategoryEnabled(CategoryStore) {
		t.Error("store category should be filtered out")
	}
}
