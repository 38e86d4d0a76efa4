package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCmd_Structure(t *testing.T) {
	if exportCmd.Flags().Lookup("format") == nil {
		t.Error("exportCmd should have --format flag")
	}
	if exportCmd.Flags().Lookup("out") == nil {
		t.Error("exportCmd should have --out flag")
	}
}

func TestExportCmd_CSV(t *testing.T) {
	setupTestServices(t)
	appStore.Start()
	appStore.Skip()

	exportFormat = "csv"
	exportOut = filepath.Join(t.TempDir(), "sessions.csv")
	if err := exportCmd.RunE(exportCmd, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(exportOut)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "Date,Type,Category,Duration (min),Task ID" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestExportCmd_UnknownFormat(t *testing.T) {
	setupTestServices(t)
	exportFormat = "xml"
	exportOut = ""
	if err := exportCmd.RunE(exportCmd, nil); err == nil {
		t.Error("export should reject unknown formats")
	}
}

func TestExportImportCmd_JSONRoundTrip(t *testing.T) {
	setupTestServices(t)
	if _, err := appStore.AddTask(addRequest("Survives backup")); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	appStore.Start()
	appStore.Skip()

	exportFormat = "json"
	exportOut = filepath.Join(t.TempDir(), "backup.json")
	if err := exportCmd.RunE(exportCmd, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	backupPath := exportOut

	// Import into a fresh store.
	setupTestServices(t)
	if err := importCmd.RunE(importCmd, []string{backupPath}); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(appStore.Tasks()) != 1 || appStore.Tasks()[0].Title != "Survives backup" {
		t.Error("tasks did not round-trip through the backup file")
	}
	if len(appStore.Sessions()) != 1 {
		t.Error("sessions did not round-trip through the backup file")
	}
	if appStore.Stats().XP != 10 {
		t.Errorf("XP = %d, want 10", appStore.Stats().XP)
	}
}

func TestImportCmd_BadFile(t *testing.T) {
	setupTestServices(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := importCmd.RunE(importCmd, []string{path}); err == nil {
		t.Error("import should fail on malformed JSON")
	}
}

func TestClearCmd_WithYes(t *testing.T) {
	setupTestServices(t)
	if _, err := appStore.AddTask(addRequest("Doomed")); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	appStore.Start()
	appStore.Skip()

	clearYes = true
	if err := clearCmd.RunE(clearCmd, nil); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	if len(appStore.Tasks()) != 0 || len(appStore.Sessions()) != 0 {
		t.Error("clear should wipe tasks and sessions")
	}
	if appStore.Stats().XP != 0 {
		t.Errorf("XP = %d, want 0", appStore.Stats().XP)
	}
}
