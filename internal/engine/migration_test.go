package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrate(t *testing.T) {
	src := NewMemStore()
	src.Create("Ann", "Lee")
	src.Create("Bob", "Ann")

	dst := NewMemStore()
	n, err := Migrate(src, dst)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 records copied, got %d", n)
	}

	list, _ := dst.List()
	if len(list) != 2 || list[0].FirstName != "Ann" || list[1].FirstName != "Bob" {
		t.Errorf("Unexpected destination contents: %+v", list)
	}
}

func TestSeed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "seed.yaml")
	content := "- first_name: Ann\n  last_name: Lee\n- first_name: Bob\n  last_name: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	ms := NewMemStore()
	n, err := Seed(ms, path)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if n != 2 || ms.Len() != 2 {
		t.Errorf("Expected 2 seeded records, got n=%d len=%d", n, ms.Len())
	}

	list, _ := ms.List()
	if list[1].FirstName != "Bob" || list[1].LastName != "" {
		t.Errorf("Unexpected second record: %+v", list[1])
	}
}

func TestSeed_JSONAndMissingField(t *testing.T) {
	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "seed.json")
	os.WriteFile(jsonPath, []byte(`[{"first_name":"Ann","last_name":"Lee"}]`), 0644)
	ms := NewMemStore()
	if n, err := Seed(ms, jsonPath); err != nil || n != 1 {
		t.Errorf("Expected 1 record from JSON seed, got n=%d err=%v", n, err)
	}

	badPath := filepath.Join(tmpDir, "bad.yaml")
	os.WriteFile(badPath, []byte("- first_name: Ann\n"), 0644)
	if _, err := Seed(NewMemStore(), badPath); err == nil {
		t.Error("Expected an error for a missing last_name")
	}

	if _, err := Seed(NewMemStore(), filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
