package engine

import (
	"fmt"
	"os"

	"github.com/celerix-dev/clientes/pkg/schema"
	"gopkg.in/yaml.v3"
)

// Migrate copies every record from a source store into a destination store.
// This works for:
// - Embedded -> Remote (seeding a running service)
// - Remote -> Embedded (taking an offline copy)
// The destination assigns new ids and timestamps; list order is preserved.
func Migrate(src Store, dst Store) (int, error) {
	list, err := src.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list source records: %w", err)
	}

	for i, c := range list {
		if _, err := dst.Create(c.FirstName, c.LastName); err != nil {
			return i, fmt.Errorf("failed to copy record %s: %w", c.ID, err)
		}
	}
	return len(list), nil
}

// Seed loads a YAML (or JSON) list of records from path and creates them in dst.
func Seed(dst Store, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var entries []schema.ClienteInput
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i, in := range entries {
		if in.FirstName == nil || in.LastName == nil {
			return i, fmt.Errorf("seed entry %d: first_name and last_name are required", i)
		}
		first, last := in.Names()
		if _, err := dst.Create(first, last); err != nil {
			return i, fmt.Errorf("seed entry %d: %w", i, err)
		}
	}
	return len(entries), nil
}
