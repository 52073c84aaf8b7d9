package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
)

type MigrateStatus string

const (
	MigrateUnchanged MigrateStatus = "unchanged"
	MigrateRewritten MigrateStatus = "rewritten"
	MigrateFailed    MigrateStatus = "failed"
)

// MigrateResult reports the outcome for one day file.
type MigrateResult struct {
	File   string
	Status MigrateStatus
	Err    error
}

// MigrateDir rewrites every legacy-layout day file under dir to the
// canonical layout. Files already canonical are left untouched. A file that
// cannot be normalized is reported as failed and skipped; the walk continues.
func MigrateDir(dir string) ([]MigrateResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	results := make([]MigrateResult, 0, len(names))
	for _, name := range names {
		results = append(results, migrateFile(dir, name))
	}
	return results, nil
}

func migrateFile(dir, name string) MigrateResult {
	path := filepath.Join(dir, name)
	res := MigrateResult{File: name}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = MigrateFailed
		res.Err = fmt.Errorf("reading %s: %w", path, err)
		return res
	}

	date := strings.TrimSuffix(name, ".json")
	day, changed, err := Normalize(data, date)
	if err != nil {
		res.Status = MigrateFailed
		res.Err = err
		return res
	}
	if !changed {
		res.Status = MigrateUnchanged
		return res
	}

	out, err := sonic.MarshalIndent(day, "", "  ")
	if err != nil {
		res.Status = MigrateFailed
		res.Err = fmt.Errorf("encoding %s: %w", path, err)
		return res
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		res.Status = MigrateFailed
		res.Err = fmt.Errorf("rewriting %s: %w", path, err)
		return res
	}
	res.Status = MigrateRewritten
	return res
}
