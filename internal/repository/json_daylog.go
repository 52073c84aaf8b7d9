package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"github.com/alexanderramin/pomo/internal/domain"
)

// JSONDayLogRepo implements DayLogRepo with one JSON document per calendar
// date, stored as <dir>/<YYYY-MM-DD>.json.
type JSONDayLogRepo struct {
	dir string
}

// NewJSONDayLogRepo creates a repo rooted at dir. The directory is created
// lazily on first save.
func NewJSONDayLogRepo(dir string) *JSONDayLogRepo {
	return &JSONDayLogRepo{dir: dir}
}

// Path returns the storage location for a date's log.
func (r *JSONDayLogRepo) Path(date time.Time) string {
	return filepath.Join(r.dir, date.Format(domain.DateLayout)+".json")
}

func (r *JSONDayLogRepo) Load(ctx context.Context, date time.Time) (*domain.DayLog, error) {
	path := r.Path(date)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDayLog(date), nil
		}
		return nil, fmt.Errorf("reading day log %s: %w", path, err)
	}

	var day domain.DayLog
	if err := sonic.Unmarshal(data, &day); err != nil {
		return nil, fmt.Errorf("parsing day log %s: %w", path, err)
	}
	if day.Date == "" {
		// Legacy layouts lack the top-level date field; they are
		// rewritten by "pomo migrate", never normalized here.
		return nil, fmt.Errorf("day log %s uses an unrecognized layout; run \"pomo migrate\"", path)
	}
	if day.Activities == nil {
		day.Activities = map[string]domain.ActivityLog{}
	}
	return &day, nil
}

func (r *JSONDayLogRepo) Save(ctx context.Context, day *domain.DayLog) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", r.dir, err)
	}

	data, err := sonic.MarshalIndent(day, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding day log for %s: %w", day.Date, err)
	}

	path := filepath.Join(r.dir, day.Date+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing day log %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing day log %s: %w", path, err)
	}
	return nil
}
