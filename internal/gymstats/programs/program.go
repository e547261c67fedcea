package programs

import (
	"fmt"
	"time"

	"github.com/2beens/gymload/internal/workload"
	"go.uber.org/multierr"
)

// Program is a named training routine: an ordered list of days.
type Program struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Days        []workload.Day `json:"days"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Validate checks the program shape and every planned entry in it.
func (p Program) Validate() error {
	var errs error
	if p.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("program name is empty"))
	}
	if len(p.Days) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("program has no days"))
	}
	for i, day := range p.Days {
		for j, entry := range day.Entries {
			if err := workload.ValidateEntry(entry); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("day %d entry %d: %w", i, j, err))
			}
		}
	}
	return errs
}

// ExerciseIDs returns the distinct exercise ids used across days, in order
// of first appearance.
func ExerciseIDs(days []workload.Day) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, day := range days {
		for _, entry := range day.Entries {
			if _, ok := seen[entry.ExerciseID]; ok {
				continue
			}
			seen[entry.ExerciseID] = struct{}{}
			ids = append(ids, entry.ExerciseID)
		}
	}
	return ids
}
