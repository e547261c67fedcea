package workload

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrInvalidDefinition = errors.New("invalid exercise definition")
	ErrInvalidEntry      = errors.New("invalid planned entry")
)

// ValidateDefinition checks the invariants the analysis itself does not
// enforce: every percent within [0, 100] and the shares of one exercise
// adding up to at most 100. All problems are reported together.
func ValidateDefinition(def ExerciseDefinition) error {
	var errs error
	if def.ID == "" {
		errs = multierr.Append(errs, errors.New("id is empty"))
	}
	if def.Name == "" {
		errs = multierr.Append(errs, errors.New("name is empty"))
	}
	if def.Target.ID == "" || def.Target.Name == "" {
		errs = multierr.Append(errs, errors.New("target muscle id and name are required"))
	}

	total := def.primaryPercent()
	if !validPercent(total) {
		errs = multierr.Append(errs, fmt.Errorf("primary percent %s out of range", formatNumber(total)))
	}
	for i, sec := range def.Secondary {
		if sec.ID == "" || sec.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("secondary muscle %d: id and name are required", i))
		}
		if !validPercent(sec.ContributionPercent) {
			errs = multierr.Append(errs, fmt.Errorf("secondary muscle %q: percent %s out of range", sec.Name, formatNumber(sec.ContributionPercent)))
		}
		total += sec.ContributionPercent
	}
	if total > 100+percentTolerance {
		errs = multierr.Append(errs, fmt.Errorf("contribution percents add up to %s, more than 100", formatNumber(total)))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, errs)
	}
	return nil
}

const percentTolerance = 1e-9

func validPercent(p float64) bool {
	return p >= 0 && p <= 100
}

// ValidateEntry checks that sets and reps are positive and the rep range is ordered.
func ValidateEntry(entry PlannedEntry) error {
	switch {
	case entry.ExerciseID == "":
		return fmt.Errorf("%w: exercise id is empty", ErrInvalidEntry)
	case entry.Sets <= 0:
		return fmt.Errorf("%w: sets must be positive, got %d", ErrInvalidEntry, entry.Sets)
	case entry.MinReps <= 0 || entry.MaxReps <= 0:
		return fmt.Errorf("%w: reps must be positive, got %d-%d", ErrInvalidEntry, entry.MinReps, entry.MaxReps)
	case entry.MinReps > entry.MaxReps:
		return fmt.Errorf("%w: min reps %d above max reps %d", ErrInvalidEntry, entry.MinReps, entry.MaxReps)
	}
	return nil
}
