// Package workload turns planned exercises into per-muscle training volume and
// classifies a whole program against weekly set ranges.
//
// Everything in this package is a pure function of its inputs: no I/O, no
// shared state. Callers own every returned value.
package workload

// Muscle identifies a muscle as it is stored on an exercise definition.
type Muscle struct {
	ID       string `json:"id" toml:"id" yaml:"id"`
	Name     string `json:"name" toml:"name" yaml:"name"`
	BodyPart string `json:"bodyPart" toml:"body_part" yaml:"body_part"`
}

type SecondaryMuscle struct {
	Muscle              `yaml:",inline"`
	ContributionPercent float64 `json:"contributionPercent" toml:"contribution_percent" yaml:"contribution_percent"`
}

// ExerciseDefinition describes how one exercise spreads its stimulus
// over the target (primary) muscle and any secondary muscles.
// A nil PrimaryPercent means the target muscle gets 100%.
type ExerciseDefinition struct {
	ID             string            `json:"id" toml:"id" yaml:"id"`
	Name           string            `json:"name" toml:"name" yaml:"name"`
	Target         Muscle            `json:"target" toml:"target" yaml:"target"`
	PrimaryPercent *float64          `json:"primaryPercent,omitempty" toml:"primary_percent" yaml:"primary_percent"`
	Secondary      []SecondaryMuscle `json:"secondary" toml:"secondary" yaml:"secondary"`
}

const defaultPrimaryPercent = 100

func (d ExerciseDefinition) primaryPercent() float64 {
	if d.PrimaryPercent == nil {
		return defaultPrimaryPercent
	}
	return *d.PrimaryPercent
}

// PlannedEntry is one occurrence of an exercise in a routine day.
type PlannedEntry struct {
	ExerciseID string `json:"exerciseId" toml:"exercise_id" yaml:"exercise_id"`
	Sets       int    `json:"sets" toml:"sets" yaml:"sets"`
	MinReps    int    `json:"minReps" toml:"min_reps" yaml:"min_reps"`
	MaxReps    int    `json:"maxReps" toml:"max_reps" yaml:"max_reps"`
}

func (e PlannedEntry) averageReps() float64 {
	return float64(e.MinReps+e.MaxReps) / 2
}

func (e PlannedEntry) baseVolume() float64 {
	return float64(e.Sets) * e.averageReps()
}

type Day struct {
	Name    string         `json:"name" toml:"name" yaml:"name"`
	Entries []PlannedEntry `json:"entries" toml:"entries" yaml:"entries"`
}

// Contribution is a single muscle's share of one planned entry.
type Contribution struct {
	Muscle
	ExerciseName        string
	ContributionPercent float64
	EffectiveVolume     float64
	EffectiveSets       float64
	IsPrimary           bool
}

type ExerciseContribution struct {
	ExerciseName        string  `json:"exerciseName"`
	IsPrimary           bool    `json:"isPrimary"`
	ContributionPercent float64 `json:"contributionPercent"`
	EffectiveVolume     float64 `json:"effectiveVolume"`
	EffectiveSets       float64 `json:"effectiveSets"`
}

type Status string

const (
	StatusBalanced     Status = "balanced"
	StatusUndertrained Status = "undertrained"
	StatusOptimal      Status = "optimal"
	StatusOvertrained  Status = "overtrained"
)

// MuscleWorkload is the aggregated volume of one muscle within one scope
// (a day or a whole program).
type MuscleWorkload struct {
	MuscleID             string                 `json:"muscleId"`
	MuscleName           string                 `json:"muscleName"`
	BodyPart             string                 `json:"bodyPart"`
	TotalEffectiveVolume float64                `json:"totalEffectiveVolume"`
	TotalSets            float64                `json:"totalSets"`
	PercentageOfTotal    int                    `json:"percentageOfTotal"`
	Status               Status                 `json:"status"`
	Exercises            []ExerciseContribution `json:"exercises"`
}

// IndirectSets returns the effective sets that came from exercises where
// this muscle was not the primary target.
func (w MuscleWorkload) IndirectSets() float64 {
	var sets float64
	for _, ex := range w.Exercises {
		if !ex.IsPrimary {
			sets += ex.EffectiveSets
		}
	}
	return sets
}

type WarningKind string

const (
	WarningOvertraining  WarningKind = "overtraining"
	WarningImbalance     WarningKind = "imbalance"
	WarningMissingMuscle WarningKind = "missing_muscle"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Warning struct {
	Kind     WarningKind `json:"kind"`
	Message  string      `json:"message"`
	Muscle   string      `json:"muscle,omitempty"`
	Severity Severity    `json:"severity"`
}

// Analysis is the program level result.
type Analysis struct {
	TotalVolume     float64          `json:"totalVolume"`
	Muscles         []MuscleWorkload `json:"muscles"`
	Warnings        []Warning        `json:"warnings"`
	Recommendations []string         `json:"recommendations"`
	// SkippedEntries counts planned entries whose exercise was not found.
	SkippedEntries int `json:"skippedEntries"`
}

// Database resolves exercise definitions by exact id.
type Database interface {
	Lookup(exerciseID string) (ExerciseDefinition, bool)
}

type mapDatabase map[string]ExerciseDefinition

func (m mapDatabase) Lookup(exerciseID string) (ExerciseDefinition, bool) {
	def, ok := m[exerciseID]
	return def, ok
}

// NewDatabase builds an in-memory Database. A later definition with the
// same id replaces an earlier one.
func NewDatabase(defs ...ExerciseDefinition) Database {
	db := make(mapDatabase, len(defs))
	for _, def := range defs {
		db[def.ID] = def
	}
	return db
}
