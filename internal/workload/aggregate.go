package workload

import (
	"math"
	"sort"
)

// tally accumulates workloads keyed by muscle id and remembers the order in
// which muscles were first seen. Records stored in byID are never modified,
// each step stores a new one.
type tally struct {
	order []string
	byID  map[string]MuscleWorkload
}

func newTally() *tally {
	return &tally{byID: make(map[string]MuscleWorkload)}
}

func (t *tally) addContribution(c Contribution) {
	t.put(c.ID, withContribution(t.get(c.ID, c.Muscle), c))
}

func (t *tally) addWorkload(w MuscleWorkload) {
	current := t.get(w.MuscleID, Muscle{ID: w.MuscleID, Name: w.MuscleName, BodyPart: w.BodyPart})
	t.put(w.MuscleID, mergeWorkloads(current, w))
}

func (t *tally) get(id string, m Muscle) MuscleWorkload {
	if w, ok := t.byID[id]; ok {
		return w
	}
	t.order = append(t.order, id)
	return MuscleWorkload{
		MuscleID:   m.ID,
		MuscleName: m.Name,
		BodyPart:   m.BodyPart,
		Status:     StatusBalanced,
	}
}

func (t *tally) put(id string, w MuscleWorkload) {
	t.byID[id] = w
}

// workloads returns the accumulated records in first-seen order.
func (t *tally) workloads() []MuscleWorkload {
	out := make([]MuscleWorkload, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

func withContribution(w MuscleWorkload, c Contribution) MuscleWorkload {
	next := w
	next.TotalEffectiveVolume += c.EffectiveVolume
	next.TotalSets += c.EffectiveSets
	next.Exercises = appendExercises(w.Exercises, ExerciseContribution{
		ExerciseName:        c.ExerciseName,
		IsPrimary:           c.IsPrimary,
		ContributionPercent: c.ContributionPercent,
		EffectiveVolume:     c.EffectiveVolume,
		EffectiveSets:       c.EffectiveSets,
	})
	return next
}

func mergeWorkloads(a, b MuscleWorkload) MuscleWorkload {
	next := a
	next.TotalEffectiveVolume += b.TotalEffectiveVolume
	next.TotalSets += b.TotalSets
	next.Exercises = appendExercises(a.Exercises, b.Exercises...)
	return next
}

// appendExercises never writes into the backing array of existing.
func appendExercises(existing []ExerciseContribution, more ...ExerciseContribution) []ExerciseContribution {
	out := make([]ExerciseContribution, 0, len(existing)+len(more))
	out = append(out, existing...)
	return append(out, more...)
}

func totalVolume(workloads []MuscleWorkload) float64 {
	var total float64
	for _, w := range workloads {
		total += w.TotalEffectiveVolume
	}
	return total
}

// withPercentages returns a copy of workloads with PercentageOfTotal set,
// sorted by percentage descending. Equal percentages keep their input order.
func withPercentages(workloads []MuscleWorkload) []MuscleWorkload {
	total := totalVolume(workloads)
	out := make([]MuscleWorkload, len(workloads))
	for i, w := range workloads {
		w.PercentageOfTotal = 0
		if total != 0 {
			w.PercentageOfTotal = int(math.Round(100 * w.TotalEffectiveVolume / total))
		}
		out[i] = w
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentageOfTotal > out[j].PercentageOfTotal
	})
	return out
}

func dayDistribution(entries []PlannedEntry, db Database) ([]MuscleWorkload, int) {
	contributions, skipped := ExpandDay(entries, db)
	t := newTally()
	for _, c := range contributions {
		t.addContribution(c)
	}
	return withPercentages(t.workloads()), skipped
}

// DayResult is the distribution of one day with its totals.
type DayResult struct {
	Muscles        []MuscleWorkload
	TotalVolume    float64
	SkippedEntries int
}

// AnalyzeDay is CalculateDayDistribution plus the day's total effective
// volume and the number of entries skipped for unknown exercises.
func AnalyzeDay(entries []PlannedEntry, db Database) DayResult {
	muscles, skipped := dayDistribution(entries, db)
	return DayResult{
		Muscles:        muscles,
		TotalVolume:    totalVolume(muscles),
		SkippedEntries: skipped,
	}
}

// CalculateDayDistribution aggregates the entries of a single day into one
// workload per muscle, sorted by share of the day's volume. Status is left
// neutral; entries with unknown exercises are skipped.
func CalculateDayDistribution(entries []PlannedEntry, db Database) []MuscleWorkload {
	workloads, _ := dayDistribution(entries, db)
	return workloads
}
