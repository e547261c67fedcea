package workload

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const indirectSetsThreshold = 6

type Options struct {
	// ReportMissingMuscles adds a low severity warning for every reference
	// muscle group that gets no work at all in a non-empty program.
	ReportMissingMuscles bool
}

// Analyzer classifies whole programs. The zero value is ready to use.
type Analyzer struct {
	opts Options
}

func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// AnalyzeProgram analyzes days with default options.
func AnalyzeProgram(days []Day, db Database) Analysis {
	return NewAnalyzer(Options{}).Analyze(days, db)
}

// Analyze aggregates every day on its own, merges the day results by muscle
// and classifies the merged workloads against the weekly reference ranges.
func (a *Analyzer) Analyze(days []Day, db Database) Analysis {
	t := newTally()
	skipped := 0
	for _, day := range days {
		dayWorkloads, daySkipped := dayDistribution(day.Entries, db)
		skipped += daySkipped
		for _, w := range dayWorkloads {
			t.addWorkload(w)
		}
	}

	muscles := withPercentages(t.workloads())
	for i := range muscles {
		muscles[i].Status = ClassifyStatus(muscles[i].MuscleName, muscles[i].TotalSets)
	}

	warnings := overtrainingWarnings(muscles)
	warnings = append(warnings, imbalanceWarnings(muscles)...)
	if a != nil && a.opts.ReportMissingMuscles {
		warnings = append(warnings, missingMuscleWarnings(muscles)...)
	}

	return Analysis{
		TotalVolume:     totalVolume(muscles),
		Muscles:         muscles,
		Warnings:        warnings,
		Recommendations: recommendations(muscles),
		SkippedEntries:  skipped,
	}
}

// ClassifyStatus compares weekly effective sets with the range of the muscle
// group the name resolves to. Names without a range are balanced.
func ClassifyStatus(muscleName string, weeklySets float64) Status {
	r, ok := ResolveGroup(muscleName).WeeklyRange()
	if !ok {
		return StatusBalanced
	}
	switch {
	case weeklySets < r.Min:
		return StatusUndertrained
	case weeklySets > r.Max:
		return StatusOvertrained
	default:
		return StatusOptimal
	}
}

func overtrainingWarnings(muscles []MuscleWorkload) []Warning {
	warnings := []Warning{}
	for _, m := range muscles {
		if m.Status != StatusOvertrained {
			continue
		}
		r, _ := ResolveGroup(m.MuscleName).WeeklyRange()
		warnings = append(warnings, Warning{
			Kind: WarningOvertraining,
			Message: fmt.Sprintf("%s is trained with %d weekly sets, above the recommended maximum of %s",
				m.MuscleName, roundSets(m.TotalSets), formatNumber(r.Max)),
			Muscle:   m.MuscleName,
			Severity: SeverityMedium,
		})
	}
	return warnings
}

// ratioRule fires when setsA / max(setsB, 1) crosses threshold.
type ratioRule struct {
	above     bool
	threshold float64
	severity  Severity
	// onA selects which side of the pair the warning refers to.
	onA     bool
	message func(a, b MuscleWorkload) string
}

type pairRule struct {
	a, b  MuscleGroup
	rules []ratioRule
}

var pairRules = []pairRule{
	{
		a: GroupChest,
		b: GroupBack,
		rules: []ratioRule{
			{
				above: true, threshold: 1.5, severity: SeverityMedium, onA: true,
				message: func(chest, back MuscleWorkload) string {
					return fmt.Sprintf("Chest dominant: %s gets %d weekly sets against %d for %s, add pulling work to balance the program",
						chest.MuscleName, roundSets(chest.TotalSets), roundSets(back.TotalSets), back.MuscleName)
				},
			},
			{
				above: false, threshold: 0.67, severity: SeverityLow, onA: false,
				message: func(chest, back MuscleWorkload) string {
					return fmt.Sprintf("Back dominant: %s gets %d weekly sets against %d for %s",
						back.MuscleName, roundSets(back.TotalSets), roundSets(chest.TotalSets), chest.MuscleName)
				},
			},
		},
	},
	{
		a: GroupTriceps,
		b: GroupBiceps,
		rules: []ratioRule{
			{
				above: true, threshold: 2, severity: SeverityLow, onA: true,
				message: func(triceps, biceps MuscleWorkload) string {
					return fmt.Sprintf("%s gets more than twice the weekly sets of %s (%d vs %d); triceps likely receives enough indirect work from pressing movements",
						triceps.MuscleName, biceps.MuscleName, roundSets(triceps.TotalSets), roundSets(biceps.TotalSets))
				},
			},
		},
	},
}

func imbalanceWarnings(muscles []MuscleWorkload) []Warning {
	warnings := []Warning{}
	for _, pair := range pairRules {
		a, okA := firstInGroup(muscles, pair.a)
		b, okB := firstInGroup(muscles, pair.b)
		if !okA || !okB {
			continue
		}
		ratio := a.TotalSets / math.Max(b.TotalSets, 1)
		for _, rule := range pair.rules {
			fired := ratio < rule.threshold
			if rule.above {
				fired = ratio > rule.threshold
			}
			if !fired {
				continue
			}
			subject := b.MuscleName
			if rule.onA {
				subject = a.MuscleName
			}
			warnings = append(warnings, Warning{
				Kind:     WarningImbalance,
				Message:  rule.message(a, b),
				Muscle:   subject,
				Severity: rule.severity,
			})
		}
	}
	return warnings
}

// firstInGroup returns the highest ranked muscle whose name matches the group.
func firstInGroup(muscles []MuscleWorkload, g MuscleGroup) (MuscleWorkload, bool) {
	for _, m := range muscles {
		if MatchesGroup(m.MuscleName, g) {
			return m, true
		}
	}
	return MuscleWorkload{}, false
}

func missingMuscleWarnings(muscles []MuscleWorkload) []Warning {
	warnings := []Warning{}
	if len(muscles) == 0 {
		return warnings
	}
	for _, g := range referenceGroups {
		if _, ok := firstInGroup(muscles, g); ok {
			continue
		}
		warnings = append(warnings, Warning{
			Kind:     WarningMissingMuscle,
			Message:  fmt.Sprintf("%s is not trained anywhere in this program", g),
			Muscle:   g.String(),
			Severity: SeverityLow,
		})
	}
	return warnings
}

func recommendations(muscles []MuscleWorkload) []string {
	var under, over []string
	smallMusclesOverworked := false
	for _, m := range muscles {
		switch m.Status {
		case StatusUndertrained:
			under = append(under, m.MuscleName)
		case StatusOvertrained:
			over = append(over, m.MuscleName)
		}
		isSmall := MatchesGroup(m.MuscleName, GroupBiceps) || MatchesGroup(m.MuscleName, GroupTriceps)
		if isSmall && m.IndirectSets() > indirectSetsThreshold {
			smallMusclesOverworked = true
		}
	}

	recs := []string{}
	if len(under) > 0 {
		recs = append(recs, fmt.Sprintf("Increase weekly volume for undertrained muscles: %s.", strings.Join(under, ", ")))
	}
	if len(over) > 0 {
		recs = append(recs, fmt.Sprintf("Reduce weekly volume for overtrained muscles: %s.", strings.Join(over, ", ")))
	}
	if smallMusclesOverworked {
		recs = append(recs, "Biceps and triceps already get a lot of indirect work from compound movements, isolation work for them can be reduced.")
	}
	return recs
}

func roundSets(sets float64) int {
	return int(math.Round(sets))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
