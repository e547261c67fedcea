package workload

import (
	"fmt"
	"strings"
)

// SummarizeExerciseMuscles renders the muscles of one exercise for display,
// target muscle first, e.g. "Chest (70%), Triceps (30%)".
func SummarizeExerciseMuscles(def ExerciseDefinition) string {
	parts := make([]string, 0, 1+len(def.Secondary))
	parts = append(parts, fmt.Sprintf("%s (%s%%)", def.Target.Name, formatNumber(def.primaryPercent())))
	for _, sec := range def.Secondary {
		parts = append(parts, fmt.Sprintf("%s (%s%%)", sec.Name, formatNumber(sec.ContributionPercent)))
	}
	return strings.Join(parts, ", ")
}
