package workload_test

import "github.com/2beens/gymload/internal/workload"

var (
	chest   = workload.Muscle{ID: "chest", Name: "Chest", BodyPart: "upper"}
	back    = workload.Muscle{ID: "back", Name: "Back", BodyPart: "upper"}
	biceps  = workload.Muscle{ID: "biceps", Name: "Biceps", BodyPart: "arms"}
	triceps = workload.Muscle{ID: "triceps", Name: "Triceps", BodyPart: "arms"}
	quads   = workload.Muscle{ID: "quads", Name: "Quadriceps", BodyPart: "legs"}
)

func percent(p float64) *float64 {
	return &p
}

func isolation(id, name string, m workload.Muscle) workload.ExerciseDefinition {
	return workload.ExerciseDefinition{ID: id, Name: name, Target: m}
}

func benchPress() workload.ExerciseDefinition {
	return workload.ExerciseDefinition{
		ID:             "bench",
		Name:           "Bench Press",
		Target:         chest,
		PrimaryPercent: percent(70),
		Secondary: []workload.SecondaryMuscle{
			{Muscle: triceps, ContributionPercent: 30},
		},
	}
}

func entry(id string, sets, minReps, maxReps int) workload.PlannedEntry {
	return workload.PlannedEntry{ExerciseID: id, Sets: sets, MinReps: minReps, MaxReps: maxReps}
}

func findMuscle(muscles []workload.MuscleWorkload, id string) (workload.MuscleWorkload, bool) {
	for _, m := range muscles {
		if m.MuscleID == id {
			return m, true
		}
	}
	return workload.MuscleWorkload{}, false
}
