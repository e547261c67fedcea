package workload

// Expand turns one planned entry into one contribution per muscle the
// exercise touches: the target muscle first, then each secondary muscle in
// definition order. A secondary that repeats the target is kept as is.
func Expand(entry PlannedEntry, def ExerciseDefinition) []Contribution {
	base := entry.baseVolume()
	sets := float64(entry.Sets)

	contribution := func(m Muscle, pct float64, primary bool) Contribution {
		return Contribution{
			Muscle:              m,
			ExerciseName:        def.Name,
			ContributionPercent: pct,
			EffectiveVolume:     base * pct / 100,
			EffectiveSets:       sets * pct / 100,
			IsPrimary:           primary,
		}
	}

	out := make([]Contribution, 0, 1+len(def.Secondary))
	out = append(out, contribution(def.Target, def.primaryPercent(), true))
	for _, sec := range def.Secondary {
		out = append(out, contribution(sec.Muscle, sec.ContributionPercent, false))
	}
	return out
}

// ExpandDay expands every entry that resolves against db. Entries whose
// exercise id is unknown are left out and counted in skipped.
func ExpandDay(entries []PlannedEntry, db Database) (contributions []Contribution, skipped int) {
	for _, entry := range entries {
		def, ok := lookup(db, entry.ExerciseID)
		if !ok {
			skipped++
			continue
		}
		contributions = append(contributions, Expand(entry, def)...)
	}
	return contributions, skipped
}

func lookup(db Database, exerciseID string) (ExerciseDefinition, bool) {
	if db == nil {
		return ExerciseDefinition{}, false
	}
	return db.Lookup(exerciseID)
}
