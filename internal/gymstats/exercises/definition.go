package exercises

import (
	"time"

	"github.com/2beens/gymload/internal/workload"
)

// Definition is an exercise definition as stored in the catalog.
type Definition struct {
	workload.ExerciseDefinition
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListParams struct {
	// BodyPart filters by the body part of the target muscle, e.g. "upper".
	BodyPart string
}

// SummaryResponse is returned by the summary route.
type SummaryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}
