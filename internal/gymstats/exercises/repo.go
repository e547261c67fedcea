package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymload/internal/telemetry/tracing"
	"github.com/2beens/gymload/internal/workload"
	"github.com/2beens/gymload/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDefinitionNotFound = errors.New("exercise definition not found")
	ErrDefinitionExists   = errors.New("exercise definition already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const selectDefinition = `
	SELECT
	    id, name, target_muscle_id, target_muscle, target_body_part,
	    primary_percent, secondary_muscles, created_at, updated_at
	FROM exercise_definition
`

func (r *Repo) Add(ctx context.Context, def Definition) (_ Definition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	secondaryJson, err := marshalSecondary(def.Secondary)
	if err != nil {
		return Definition{}, err
	}

	now := time.Now()
	if def.CreatedAt.IsZero() {
		def.CreatedAt = now
	}
	def.UpdatedAt = now

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_definition
			    (id, name, target_muscle_id, target_muscle, target_body_part,
			     primary_percent, secondary_muscles, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		def.ID,
		def.Name,
		def.Target.ID,
		def.Target.Name,
		def.Target.BodyPart,
		def.PrimaryPercent,
		secondaryJson,
		def.CreatedAt,
		def.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return Definition{}, ErrDefinitionExists
		}
		return Definition{}, fmt.Errorf("exercise definition [exec]: %w", err)
	}

	return def, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ Definition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	def, err := scanDefinition(r.db.QueryRow(ctx, selectDefinition+` WHERE id = $1`, id))
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return Definition{}, ErrDefinitionNotFound
		}
		return Definition{}, fmt.Errorf("exercise definition [query row]: %w", err)
	}

	return def, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Definition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.BodyPart != "" {
		span.SetAttributes(attribute.String("params.bodyPart", params.BodyPart))
	}

	rows, err := r.db.Query(
		ctx,
		selectDefinition+`
			WHERE ($1::text = '' OR target_body_part = $1)
			ORDER BY name, id
		`,
		params.BodyPart,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise definitions [query]: %w", err)
	}

	return collectDefinitions(rows)
}

// GetByIDs returns the definitions found for ids. Unknown ids are not an error,
// they are simply missing from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []string) (_ []workload.ExerciseDefinition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.get_by_ids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("params.ids", len(ids)))

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, selectDefinition+` WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("exercise definitions by ids [query]: %w", err)
	}

	defs, err := collectDefinitions(rows)
	if err != nil {
		return nil, err
	}

	out := make([]workload.ExerciseDefinition, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.ExerciseDefinition)
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, def Definition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	secondaryJson, err := marshalSecondary(def.Secondary)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercise_definition
			SET name = $2, target_muscle_id = $3, target_muscle = $4, target_body_part = $5,
			    primary_percent = $6, secondary_muscles = $7, updated_at = now()
			WHERE id = $1
		`,
		def.ID,
		def.Name,
		def.Target.ID,
		def.Target.Name,
		def.Target.BodyPart,
		def.PrimaryPercent,
		secondaryJson,
	)
	if err != nil {
		return fmt.Errorf("exercise definition update [exec]: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDefinitionNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM exercise_definition
			WHERE id = $1
		`,
		id,
	)
	if err != nil {
		return fmt.Errorf("exercise definition delete [exec]: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDefinitionNotFound
	}

	return nil
}

func marshalSecondary(secondary []workload.SecondaryMuscle) ([]byte, error) {
	if secondary == nil {
		secondary = []workload.SecondaryMuscle{}
	}
	secondaryJson, err := json.Marshal(secondary)
	if err != nil {
		return nil, fmt.Errorf("marshal secondary muscles: %w", err)
	}
	return secondaryJson, nil
}

func scanDefinition(row pgx.Row) (Definition, error) {
	var (
		def           Definition
		secondaryJson []byte
	)
	err := row.Scan(
		&def.ID,
		&def.Name,
		&def.Target.ID,
		&def.Target.Name,
		&def.Target.BodyPart,
		&def.PrimaryPercent,
		&secondaryJson,
		&def.CreatedAt,
		&def.UpdatedAt,
	)
	if err != nil {
		return Definition{}, err
	}

	if err := json.Unmarshal(secondaryJson, &def.Secondary); err != nil {
		return Definition{}, fmt.Errorf("unmarshal secondary muscles of [%s]: %w", def.ID, err)
	}

	return def, nil
}

func collectDefinitions(rows pgx.Rows) ([]Definition, error) {
	defer rows.Close()

	defs := []Definition{}
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("exercise definitions [rows scan]: %w", err)
		}
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise definitions [rows error]: %w", err)
	}

	return defs, nil
}
