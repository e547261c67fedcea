package programs

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
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrProgramExists   = errors.New("program already exists")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the program and its days in one transaction.
func (r *Repo) Add(ctx context.Context, program Program) (_ Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.programs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("program.days", len(program.Days)))

	if program.CreatedAt.IsZero() {
		program.CreatedAt = time.Now()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Program{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			log.Errorf("add program, rollback: %s", rollbackErr)
		}
	}()

	_, err = tx.Exec(
		ctx,
		`
			INSERT INTO program
			    (id, name, description, created_at)
			VALUES ($1, $2, $3, $4)
		`,
		program.ID,
		program.Name,
		program.Description,
		program.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return Program{}, ErrProgramExists
		}
		return Program{}, fmt.Errorf("program [exec]: %w", err)
	}

	for i, day := range program.Days {
		entries := day.Entries
		if entries == nil {
			entries = []workload.PlannedEntry{}
		}
		entriesJson, err := json.Marshal(entries)
		if err != nil {
			return Program{}, fmt.Errorf("marshal entries of day %d: %w", i, err)
		}

		_, err = tx.Exec(
			ctx,
			`
				INSERT INTO program_day
				    (program_id, position, name, entries)
				VALUES ($1, $2, $3, $4)
			`,
			program.ID,
			i,
			day.Name,
			entriesJson,
		)
		if err != nil {
			return Program{}, fmt.Errorf("program day %d [exec]: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return Program{}, fmt.Errorf("commit tx: %w", err)
	}

	return program, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var program Program
	err = r.db.QueryRow(
		ctx,
		`
			SELECT id, name, description, created_at
			FROM program
			WHERE id = $1
		`,
		id,
	).Scan(
		&program.ID,
		&program.Name,
		&program.Description,
		&program.CreatedAt,
	)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return Program{}, ErrProgramNotFound
		}
		return Program{}, fmt.Errorf("program [query row]: %w", err)
	}

	program.Days, err = r.getDays(ctx, id)
	if err != nil {
		return Program{}, fmt.Errorf("program days: %w", err)
	}

	return program, nil
}

func (r *Repo) getDays(ctx context.Context, programID string) (_ []workload.Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.programs.get_days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT name, entries
			FROM program_day
			WHERE program_id = $1
			ORDER BY position
		`,
		programID,
	)
	if err != nil {
		return nil, fmt.Errorf("program days [query]: %w", err)
	}
	defer rows.Close()

	days := []workload.Day{}
	for rows.Next() {
		var (
			day         workload.Day
			entriesJson []byte
		)
		if err := rows.Scan(&day.Name, &entriesJson); err != nil {
			return nil, fmt.Errorf("program days [rows scan]: %w", err)
		}
		if err := json.Unmarshal(entriesJson, &day.Entries); err != nil {
			return nil, fmt.Errorf("unmarshal entries of day [%s]: %w", day.Name, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("program days [rows error]: %w", err)
	}

	return days, nil
}

// List returns programs without their days.
func (r *Repo) List(ctx context.Context) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, description, created_at
			FROM program
			ORDER BY created_at DESC, id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("programs [query]: %w", err)
	}
	defer rows.Close()

	programs := []Program{}
	for rows.Next() {
		var program Program
		if err := rows.Scan(&program.ID, &program.Name, &program.Description, &program.CreatedAt); err != nil {
			return nil, fmt.Errorf("programs [rows scan]: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("programs [rows error]: %w", err)
	}

	return programs, nil
}

// Delete removes the program, its days go with it (on delete cascade).
func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			DELETE FROM program
			WHERE id = $1
		`,
		id,
	)
	if err != nil {
		return fmt.Errorf("program delete [exec]: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
