package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const workoutColumns = `workout_id, user_id, workout_date, duration_minutes, notes`

type WorkoutsRepo struct {
	db db.DB
}

func NewWorkoutsRepo(db db.DB) *WorkoutsRepo {
	return &WorkoutsRepo{
		db: db,
	}
}

func (r *WorkoutsRepo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", workout.UserID))

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`INSERT INTO workouts (user_id, workout_date, duration_minutes, notes)
				VALUES ($1, $2, $3, $4)
			RETURNING workout_id;`,
			workout.UserID, workout.WorkoutDate.Time, workout.DurationMinutes, workout.Notes,
		).Scan(&workout.ID)
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, Validationf("user %d not found", workout.UserID)
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

// Get returns the workout together with all of its log entries, read in one snapshot.
func (r *WorkoutsRepo) Get(ctx context.Context, id int) (_ *WorkoutWithExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var result *WorkoutWithExercises
	err = db.WithTxOptions(ctx, r.db, db.ReadOnly, func(tx pgx.Tx) error {
		workout, err := getWorkout(ctx, tx, id, false)
		if err != nil {
			return err
		}

		rows, err := tx.Query(
			ctx,
			`SELECT `+workoutExerciseColumns+workoutExerciseFrom+`
			WHERE we.workout_id = $1
			ORDER BY we.log_id;`,
			id,
		)
		if err != nil {
			return fmt.Errorf("query workout exercises: %w", err)
		}
		entries, err := collect(rows, scanWorkoutExercise)
		if err != nil {
			return err
		}

		result = &WorkoutWithExercises{
			Workout:   *workout,
			Exercises: entries,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(result.Exercises)))
	return result, nil
}

// List returns all workouts, most recent first.
func (r *WorkoutsRepo) List(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts ORDER BY workout_date DESC, workout_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	workouts, err := collect(rows, scanWorkout)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(workouts)))

	return workouts, nil
}

func (r *WorkoutsRepo) Update(ctx context.Context, id int, patch WorkoutPatch) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var updated *Workout
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		workout, err := getWorkout(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if err := patch.Apply(workout); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE workouts SET workout_date = $1, duration_minutes = $2, notes = $3 WHERE workout_id = $4;`,
			workout.WorkoutDate.Time, workout.DurationMinutes, workout.Notes, id,
		); err != nil {
			return err
		}

		updated = workout
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the workout; its log entries are removed by the cascading foreign key.
func (r *WorkoutsRepo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE workout_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return NotFoundf("workout %d not found", id)
		}
		return nil
	})
}

// ListInRange returns workouts with a date within [from, to] in id order, and all of their log entries.
// A nil bound leaves that side of the range open.
func (r *WorkoutsRepo) ListInRange(ctx context.Context, from, to *time.Time) (workouts []Workout, entries []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listinrange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if from != nil {
		span.SetAttributes(attribute.String("from", from.Format(DateLayout)))
	}
	if to != nil {
		span.SetAttributes(attribute.String("to", to.Format(DateLayout)))
	}

	err = db.WithTxOptions(ctx, r.db, db.ReadOnly, func(tx pgx.Tx) error {
		rows, err := tx.Query(
			ctx,
			`SELECT `+workoutColumns+` FROM workouts
			WHERE ($1::date IS NULL OR workout_date >= $1)
				AND ($2::date IS NULL OR workout_date <= $2)
			ORDER BY workout_id;`,
			from, to,
		)
		if err != nil {
			return fmt.Errorf("query workouts: %w", err)
		}
		if workouts, err = collect(rows, scanWorkout); err != nil {
			return err
		}

		rows, err = tx.Query(
			ctx,
			`SELECT `+workoutExerciseColumns+workoutExerciseFrom+`
			JOIN workouts w ON w.workout_id = we.workout_id
			WHERE ($1::date IS NULL OR w.workout_date >= $1)
				AND ($2::date IS NULL OR w.workout_date <= $2)
			ORDER BY we.workout_id, we.log_id;`,
			from, to,
		)
		if err != nil {
			return fmt.Errorf("query workout exercises: %w", err)
		}
		entries, err = collect(rows, scanWorkoutExercise)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	span.SetAttributes(
		attribute.Int("workouts.count", len(workouts)),
		attribute.Int("entries.count", len(entries)),
	)
	return workouts, entries, nil
}

func getWorkout(ctx context.Context, q db.DB, id int, forUpdate bool) (*Workout, error) {
	query := `SELECT ` + workoutColumns + ` FROM workouts WHERE workout_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	workout, err := scanWorkout(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFoundf("workout %d not found", id)
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return &workout, nil
}

func scanWorkout(row scanner) (Workout, error) {
	var w Workout
	err := row.Scan(&w.ID, &w.UserID, &w.WorkoutDate.Time, &w.DurationMinutes, &w.Notes)
	return w, err
}
