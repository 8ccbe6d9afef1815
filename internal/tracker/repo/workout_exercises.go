package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	workoutExerciseColumns = `we.log_id, we.workout_id, we.exercise_id, e.name, e.category,
		we.sets, we.reps, we.weight_lbs, we.distance_miles, we.duration_seconds`
	workoutExerciseFrom = `
		FROM workout_exercises we
		JOIN exercises e ON e.exercise_id = we.exercise_id`
)

type WorkoutExercisesRepo struct {
	db db.DB
}

func NewWorkoutExercisesRepo(db db.DB) *WorkoutExercisesRepo {
	return &WorkoutExercisesRepo{
		db: db,
	}
}

// Add logs an exercise within a workout. Both referenced rows must exist.
func (r *WorkoutExercisesRepo) Add(ctx context.Context, entry WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutexercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", entry.WorkoutID),
		attribute.Int("exercise.id", entry.ExerciseID),
	)

	var added *WorkoutExercise
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_exercises
				(workout_id, exercise_id, sets, reps, weight_lbs, distance_miles, duration_seconds)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING log_id;`,
			entry.WorkoutID, entry.ExerciseID,
			entry.Sets, entry.Reps, entry.WeightLbs, entry.DistanceMiles, entry.DurationSeconds,
		).Scan(&id); err != nil {
			return err
		}

		added, err = getWorkoutExercise(ctx, tx, id, false)
		return err
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, r.missingReference(err, entry.WorkoutID, entry.ExerciseID)
		}
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("log.id", added.ID))
	return added, nil
}

func (r *WorkoutExercisesRepo) Get(ctx context.Context, id int) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutexercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return getWorkoutExercise(ctx, r.db, id, false)
}

func (r *WorkoutExercisesRepo) Update(ctx context.Context, id int, patch WorkoutExercisePatch) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutexercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var updated *WorkoutExercise
	var exerciseID int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		entry, err := getWorkoutExercise(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if err := patch.Apply(entry); err != nil {
			return err
		}
		exerciseID = entry.ExerciseID

		if _, err := tx.Exec(
			ctx,
			`UPDATE workout_exercises
			SET exercise_id = $1, sets = $2, reps = $3, weight_lbs = $4, distance_miles = $5, duration_seconds = $6
			WHERE log_id = $7;`,
			entry.ExerciseID, entry.Sets, entry.Reps, entry.WeightLbs, entry.DistanceMiles, entry.DurationSeconds, id,
		); err != nil {
			return err
		}

		// re-read, the exercise may have changed
		updated, err = getWorkoutExercise(ctx, tx, id, false)
		return err
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, Validationf("exercise %d not found", exerciseID)
		}
		return nil, err
	}

	return updated, nil
}

func (r *WorkoutExercisesRepo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutexercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM workout_exercises WHERE log_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return NotFoundf("workout exercise %d not found", id)
		}
		return nil
	})
}

func (r *WorkoutExercisesRepo) missingReference(err error, workoutID, exerciseID int) error {
	if pkg.ViolatedConstraint(err) == "workout_exercises_exercise_id_fkey" {
		return Validationf("exercise %d not found", exerciseID)
	}
	return Validationf("workout %d not found", workoutID)
}

func getWorkoutExercise(ctx context.Context, q db.DB, id int, forUpdate bool) (*WorkoutExercise, error) {
	query := `SELECT ` + workoutExerciseColumns + workoutExerciseFrom + ` WHERE we.log_id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF we`
	}

	entry, err := scanWorkoutExercise(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFoundf("workout exercise %d not found", id)
		}
		return nil, fmt.Errorf("get workout exercise: %w", err)
	}
	return &entry, nil
}

func scanWorkoutExercise(row scanner) (WorkoutExercise, error) {
	var we WorkoutExercise
	err := row.Scan(
		&we.ID, &we.WorkoutID, &we.ExerciseID, &we.ExerciseName, &we.ExerciseCategory,
		&we.Sets, &we.Reps, &we.WeightLbs, &we.DistanceMiles, &we.DurationSeconds,
	)
	return we, err
}
