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

const exerciseColumns = `exercise_id, name, category, muscle_group, description`

const duplicateExerciseMsg = "Exercise with this name already exists"

type ExercisesRepo struct {
	db db.DB
}

func NewExercisesRepo(db db.DB) *ExercisesRepo {
	return &ExercisesRepo{
		db: db,
	}
}

func (r *ExercisesRepo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`INSERT INTO exercises (name, category, muscle_group, description)
				VALUES ($1, $2, $3, $4)
			RETURNING exercise_id;`,
			exercise.Name, exercise.Category, exercise.MuscleGroup, exercise.Description,
		).Scan(&exercise.ID)
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, Conflictf(duplicateExerciseMsg)
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))
	return &exercise, nil
}

func (r *ExercisesRepo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	exercise, err := getExercise(ctx, r.db, id, false)
	if err != nil {
		return nil, err
	}
	return exercise, nil
}

func (r *ExercisesRepo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises ORDER BY exercise_id`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	exercises, err := collect(rows, scanExercise)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("count", len(exercises)))

	return exercises, nil
}

// Update applies the patch to the stored exercise; fields absent from the patch keep their values.
func (r *ExercisesRepo) Update(ctx context.Context, id int, patch ExercisePatch) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var updated *Exercise
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		exercise, err := getExercise(ctx, tx, id, true)
		if err != nil {
			return err
		}

		if err := patch.Apply(exercise); err != nil {
			return err
		}

		if _, err := tx.Exec(
			ctx,
			`UPDATE exercises SET name = $1, category = $2, muscle_group = $3, description = $4 WHERE exercise_id = $5;`,
			exercise.Name, exercise.Category, exercise.MuscleGroup, exercise.Description, id,
		); err != nil {
			return err
		}

		updated = exercise
		return nil
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, Conflictf(duplicateExerciseMsg)
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes the exercise. An exercise still referenced by logged workout exercises is not deleted.
func (r *ExercisesRepo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM exercises WHERE exercise_id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return NotFoundf("exercise %d not found", id)
		}
		return nil
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return Conflictf("exercise %d is used in logged workouts and cannot be deleted", id)
		}
		return err
	}

	return nil
}

// Categories returns distinct exercise categories, sorted.
func (r *ExercisesRepo) Categories(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.distinct(ctx, `SELECT DISTINCT category FROM exercises ORDER BY category`)
}

// MuscleGroups returns distinct non-null muscle groups, sorted.
func (r *ExercisesRepo) MuscleGroups(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.musclegroups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.distinct(ctx, `SELECT DISTINCT muscle_group FROM exercises WHERE muscle_group IS NOT NULL ORDER BY muscle_group`)
}

func (r *ExercisesRepo) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return collect(rows, func(row scanner) (string, error) {
		var s string
		err := row.Scan(&s)
		return s, err
	})
}

func getExercise(ctx context.Context, q db.DB, id int, forUpdate bool) (*Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE exercise_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	exercise, err := scanExercise(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, NotFoundf("exercise %d not found", id)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &exercise, nil
}

func scanExercise(row scanner) (Exercise, error) {
	var e Exercise
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.Description)
	return e, err
}
