package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/tracker/repo"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

type usersAdder interface {
	Add(ctx context.Context, user repo.User) (*repo.User, error)
}

type exercisesAdder interface {
	Add(ctx context.Context, exercise repo.Exercise) (*repo.Exercise, error)
}

type workoutsAdder interface {
	Add(ctx context.Context, workout repo.Workout) (*repo.Workout, error)
}

type entriesAdder interface {
	Add(ctx context.Context, entry repo.WorkoutExercise) (*repo.WorkoutExercise, error)
}

type Counts struct {
	Users            int
	Exercises        int
	Workouts         int
	WorkoutExercises int
}

func (c Counts) String() string {
	return fmt.Sprintf(
		"users: %d, exercises: %d, workouts: %d, exercise logs: %d",
		c.Users, c.Exercises, c.Workouts, c.WorkoutExercises,
	)
}

type Seeder struct {
	users     usersAdder
	exercises exercisesAdder
	workouts  workoutsAdder
	entries   entriesAdder
	today     repo.Date
}

func NewSeeder(
	users usersAdder,
	exercises exercisesAdder,
	workouts workoutsAdder,
	entries entriesAdder,
	today time.Time,
) *Seeder {
	return &Seeder{
		users:     users,
		exercises: exercises,
		workouts:  workouts,
		entries:   entries,
		today:     repo.NewDate(today.Year(), today.Month(), today.Day()),
	}
}

// Result holds what the sample data run created, so random workouts can reference it.
type Result struct {
	Counts
	UserIDs []int
	Catalog []repo.Exercise
}

// SeedSample inserts the fixed sample catalog. Workout dates are relative to today.
func (s *Seeder) SeedSample(ctx context.Context) (*Result, error) {
	res := &Result{}

	for _, u := range sampleUsers {
		added, err := s.users.Add(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("add user %s: %w", u.Username, err)
		}
		res.UserIDs = append(res.UserIDs, added.ID)
	}
	res.Users = len(res.UserIDs)
	log.Debugf("seed: created %d users", res.Users)

	for _, ex := range sampleExercises {
		added, err := s.exercises.Add(ctx, ex)
		if err != nil {
			return nil, fmt.Errorf("add exercise %s: %w", ex.Name, err)
		}
		res.Catalog = append(res.Catalog, *added)
	}
	res.Counts.Exercises = len(res.Catalog)
	log.Debugf("seed: created %d exercises", res.Counts.Exercises)

	workoutIDs := make([]int, 0, len(sampleWorkouts))
	for _, sw := range sampleWorkouts {
		added, err := s.workouts.Add(ctx, repo.Workout{
			UserID:          res.UserIDs[sw.user],
			WorkoutDate:     s.daysAgo(sw.daysAgo),
			DurationMinutes: ptr(sw.duration),
			Notes:           ptr(sw.notes),
		})
		if err != nil {
			return nil, fmt.Errorf("add workout [%s]: %w", sw.notes, err)
		}
		workoutIDs = append(workoutIDs, added.ID)
	}
	res.Workouts = len(workoutIDs)
	log.Debugf("seed: created %d workouts", res.Workouts)

	for _, se := range sampleEntries {
		entry := se.entry
		entry.WorkoutID = workoutIDs[se.workout]
		entry.ExerciseID = res.Catalog[se.exercise].ID
		if _, err := s.entries.Add(ctx, entry); err != nil {
			return nil, fmt.Errorf("add workout exercise to workout %d: %w", entry.WorkoutID, err)
		}
		res.WorkoutExercises++
	}
	log.Debugf("seed: created %d workout exercise logs", res.WorkoutExercises)

	return res, nil
}

// SeedRandom adds count generated workouts, each with one to four logged exercises,
// spread over the last 90 days.
func (s *Seeder) SeedRandom(ctx context.Context, faker *gofakeit.Faker, count int, userIDs []int, exercises []repo.Exercise) (Counts, error) {
	var c Counts
	if count <= 0 {
		return c, nil
	}
	if len(userIDs) == 0 || len(exercises) == 0 {
		return c, fmt.Errorf("random workouts need at least one user and one exercise")
	}

	for i := 0; i < count; i++ {
		w, err := s.workouts.Add(ctx, repo.Workout{
			UserID:          userIDs[faker.Number(0, len(userIDs)-1)],
			WorkoutDate:     s.daysAgo(faker.Number(0, 90)),
			DurationMinutes: ptr(faker.Number(15, 120)),
			Notes:           ptr(faker.Sentence(4)),
		})
		if err != nil {
			return c, fmt.Errorf("add random workout: %w", err)
		}
		c.Workouts++

		for j := faker.Number(1, 4); j > 0; j-- {
			ex := exercises[faker.Number(0, len(exercises)-1)]
			if _, err := s.entries.Add(ctx, randomEntry(faker, w.ID, ex)); err != nil {
				return c, fmt.Errorf("add random workout exercise: %w", err)
			}
			c.WorkoutExercises++
		}
	}

	return c, nil
}

func randomEntry(faker *gofakeit.Faker, workoutID int, ex repo.Exercise) repo.WorkoutExercise {
	entry := repo.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: ex.ID,
	}
	switch ex.Category {
	case "cardio":
		entry.Sets = ptr(1)
		entry.DistanceMiles = ptr(float64(faker.Number(10, 100)) / 10)
		entry.DurationSeconds = ptr(faker.Number(5, 60) * 60)
	case "flexibility":
		entry.Sets = ptr(faker.Number(1, 4))
		entry.DurationSeconds = ptr(faker.Number(3, 12) * 10)
	default:
		entry.Sets = ptr(faker.Number(2, 5))
		entry.Reps = ptr(faker.Number(4, 15))
		if faker.Number(0, 9) > 0 {
			// plate increments
			entry.WeightLbs = ptr(float64(faker.Number(4, 64) * 5))
		}
	}
	return entry
}

func (s *Seeder) daysAgo(days int) repo.Date {
	return repo.Date{Time: s.today.AddDate(0, 0, -days)}
}

// HasData reports whether any user exists.
func HasData(ctx context.Context, q db.DB) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, fmt.Errorf("check existing data: %w", err)
	}
	return exists, nil
}

// Reset removes all rows and restarts the id sequences.
func Reset(ctx context.Context, q db.DB) error {
	_, err := q.Exec(ctx, `TRUNCATE workout_exercises, workouts, exercises, users RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("reset data: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
