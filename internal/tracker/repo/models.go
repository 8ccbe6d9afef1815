package repo

import (
	"encoding/json"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date [%s], expected format YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type User struct {
	ID        int       `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Exercise struct {
	ID          int     `json:"exercise_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	MuscleGroup *string `json:"muscle_group"`
	Description *string `json:"description"`
}

type Workout struct {
	ID              int     `json:"workout_id"`
	UserID          int     `json:"user_id"`
	WorkoutDate     Date    `json:"workout_date"`
	DurationMinutes *int    `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

// WorkoutWithExercises is the single-workout projection, with its log entries nested.
type WorkoutWithExercises struct {
	Workout
	Exercises []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise is a single log entry of an exercise performed within a workout.
// ExerciseName and ExerciseCategory are denormalized from the referenced exercise.
type WorkoutExercise struct {
	ID               int      `json:"log_id"`
	WorkoutID        int      `json:"workout_id"`
	ExerciseID       int      `json:"exercise_id"`
	ExerciseName     string   `json:"exercise_name"`
	ExerciseCategory string   `json:"exercise_category"`
	Sets             *int     `json:"sets"`
	Reps             *int     `json:"reps"`
	WeightLbs        *float64 `json:"weight_lbs"`
	DistanceMiles    *float64 `json:"distance_miles"`
	DurationSeconds  *int     `json:"duration_seconds"`
}
