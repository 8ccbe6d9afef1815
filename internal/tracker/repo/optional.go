package repo

import (
	"encoding/json"
	"unicode/utf8"
)

// Optional distinguishes a JSON field that is absent (Set false),
// explicitly null (Set true, Value nil) or carries a value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// UnmarshalJSON is only invoked for keys present in the input, null included.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type ExercisePatch struct {
	Name        Optional[string] `json:"name"`
	Category    Optional[string] `json:"category"`
	MuscleGroup Optional[string] `json:"muscle_group"`
	Description Optional[string] `json:"description"`
}

// column sizes of the exercises table
const (
	maxExerciseNameLen     = 100
	maxExerciseCategoryLen = 50
	maxMuscleGroupLen      = 50
)

func (p ExercisePatch) Apply(e *Exercise) error {
	if p.Name.Set {
		if p.Name.Value == nil || *p.Name.Value == "" {
			return Validationf("name cannot be empty")
		}
		if err := checkMaxLen("name", *p.Name.Value, maxExerciseNameLen); err != nil {
			return err
		}
		e.Name = *p.Name.Value
	}
	if p.Category.Set {
		if p.Category.Value == nil || *p.Category.Value == "" {
			return Validationf("category cannot be empty")
		}
		if err := checkMaxLen("category", *p.Category.Value, maxExerciseCategoryLen); err != nil {
			return err
		}
		e.Category = *p.Category.Value
	}
	if p.MuscleGroup.Set {
		if v := p.MuscleGroup.Value; v != nil {
			if err := checkMaxLen("muscle_group", *v, maxMuscleGroupLen); err != nil {
				return err
			}
		}
		e.MuscleGroup = p.MuscleGroup.Value
	}
	if p.Description.Set {
		e.Description = p.Description.Value
	}
	return nil
}

func checkMaxLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return Validationf("%s must be at most %d characters", field, max)
	}
	return nil
}

// WorkoutPatch does not allow moving a workout to another user.
type WorkoutPatch struct {
	WorkoutDate     Optional[Date]   `json:"workout_date"`
	DurationMinutes Optional[int]    `json:"duration_minutes"`
	Notes           Optional[string] `json:"notes"`
}

func (p WorkoutPatch) Apply(w *Workout) error {
	if p.WorkoutDate.Set {
		if p.WorkoutDate.Value == nil {
			return Validationf("workout_date cannot be null")
		}
		w.WorkoutDate = *p.WorkoutDate.Value
	}
	if p.DurationMinutes.Set {
		if v := p.DurationMinutes.Value; v != nil && *v < 0 {
			return Validationf("duration_minutes cannot be negative")
		}
		w.DurationMinutes = p.DurationMinutes.Value
	}
	if p.Notes.Set {
		w.Notes = p.Notes.Value
	}
	return nil
}

type WorkoutExercisePatch struct {
	ExerciseID      Optional[int]     `json:"exercise_id"`
	Sets            Optional[int]     `json:"sets"`
	Reps            Optional[int]     `json:"reps"`
	WeightLbs       Optional[float64] `json:"weight_lbs"`
	DistanceMiles   Optional[float64] `json:"distance_miles"`
	DurationSeconds Optional[int]     `json:"duration_seconds"`
}

func (p WorkoutExercisePatch) Apply(we *WorkoutExercise) error {
	if p.ExerciseID.Set {
		if p.ExerciseID.Value == nil {
			return Validationf("exercise_id cannot be null")
		}
		we.ExerciseID = *p.ExerciseID.Value
	}

	for _, f := range []struct {
		name string
		opt  Optional[int]
		dst  **int
	}{
		{"sets", p.Sets, &we.Sets},
		{"reps", p.Reps, &we.Reps},
		{"duration_seconds", p.DurationSeconds, &we.DurationSeconds},
	} {
		if !f.opt.Set {
			continue
		}
		if f.opt.Value != nil && *f.opt.Value < 0 {
			return Validationf("%s cannot be negative", f.name)
		}
		*f.dst = f.opt.Value
	}

	for _, f := range []struct {
		name string
		opt  Optional[float64]
		dst  **float64
	}{
		{"weight_lbs", p.WeightLbs, &we.WeightLbs},
		{"distance_miles", p.DistanceMiles, &we.DistanceMiles},
	} {
		if !f.opt.Set {
			continue
		}
		if f.opt.Value != nil && *f.opt.Value < 0 {
			return Validationf("%s cannot be negative", f.name)
		}
		*f.dst = f.opt.Value
	}

	return nil
}
