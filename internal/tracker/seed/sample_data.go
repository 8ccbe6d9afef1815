package seed

import (
	"github.com/2beens/workouttracker/internal/tracker/repo"
)

var sampleUsers = []repo.User{
	{Username: "john_doe", Email: "john@example.com"},
	{Username: "jane_smith", Email: "jane@example.com"},
	{Username: "mike_wilson", Email: "mike@example.com"},
}

// indexes into this slice are used by sampleEntries
var sampleExercises = []repo.Exercise{
	{Name: "Bench Press", Category: "strength", MuscleGroup: ptr("chest"), Description: ptr("Chest compound exercise")},
	{Name: "Squat", Category: "strength", MuscleGroup: ptr("legs"), Description: ptr("Leg compound exercise")},
	{Name: "Deadlift", Category: "strength", MuscleGroup: ptr("back"), Description: ptr("Back compound exercise")},
	{Name: "Pull-ups", Category: "strength", MuscleGroup: ptr("back"), Description: ptr("Bodyweight back exercise")},
	{Name: "Shoulder Press", Category: "strength", MuscleGroup: ptr("shoulders"), Description: ptr("Shoulder compound exercise")},
	{Name: "Bicep Curls", Category: "strength", MuscleGroup: ptr("arms"), Description: ptr("Isolation arm exercise")},
	{Name: "Tricep Dips", Category: "strength", MuscleGroup: ptr("arms"), Description: ptr("Tricep bodyweight exercise")},
	{Name: "Running", Category: "cardio", Description: ptr("Cardio exercise")},
	{Name: "Cycling", Category: "cardio", Description: ptr("Low impact cardio")},
	{Name: "Rowing", Category: "cardio", Description: ptr("Full body cardio")},
	{Name: "Leg Press", Category: "strength", MuscleGroup: ptr("legs"), Description: ptr("Quad focused exercise")},
	{Name: "Lat Pulldown", Category: "strength", MuscleGroup: ptr("back"), Description: ptr("Back isolation exercise")},
	{Name: "Dumbbell Flyes", Category: "strength", MuscleGroup: ptr("chest"), Description: ptr("Chest isolation exercise")},
	{Name: "Lunges", Category: "strength", MuscleGroup: ptr("legs"), Description: ptr("Unilateral leg exercise")},
	{Name: "Plank", Category: "flexibility", MuscleGroup: ptr("core"), Description: ptr("Core stability exercise")},
}

type sampleWorkout struct {
	user     int
	daysAgo  int
	duration int
	notes    string
}

var sampleWorkouts = []sampleWorkout{
	{user: 0, daysAgo: 7, duration: 60, notes: "Chest and triceps day"},
	{user: 0, daysAgo: 5, duration: 45, notes: "Leg day"},
	{user: 0, daysAgo: 3, duration: 50, notes: "Back and biceps"},
	{user: 0, daysAgo: 1, duration: 40, notes: "Cardio session"},
	{user: 1, daysAgo: 6, duration: 55, notes: "Full body workout"},
	{user: 1, daysAgo: 2, duration: 35, notes: "Light cardio"},
	{user: 0, daysAgo: 10, duration: 65, notes: "Heavy lifting day"},
	{user: 0, daysAgo: 8, duration: 50, notes: "Upper body focus"},
	{user: 1, daysAgo: 9, duration: 45, notes: "Lower body workout"},
	{user: 0, daysAgo: 0, duration: 55, notes: "Shoulders and core"},
}

type sampleEntry struct {
	workout  int
	exercise int
	entry    repo.WorkoutExercise
}

func lift(workout, exercise, sets, reps int, weight *float64) sampleEntry {
	return sampleEntry{
		workout:  workout,
		exercise: exercise,
		entry:    repo.WorkoutExercise{Sets: ptr(sets), Reps: ptr(reps), WeightLbs: weight},
	}
}

func timed(workout, exercise, sets int, distance *float64, seconds int) sampleEntry {
	return sampleEntry{
		workout:  workout,
		exercise: exercise,
		entry:    repo.WorkoutExercise{Sets: ptr(sets), DistanceMiles: distance, DurationSeconds: ptr(seconds)},
	}
}

var sampleEntries = []sampleEntry{
	// chest and triceps
	lift(0, 0, 4, 8, ptr(185.0)),
	lift(0, 12, 3, 12, ptr(35.0)),
	lift(0, 6, 3, 15, nil),

	// leg day
	lift(1, 1, 4, 10, ptr(225.0)),
	lift(1, 10, 3, 12, ptr(300.0)),
	lift(1, 13, 3, 10, ptr(40.0)),

	// back and biceps
	lift(2, 2, 4, 6, ptr(275.0)),
	lift(2, 3, 3, 10, nil),
	lift(2, 11, 3, 12, ptr(120.0)),
	lift(2, 5, 3, 12, ptr(35.0)),

	// cardio
	timed(3, 7, 1, ptr(3.5), 1800),
	timed(3, 9, 1, nil, 600),

	// full body
	lift(4, 1, 3, 12, ptr(155.0)),
	lift(4, 0, 3, 10, ptr(135.0)),
	lift(4, 3, 3, 8, nil),

	// light cardio
	timed(5, 8, 1, ptr(8.0), 1500),

	// heavy lifting
	lift(6, 2, 5, 5, ptr(315.0)),
	lift(6, 1, 5, 5, ptr(275.0)),
	lift(6, 0, 5, 5, ptr(225.0)),

	// upper body
	lift(7, 4, 4, 8, ptr(95.0)),
	lift(7, 11, 3, 12, ptr(110.0)),
	lift(7, 5, 3, 15, ptr(30.0)),

	// lower body
	lift(8, 1, 4, 8, ptr(185.0)),
	lift(8, 13, 4, 12, ptr(50.0)),
	lift(8, 10, 3, 15, ptr(280.0)),

	// shoulders and core
	lift(9, 4, 4, 10, ptr(85.0)),
	timed(9, 14, 3, nil, 60),
}
