package report

import (
	"context"
	"strconv"
	"time"

	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/tracker/repo"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=report_mocks_test.go -package=report_test

type workoutsRepo interface {
	ListInRange(ctx context.Context, from, to *time.Time) ([]repo.Workout, []repo.WorkoutExercise, error)
}

type ExerciseStats struct {
	Count     int `json:"count"`
	TotalSets int `json:"totalSets"`
	TotalReps int `json:"totalReps"`
}

type Summary struct {
	TotalWorkouts     int                       `json:"totalWorkouts"`
	TotalSets         int                       `json:"totalSets"`
	TotalReps         int                       `json:"totalReps"`
	AvgWeight         string                    `json:"avgWeight"`
	ExerciseBreakdown map[string]*ExerciseStats `json:"exerciseBreakdown"`
}

type Report struct {
	Summary  Summary                     `json:"summary"`
	Workouts []repo.WorkoutWithExercises `json:"workouts"`
}

type Reporter struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewReporter(repo workoutsRepo, metricsManager *metrics.Manager) *Reporter {
	return &Reporter{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// Summary loads the workouts in the requested date range and builds the report over them.
func (r *Reporter) Summary(ctx context.Context, params Params) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reporter.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("category", params.Category),
		attribute.Bool("exercise_level_filter", params.ExerciseLevelFilter()),
	)

	defer func(begin time.Time) {
		if r.metricsManager != nil {
			r.metricsManager.HistogramReportDuration.Observe(time.Since(begin).Seconds())
		}
	}(time.Now())

	workouts, entries, err := r.repo.ListInRange(ctx, params.From, params.To)
	if err != nil {
		return nil, err
	}

	report := Build(workouts, entries, params)
	span.SetAttributes(
		attribute.Int("workouts.total", report.Summary.TotalWorkouts),
		attribute.Int("workouts.listed", len(report.Workouts)),
	)

	return report, nil
}

// Build aggregates the log entries of the given workouts.
// Workouts are assumed to be already filtered by date; entries of other workouts are ignored.
//
// The workout total counts every given workout, even those left without matching entries.
// Such workouts are listed only when no exercise level filter was supplied.
func Build(workouts []repo.Workout, entries []repo.WorkoutExercise, params Params) *Report {
	byWorkout := make(map[int][]repo.WorkoutExercise, len(workouts))
	for _, w := range workouts {
		byWorkout[w.ID] = []repo.WorkoutExercise{}
	}

	summary := Summary{
		TotalWorkouts:     len(workouts),
		ExerciseBreakdown: map[string]*ExerciseStats{},
	}

	var weightSum float64
	var weightCount int
	for _, e := range entries {
		if _, ok := byWorkout[e.WorkoutID]; !ok {
			continue
		}
		if !matches(e, params) {
			continue
		}
		byWorkout[e.WorkoutID] = append(byWorkout[e.WorkoutID], e)

		sets := valueOrZero(e.Sets)
		reps := sets * valueOrZero(e.Reps)
		summary.TotalSets += sets
		summary.TotalReps += reps

		// zero weight counts as no weight
		if e.WeightLbs != nil && *e.WeightLbs != 0 {
			weightSum += *e.WeightLbs
			weightCount++
		}

		stats, ok := summary.ExerciseBreakdown[e.ExerciseName]
		if !ok {
			stats = &ExerciseStats{}
			summary.ExerciseBreakdown[e.ExerciseName] = stats
		}
		stats.Count++
		stats.TotalSets += sets
		stats.TotalReps += reps
	}

	avgWeight := 0.0
	if weightCount > 0 {
		avgWeight = weightSum / float64(weightCount)
	}
	summary.AvgWeight = strconv.FormatFloat(avgWeight, 'f', 1, 64)

	listed := []repo.WorkoutWithExercises{}
	for _, w := range workouts {
		retained := byWorkout[w.ID]
		if len(retained) == 0 && params.ExerciseLevelFilter() {
			continue
		}
		listed = append(listed, repo.WorkoutWithExercises{
			Workout:   w,
			Exercises: retained,
		})
	}

	return &Report{
		Summary:  summary,
		Workouts: listed,
	}
}

func matches(e repo.WorkoutExercise, params Params) bool {
	if params.filtersCategory() && e.ExerciseCategory != params.Category {
		return false
	}
	if params.MinWeight != nil && (e.WeightLbs == nil || *e.WeightLbs < *params.MinWeight) {
		return false
	}
	if params.MaxWeight != nil && (e.WeightLbs == nil || *e.WeightLbs > *params.MaxWeight) {
		return false
	}
	return true
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
