package report

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/workouttracker/internal/tracker/repo"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Params are the report filters. Nil / empty fields are not applied.
type Params struct {
	From      *time.Time
	To        *time.Time
	Category  string
	MinWeight *float64
	MaxWeight *float64
}

// ExerciseLevelFilter reports whether any filter on individual log entries was supplied.
// The category sentinel "all" still counts as supplied.
func (p Params) ExerciseLevelFilter() bool {
	return p.Category != "" || p.MinWeight != nil || p.MaxWeight != nil
}

func (p Params) filtersCategory() bool {
	return p.Category != "" && p.Category != CategoryAll
}

// ParseParams reads the report filters from query values:
// startDate, endDate (YYYY-MM-DD), category, minWeight, maxWeight.
func ParseParams(query url.Values) (Params, error) {
	var params Params

	var err error
	if params.From, err = parseDateParam(query, "startDate"); err != nil {
		return Params{}, err
	}
	if params.To, err = parseDateParam(query, "endDate"); err != nil {
		return Params{}, err
	}
	if params.MinWeight, err = parseWeightParam(query, "minWeight"); err != nil {
		return Params{}, err
	}
	if params.MaxWeight, err = parseWeightParam(query, "maxWeight"); err != nil {
		return Params{}, err
	}
	params.Category = query.Get("category")

	return params, nil
}

func parseDateParam(query url.Values, name string) (*time.Time, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := repo.ParseDate(raw)
	if err != nil {
		return nil, repo.Validationf("invalid %s [%s], expected format YYYY-MM-DD", name, raw)
	}
	return &d.Time, nil
}

func parseWeightParam(query url.Values, name string) (*float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, repo.Validationf("invalid %s [%s], must be a number", name, raw)
	}
	return &w, nil
}
