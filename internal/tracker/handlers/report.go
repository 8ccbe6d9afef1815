package handlers

import (
	"context"
	"net/http"

	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/tracker/report"
	"github.com/2beens/workouttracker/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=report_mocks_test.go -package=handlers_test

type summaryReporter interface {
	Summary(ctx context.Context, params report.Params) (*report.Report, error)
}

type ReportHandler struct {
	reporter summaryReporter
}

func NewReportHandler(reporter summaryReporter) *ReportHandler {
	return &ReportHandler{
		reporter: reporter,
	}
}

func (handler *ReportHandler) SetupRoutes(api *mux.Router) {
	api.HandleFunc("/reports/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("report-summary")
}

// HandleSummary serves the filtered workout report.
// Query: startDate, endDate, category, minWeight, maxWeight; all optional.
func (handler *ReportHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.summary")
	defer span.End()

	params, err := report.ParseParams(r.URL.Query())
	if err != nil {
		writeError(w, err, "parse report params")
		return
	}

	summary, err := handler.reporter.Summary(ctx, params)
	if err != nil {
		writeError(w, err, "build report")
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}
