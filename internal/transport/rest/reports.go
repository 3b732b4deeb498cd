package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/travelpath-backend/internal/domain"
	"github.com/heartmarshall/travelpath-backend/internal/service/report"
	"github.com/heartmarshall/travelpath-backend/pkg/ctxutil"
)

// reportService defines the report lifecycle operations needed by ReportHandler.
type reportService interface {
	CreateReport(ctx context.Context, userID uuid.UUID, input report.CreateReportInput) (*domain.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	ListUserReports(ctx context.Context, userID uuid.UUID, store *domain.Store) ([]domain.Report, error)
	ListAllReports(ctx context.Context, store *domain.Store) ([]domain.Report, error)
}

// ReportHandler serves report submission and retrieval endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type checkRequest struct {
	Question string  `json:"question"`
	Result   bool    `json:"result"`
	Action   *string `json:"action"`
}

type locationRequest struct {
	Name   string         `json:"name"`
	Checks []checkRequest `json:"checks"`
}

type createReportRequest struct {
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Duration  string            `json:"duration"`
	Locations []locationRequest `json:"locations"`
}

func (req createReportRequest) toInput() report.CreateReportInput {
	in := report.CreateReportInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  req.Duration,
		Locations: make([]report.LocationInput, 0, len(req.Locations)),
	}
	for _, loc := range req.Locations {
		li := report.LocationInput{Name: loc.Name, Checks: make([]report.CheckInput, 0, len(loc.Checks))}
		for _, c := range loc.Checks {
			li.Checks = append(li.Checks, report.CheckInput{Question: c.Question, Result: c.Result, Action: c.Action})
		}
		in.Locations = append(in.Locations, li)
	}
	return in
}

// Create handles POST /travelpath/createreport.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createReportRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateReport(r.Context(), userID, req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(created))
}

// Get handles GET /travelpath/data/reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(chi.URLParam(r, "id"), "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rep, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// ListAll handles GET /travelpath/getall.
func (h *ReportHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	store, err := storeParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reports, err := h.svc.ListAllReports(r.Context(), store)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportsResponse(reports))
}

// ListByUser handles GET /travelpath/user/{userId}.
func (h *ReportHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuidParam(chi.URLParam(r, "userId"), "userId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	store, err := storeParam(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reports, err := h.svc.ListUserReports(r.Context(), userID, store)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportsResponse(reports))
}
