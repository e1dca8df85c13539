package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salilgupta4/agile-rental-management/internal/core/apperror"
	"github.com/salilgupta4/agile-rental-management/internal/domain/reports"
	"github.com/salilgupta4/agile-rental-management/internal/infrastructure/http/v1/dto"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ReportsHandler handles HTTP requests for derived reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetStock handles GET /reports/stock
func (h *ReportsHandler) GetStock(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.StockReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	scope := reports.Scope(req.Scope)
	switch scope {
	case "":
		scope = reports.ScopeTotal
	case reports.ScopeWarehouse, reports.ScopeCustomer, reports.ScopeTotal:
	default:
		h.Error(c, apperror.NewValidation("scope must be warehouse, customer or total"))
		return
	}

	report, err := h.service.StockReport(ctx, scope)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetRentalSummary handles GET /reports/rental-summary
func (h *ReportsHandler) GetRentalSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RentalSummaryRequest
	if !h.BindQuery(c, &req) {
		return
	}

	month, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid month format, expected YYYY-MM"))
		return
	}

	asOf, ok := h.parseDateOr(c, req.AsOf, "asOf", time.Now())
	if !ok {
		return
	}

	summary, err := h.service.MonthlyRentalSummary(ctx, month, asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetRentalStatement handles GET /reports/rental-statement
func (h *ReportsHandler) GetRentalStatement(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RentalStatementRequest
	if !h.BindQuery(c, &req) {
		return
	}

	asOf, ok := h.parseDateOr(c, req.AsOf, "asOf", time.Now())
	if !ok {
		return
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	from, ok := h.parseDateOr(c, req.From, "from", monthStart)
	if !ok {
		return
	}
	to, ok := h.parseDateOr(c, req.To, "to", monthStart.AddDate(0, 1, -1))
	if !ok {
		return
	}

	statement, err := h.service.RentalStatement(ctx, req.Customer, req.Site, from, to, asOf)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}

// GetJournal handles GET /reports/journal
func (h *ReportsHandler) GetJournal(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.JournalRequest
	if !h.BindQuery(c, &req) {
		return
	}

	from, ok := h.parseDateOr(c, req.From, "from", time.Time{})
	if !ok {
		return
	}
	to, ok := h.parseDateOr(c, req.To, "to", time.Time{})
	if !ok {
		return
	}

	journal, err := h.service.TransactionJournal(ctx, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, journal)
}

// GetDashboard handles GET /reports/dashboard
func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	figures, err := h.service.DashboardFigures(ctx, time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, figures)
}

// parseDateOr parses a YYYY-MM-DD query value, returning fallback when
// the value is empty. A false second return means an error response was
// already written.
func (h *ReportsHandler) parseDateOr(c *gin.Context, value, field string, fallback time.Time) (time.Time, bool) {
	if value == "" {
		return fallback, true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid date format, expected YYYY-MM-DD").
			WithDetail("field", field))
		return time.Time{}, false
	}
	return t, true
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stock", h.GetStock)
	rg.GET("/rental-summary", h.GetRentalSummary)
	rg.GET("/rental-statement", h.GetRentalStatement)
	rg.GET("/journal", h.GetJournal)
	rg.GET("/dashboard", h.GetDashboard)
}
