package cdss

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/platform/auth"
	"github.com/medrec/medrec/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "physician", "pharmacist", "nurse"))
	readGroup.GET("/cdss/rules", h.ListRules)
	readGroup.GET("/cdss/rules/counts", h.RuleCounts)
	readGroup.GET("/cdss/alerts", h.ListAlerts)
	readGroup.GET("/cdss/alerts/:id", h.GetAlert)

	writeGroup := api.Group("", auth.RequireRole("admin", "physician", "pharmacist"))
	writeGroup.POST("/cdss/evaluate", h.Evaluate)
	writeGroup.POST("/cdss/alerts/:id/acknowledge", h.AcknowledgeAlert)
	writeGroup.POST("/cdss/alerts/:id/resolve", h.ResolveAlert)
}

// EvaluateRequest is the evaluate endpoint payload.
type EvaluateRequest struct {
	Module   Module           `json:"module,omitempty"`
	Snapshot ClinicalSnapshot `json:"snapshot"`
}

func (h *Handler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.Evaluate(c.Request().Context(), req.Snapshot, req.Module)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// RuleInfo is the serializable view of a catalog rule; condition and
// generator functions are not exposed.
type RuleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Module      Module   `json:"module"`
	Source      string   `json:"source,omitempty"`
	Active      bool     `json:"active"`
}

func (h *Handler) ListRules(c echo.Context) error {
	module := Module(c.QueryParam("module"))
	if module != "" && !validModule(module) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid module")
	}
	rules := h.svc.Registry().Rules(module)
	infos := make([]RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, RuleInfo{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			Module:      r.Module,
			Source:      r.Source,
			Active:      r.Active,
		})
	}
	return c.JSON(http.StatusOK, infos)
}

func (h *Handler) RuleCounts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Registry().ActiveCounts())
}

func (h *Handler) ListAlerts(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	if patientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient_id is required")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAlertsByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetAlert(c echo.Context) error {
	a, err := h.svc.GetAlert(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "alert not found")
	}
	return c.JSON(http.StatusOK, a)
}

type acknowledgeRequest struct {
	AcknowledgedBy string `json:"acknowledged_by"`
}

func (h *Handler) AcknowledgeAlert(c echo.Context) error {
	var req acknowledgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AcknowledgeAlert(c.Request().Context(), c.Param("id"), req.AcknowledgedBy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ResolveAlert(c echo.Context) error {
	if err := h.svc.ResolveAlert(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
