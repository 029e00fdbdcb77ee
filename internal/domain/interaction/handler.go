package interaction

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/internal/platform/auth"
	"github.com/medrec/medrec/pkg/pagination"
)

type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("", auth.RequireRole("admin", "physician", "pharmacist", "nurse"))
	group.POST("/interactions/check", h.Check)
	group.GET("/interactions/records", h.ListRecords)
	group.GET("/interactions/counts", h.KnowledgeBaseCounts)
}

// CheckRequest is the interaction-check payload.
type CheckRequest struct {
	Medications []string `json:"medications"`
	Conditions  []string `json:"conditions,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	EGFR        *float64 `json:"egfr,omitempty"`
	OnDialysis  bool     `json:"on_dialysis,omitempty"`
}

func (h *Handler) Check(c echo.Context) error {
	var req CheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result := h.engine.Check(req.Medications, req.Conditions, req.Allergies, req.EGFR, req.OnDialysis)
	return c.JSON(http.StatusOK, result)
}

// ListRecords pages through one knowledge-base table, selected by the `table`
// query parameter (drug_drug by default).
func (h *Handler) ListRecords(c echo.Context) error {
	pg := pagination.FromContext(c)
	table := c.QueryParam("table")
	if table == "" {
		table = "drug_drug"
	}

	var items interface{}
	var total int
	switch table {
	case "drug_drug":
		slice := h.engine.kb.DrugDrug
		total = len(slice)
		items = page(slice, pg.Limit, pg.Offset)
	case "drug_disease":
		slice := h.engine.kb.DrugDisease
		total = len(slice)
		items = page(slice, pg.Limit, pg.Offset)
	case "allergy":
		slice := h.engine.kb.Allergy
		total = len(slice)
		items = page(slice, pg.Limit, pg.Offset)
	case "renal":
		slice := h.engine.kb.Renal
		total = len(slice)
		items = page(slice, pg.Limit, pg.Offset)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown table")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) KnowledgeBaseCounts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.kb.Counts())
}

func page[T any](s []T, limit, offset int) []T {
	if offset >= len(s) {
		return []T{}
	}
	end := offset + limit
	if end > len(s) {
		end = len(s)
	}
	return s[offset:end]
}
