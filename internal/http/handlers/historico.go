package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"precario/internal/repo"
)

type HistoricoHandler struct {
	historicoRepo *repo.HistoricoRepository
}

func NewHistoricoHandler(historicoRepo *repo.HistoricoRepository) *HistoricoHandler {
	return &HistoricoHandler{historicoRepo: historicoRepo}
}

// List lista o histórico de preços
// @Summary List price history
// @Description List archived prices with pagination and search by reference
// @Tags historico
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(25)
// @Param idmarca query int false "Filter by brand"
// @Param q query string false "Search in referencia_backup"
// @Param sort_by query string false "Sort column" default(valido_ate)
// @Param sort_dir query string false "Sort direction (asc|desc)" default(desc)
// @Success 200 {object} models.PaginationResult[models.HistoricoPreco]
// @Failure 500 {object} map[string]string
// @Router /historico [get]
func (h *HistoricoHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 25)
	if limit > 200 {
		limit = 200
	}

	resultado, err := h.historicoRepo.List(
		c.Request().Context(),
		page, limit,
		queryIntPtr(c, "idmarca"),
		c.QueryParam("q"),
		c.QueryParam("sort_by"),
		c.QueryParam("sort_dir"),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resultado)
}
