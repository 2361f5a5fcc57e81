package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"precario/internal/repo"
)

type ComponenteHandler struct {
	componenteRepo *repo.ComponenteRepository
}

func NewComponenteHandler(componenteRepo *repo.ComponenteRepository) *ComponenteHandler {
	return &ComponenteHandler{componenteRepo: componenteRepo}
}

// List lista componentes do catálogo
// @Summary List catalog components
// @Description List price-list components with pagination, search and sorting
// @Tags componentes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(25)
// @Param idmarca query int false "Filter by brand"
// @Param q query string false "Search in referencia and descricao"
// @Param sort_by query string false "Sort column" default(updated_at)
// @Param sort_dir query string false "Sort direction (asc|desc)" default(desc)
// @Success 200 {object} models.PaginationResult[models.Componente]
// @Failure 500 {object} map[string]string
// @Router /componentes [get]
func (h *ComponenteHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 25)
	if limit > 200 {
		limit = 200
	}

	resultado, err := h.componenteRepo.List(
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

// Count conta componentes
// @Summary Count catalog components
// @Description Count price-list components, optionally filtered by brand and search
// @Tags componentes
// @Produce json
// @Param idmarca query int false "Filter by brand"
// @Param q query string false "Search in referencia and descricao"
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /componentes/count [get]
func (h *ComponenteHandler) Count(c echo.Context) error {
	total, err := h.componenteRepo.Count(
		c.Request().Context(),
		queryIntPtr(c, "idmarca"),
		c.QueryParam("q"),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]int64{"total": total})
}
