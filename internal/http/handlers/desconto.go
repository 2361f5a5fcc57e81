package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"precario/internal/services"
	"precario/pkg/models"
)

type DescontoHandler struct {
	descontoService *services.DescontoService
}

func NewDescontoHandler(descontoService *services.DescontoService) *DescontoHandler {
	return &DescontoHandler{descontoService: descontoService}
}

// ListByMarca lista os grupos de desconto de uma marca
// @Summary List discount groups
// @Description List the discount groups configured for a brand
// @Tags descontos
// @Produce json
// @Param idmarca path int true "Brand ID"
// @Success 200 {array} models.Desconto
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /marcas/{idmarca}/descontos [get]
func (h *DescontoHandler) ListByMarca(c echo.Context) error {
	idmarca, err := strconv.Atoi(c.Param("idmarca"))
	if err != nil || idmarca <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "idmarca inválido"})
	}

	descontos, err := h.descontoService.Listar(c.Request().Context(), idmarca)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, descontos)
}

// Import importa grupos de desconto colados do Excel
// @Summary Import discount groups
// @Description Import discount groups from text pasted out of a spreadsheet
// @Tags descontos
// @Accept json
// @Produce json
// @Param body body models.DescontoImportRequest true "Brand and pasted text"
// @Success 200 {object} models.DescontoImportResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /descontos/import [post]
func (h *DescontoHandler) Import(c echo.Context) error {
	var req models.DescontoImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo do pedido inválido"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resultado, err := h.descontoService.Importar(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resultado)
}
