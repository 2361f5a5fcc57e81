package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"precario/internal/brands"
	"precario/internal/repo"
)

type MarcaHandler struct {
	marcaRepo *repo.MarcaRepository
}

func NewMarcaHandler(marcaRepo *repo.MarcaRepository) *MarcaHandler {
	return &MarcaHandler{marcaRepo: marcaRepo}
}

// marcaResponse junta a marca persistida à sua configuração de
// importação, quando existe
type marcaResponse struct {
	IDMarca    int    `json:"idmarca"`
	Nome       string `json:"nome"`
	Importavel bool   `json:"importavel"`
	Folha      string `json:"folha,omitempty"`
}

// List lista as marcas e se cada uma aceita importação de preçário
// @Summary List brands
// @Description List brands with their price-list import capability
// @Tags marcas
// @Produce json
// @Success 200 {array} handlers.marcaResponse
// @Failure 500 {object} map[string]string
// @Router /marcas [get]
func (h *MarcaHandler) List(c echo.Context) error {
	marcas, err := h.marcaRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	resposta := make([]marcaResponse, 0, len(marcas))
	for _, m := range marcas {
		item := marcaResponse{IDMarca: m.IDMarca, Nome: m.Nome}
		if cfg := brands.Get(m.IDMarca); cfg != nil {
			item.Importavel = true
			item.Folha = cfg.SheetName()
		}
		resposta = append(resposta, item)
	}

	return c.JSON(http.StatusOK, resposta)
}
