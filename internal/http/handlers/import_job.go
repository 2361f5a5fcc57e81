package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"precario/internal/services"
)

type ImportJobHandler struct {
	importService *services.ImportService
}

func NewImportJobHandler(importService *services.ImportService) *ImportJobHandler {
	return &ImportJobHandler{importService: importService}
}

// CreateImportJob inicia um job de importação de preçário
// @Summary Create price-list import job
// @Description Start a new asynchronous price-list import for a brand
// @Tags import-jobs
// @Accept multipart/form-data
// @Produce json
// @Param idmarca formData int true "Brand ID"
// @Param file formData file true "Excel file to import"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /import/pricelist [post]
func (h *ImportJobHandler) CreateImportJob(c echo.Context) error {
	idmarca, err := strconv.Atoi(c.FormValue("idmarca"))
	if err != nil || idmarca <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "idmarca inválido"})
	}

	file, header, err := c.Request().FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ficheiro não encontrado"})
	}
	defer file.Close()

	nome := strings.ToLower(header.Filename)
	if !strings.HasSuffix(nome, ".xlsx") && !strings.HasSuffix(nome, ".xls") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "apenas ficheiros Excel são aceites"})
	}

	job, err := h.importService.CreateImportJob(c.Request().Context(), idmarca, file, header)
	if err != nil {
		if strings.Contains(err.Error(), "não tem importação") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"job_id":  job.ID.String(),
		"message": "Importação iniciada com sucesso",
	})
}

// GetImportJobProgress retorna o progresso de um job de importação
// @Summary Get import job progress
// @Description Get the progress of a price-list import job
// @Tags import-jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.ImportJobProgress
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /import/jobs/{id}/progress [get]
func (h *ImportJobHandler) GetImportJobProgress(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "job_id inválido"})
	}

	progress, err := h.importService.GetJobProgress(c.Request().Context(), jobID)
	if err != nil {
		if strings.Contains(err.Error(), "record not found") {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "job não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, progress)
}

// ListImportJobs lista jobs de importação
// @Summary List import jobs
// @Description List price-list import jobs with pagination and filters
// @Tags import-jobs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status"
// @Param idmarca query int false "Filter by brand"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /import/jobs [get]
func (h *ImportJobHandler) ListImportJobs(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	if limit > 100 {
		limit = 100
	}
	status := c.QueryParam("status")
	idmarca := queryIntPtr(c, "idmarca")

	jobs, total, err := h.importService.ListJobs(c.Request().Context(), page, limit, status, idmarca)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// queryInt lê um parâmetro numérico com default
func queryInt(c echo.Context, nome string, def int) int {
	if v := c.QueryParam(nome); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

// queryIntPtr lê um parâmetro numérico opcional
func queryIntPtr(c echo.Context, nome string) *int {
	if v := c.QueryParam(nome); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return &parsed
		}
	}
	return nil
}
