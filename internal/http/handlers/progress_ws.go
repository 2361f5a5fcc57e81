package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"precario/internal/services"
	"precario/pkg/models"
)

// ProgressWSHandler transmite o progresso de um job de importação por
// WebSocket. O cliente liga-se depois de criar o job e recebe eventos
// até o job terminar ou a ligação cair.
type ProgressWSHandler struct {
	importService *services.ImportService
	hub           *services.ProgressHub
	upgrader      websocket.Upgrader
}

func NewProgressWSHandler(importService *services.ImportService, hub *services.ProgressHub) *ProgressWSHandler {
	return &ProgressWSHandler{
		importService: importService,
		hub:           hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// o back office serve noutro domínio
				return true
			},
		},
	}
}

// HandleProgress faz o upgrade da ligação e transmite o progresso do job
func (h *ProgressWSHandler) HandleProgress(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "job_id inválido"})
	}

	// subscrever antes do snapshot inicial para não perder eventos
	eventos, cancel := h.hub.Subscribe(jobID)
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Warn().Err(err).Msg("falha no upgrade WebSocket")
		return err
	}
	defer conn.Close()

	// estado atual primeiro; o job pode já ter terminado
	atual, err := h.importService.GetJobProgress(c.Request().Context(), jobID)
	if err != nil {
		conn.WriteJSON(map[string]string{"error": "job não encontrado"})
		return nil
	}
	if err := conn.WriteJSON(atual); err != nil {
		return nil
	}
	if terminado(atual.Status) {
		return nil
	}

	// descartar o que o cliente enviar e detetar o fecho da ligação
	fechado := make(chan struct{})
	go func() {
		defer close(fechado)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case progresso := <-eventos:
			if err := conn.WriteJSON(progresso); err != nil {
				return nil
			}
			if terminado(progresso.Status) {
				return nil
			}
		case <-fechado:
			return nil
		}
	}
}

func terminado(status models.ImportJobStatus) bool {
	return status == models.ImportJobStatusCompleted || status == models.ImportJobStatusFailed
}
