package services

import (
	"sync"

	"github.com/google/uuid"

	"precario/pkg/models"
)

// ProgressHub distribui eventos de progresso de jobs de importação a
// subscritores (tipicamente ligações WebSocket). Os envios nunca
// bloqueiam: um subscritor lento perde eventos intermédios, o estado
// final fica sempre na linha do job.
type ProgressHub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan models.ImportJobProgress]struct{}
}

// NewProgressHub creates a new progress hub
func NewProgressHub() *ProgressHub {
	return &ProgressHub{
		subs: make(map[uuid.UUID]map[chan models.ImportJobProgress]struct{}),
	}
}

// Subscribe regista interesse num job e devolve o canal de eventos e a
// função para cancelar a subscrição
func (h *ProgressHub) Subscribe(jobID uuid.UUID) (<-chan models.ImportJobProgress, func()) {
	ch := make(chan models.ImportJobProgress, 16)

	h.mu.Lock()
	if h.subs[jobID] == nil {
		h.subs[jobID] = make(map[chan models.ImportJobProgress]struct{})
	}
	h.subs[jobID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[jobID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, jobID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish envia um evento a todos os subscritores do job
func (h *ProgressHub) Publish(jobID uuid.UUID, progress models.ImportJobProgress) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[jobID] {
		select {
		case ch <- progress:
		default:
		}
	}
}
