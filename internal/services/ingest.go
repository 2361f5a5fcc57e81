package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"precario/internal/pricelist"
	"precario/pkg/models"
)

const (
	// dimensão de cada lote enviado à base de dados
	loteIngestao = 100
	// lotes com erros em sequência antes de desistir
	maxErrosConsecutivos = 5
	// mensagens de erro retidas no resultado; o resto é só contado
	maxMensagensErro = 20
)

// ComponenteStore is the persistence surface the ingestor writes to
type ComponenteStore interface {
	BulkUpsert(ctx context.Context, componentes []models.Componente) error
	Upsert(ctx context.Context, componente *models.Componente) error
}

// Ingestor grava componentes extraídos de um preçário em lotes, com
// fallback linha a linha quando um lote falha inteiro
type Ingestor struct {
	store ComponenteStore
}

// NewIngestor creates a new ingestor
func NewIngestor(store ComponenteStore) *Ingestor {
	return &Ingestor{store: store}
}

// Ingerir persiste os componentes em lotes de tamanho fixo. Um lote que
// falha é reprocessado linha a linha para salvar o que for possível;
// cinco lotes consecutivos com erros abortam a ingestão, mesmo que parte
// das linhas tenha sido salva. Erros em sequência indicam um problema
// estrutural no mapeamento, não linhas pontualmente más.
func (ing *Ingestor) Ingerir(ctx context.Context, componentes []models.Componente, onProgress pricelist.ProgressFunc) *models.ImportResult {
	resultado := &models.ImportResult{}
	if len(componentes) == 0 {
		return resultado
	}

	totalLotes := (len(componentes) + loteIngestao - 1) / loteIngestao
	errosConsecutivos := 0

	for lote := 0; lote < totalLotes; lote++ {
		inicio := lote * loteIngestao
		fim := inicio + loteIngestao
		if fim > len(componentes) {
			fim = len(componentes)
		}
		fatia := componentes[inicio:fim]

		// 80 a 98 por cento; o processamento do ficheiro ocupou o resto
		progresso := 80 + (lote*18)/totalLotes
		onProgress.Emit(pricelist.ProcessingStatus{
			Fase:      pricelist.FaseInserindo,
			Progresso: progresso,
			Mensagem:  fmt.Sprintf("A gravar lote %d de %d...", lote+1, totalLotes),
			Total:     len(componentes),
			Atual:     fim,
		})

		err := ing.store.BulkUpsert(ctx, fatia)
		if err == nil {
			resultado.Sucesso += len(fatia)
			errosConsecutivos = 0
			continue
		}

		log.Warn().Err(err).
			Int("lote", lote+1).
			Int("linhas", len(fatia)).
			Msg("lote falhou, a tentar linha a linha")

		errosNoLote := ing.recuperarLote(ctx, fatia, resultado)
		if errosNoLote > 0 {
			errosConsecutivos++
		} else {
			errosConsecutivos = 0
		}

		if errosConsecutivos >= maxErrosConsecutivos {
			msg := fmt.Sprintf(
				"PARADO: %d lotes consecutivos com erros, ingestão interrompida no lote %d de %d",
				maxErrosConsecutivos, lote+1, totalLotes)
			resultado.Mensagens = append(resultado.Mensagens, msg)
			log.Error().Int("lote", lote+1).Msg(msg)
			break
		}
	}

	onProgress.Emit(pricelist.ProcessingStatus{
		Fase:      pricelist.FaseInserindo,
		Progresso: 98,
		Mensagem:  fmt.Sprintf("Gravação concluída: %d registos, %d erros", resultado.Sucesso, resultado.Erros),
		Total:     len(componentes),
		Atual:     len(componentes),
	})

	return resultado
}

// recuperarLote tenta cada linha do lote individualmente e devolve
// quantas falharam
func (ing *Ingestor) recuperarLote(ctx context.Context, fatia []models.Componente, resultado *models.ImportResult) int {
	erros := 0
	for i := range fatia {
		if err := ing.store.Upsert(ctx, &fatia[i]); err != nil {
			erros++
			resultado.Erros++
			if len(resultado.Mensagens) < maxMensagensErro {
				resultado.Mensagens = append(resultado.Mensagens,
					fmt.Sprintf("referência %s: %v", fatia[i].Referencia, err))
			}
			continue
		}
		resultado.Sucesso++
	}
	return erros
}
