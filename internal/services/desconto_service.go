package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"precario/internal/pricelist"
	"precario/pkg/models"
)

// DescontoStore is the persistence surface for discount groups
type DescontoStore interface {
	BulkUpsert(ctx context.Context, descontos []models.Desconto) error
	ListByMarca(ctx context.Context, idmarca int) ([]models.Desconto, error)
}

// DescontoService importa grupos de desconto colados de uma folha de
// cálculo e lista os existentes
type DescontoService struct {
	store DescontoStore
}

// NewDescontoService creates a new desconto service
func NewDescontoService(store DescontoStore) *DescontoService {
	return &DescontoService{store: store}
}

// Listar devolve os descontos de uma marca. Valores gravados como fração
// por importações antigas saem corrigidos para percentagem.
func (s *DescontoService) Listar(ctx context.Context, idmarca int) ([]models.Desconto, error) {
	descontos, err := s.store.ListByMarca(ctx, idmarca)
	if err != nil {
		return nil, err
	}
	for i := range descontos {
		descontos[i].ValorDesconto = models.NormalizarPercentual(descontos[i].ValorDesconto)
	}
	return descontos, nil
}

// Importar interpreta texto colado do Excel, linha a linha com grupo e
// percentagem separados por tabulação, e grava tudo num único upsert.
// Linhas sem os dois campos ou com valor ilegível são contadas como
// ignoradas, nunca abortam a importação.
func (s *DescontoService) Importar(ctx context.Context, req *models.DescontoImportRequest) (*models.DescontoImportResult, error) {
	resultado := &models.DescontoImportResult{}
	agora := time.Now()

	// último valor de cada grupo ganha; preserva-se a ordem da primeira
	// ocorrência para o upsert ser determinístico
	porGrupo := make(map[string]*models.Desconto)
	var ordem []string

	for _, linha := range strings.Split(req.Texto, "\n") {
		grupo, valor, ok := separarLinhaDesconto(linha)
		if !ok {
			if strings.TrimSpace(linha) != "" {
				resultado.Ignorados++
			}
			continue
		}

		numero := pricelist.ParaNumero(valor)
		if numero == nil {
			resultado.Ignorados++
			continue
		}

		if existente, visto := porGrupo[grupo]; visto {
			existente.ValorDesconto = models.NormalizarPercentual(*numero)
			continue
		}
		porGrupo[grupo] = &models.Desconto{
			IDMarca:       req.IDMarca,
			GrupoDesconto: grupo,
			ValorDesconto: models.NormalizarPercentual(*numero),
			UpdatedAt:     agora,
		}
		ordem = append(ordem, grupo)
	}

	descontos := make([]models.Desconto, 0, len(ordem))
	for _, grupo := range ordem {
		descontos = append(descontos, *porGrupo[grupo])
	}

	if len(descontos) > 0 {
		if err := s.store.BulkUpsert(ctx, descontos); err != nil {
			return nil, err
		}
	}

	resultado.Total = len(descontos)
	log.Info().
		Int("idmarca", req.IDMarca).
		Int("gravados", resultado.Total).
		Int("ignorados", resultado.Ignorados).
		Msg("descontos importados")

	return resultado, nil
}

// separarLinhaDesconto parte uma linha colada em grupo e valor. O Excel
// cola com tabulação; ponto e vírgula e sequências de espaços também
// servem.
func separarLinhaDesconto(linha string) (string, string, bool) {
	linha = strings.TrimSpace(linha)
	if linha == "" {
		return "", "", false
	}

	var campos []string
	switch {
	case strings.Contains(linha, "\t"):
		campos = strings.SplitN(linha, "\t", 2)
	case strings.Contains(linha, ";"):
		campos = strings.SplitN(linha, ";", 2)
	default:
		campos = strings.Fields(linha)
	}
	if len(campos) < 2 {
		return "", "", false
	}

	grupo := strings.TrimSpace(campos[0])
	valor := strings.TrimSpace(campos[1])
	if grupo == "" || valor == "" {
		return "", "", false
	}
	return grupo, valor, true
}
