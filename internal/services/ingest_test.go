package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"precario/internal/pricelist"
	"precario/pkg/models"
)

type stubStore struct {
	bulkErr          error
	bulkErrAlternado bool
	rowFails         map[string]bool
	bulkCalls        int
	rowCalls         int
	sempreRow        bool
	guardadas        []string
}

func (s *stubStore) BulkUpsert(ctx context.Context, componentes []models.Componente) error {
	s.bulkCalls++
	if s.bulkErrAlternado && s.bulkCalls%2 == 1 {
		return errors.New("lote rejeitado")
	}
	if s.bulkErr != nil {
		return s.bulkErr
	}
	for _, c := range componentes {
		s.guardadas = append(s.guardadas, c.Referencia)
	}
	return nil
}

func (s *stubStore) Upsert(ctx context.Context, componente *models.Componente) error {
	s.rowCalls++
	if s.sempreRow || s.rowFails[componente.Referencia] {
		return errors.New("violação de constraint")
	}
	s.guardadas = append(s.guardadas, componente.Referencia)
	return nil
}

func gerarComponentes(n int) []models.Componente {
	componentes := make([]models.Componente, n)
	for i := range componentes {
		componentes[i] = models.Componente{
			IDMarca:    1,
			Referencia: fmt.Sprintf("REF-%04d", i),
		}
	}
	return componentes
}

func TestIngerirTodosOsLotes(t *testing.T) {
	store := &stubStore{}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(250), nil)

	if resultado.Sucesso != 250 {
		t.Errorf("sucesso = %d, esperado 250", resultado.Sucesso)
	}
	if resultado.Erros != 0 {
		t.Errorf("erros = %d, esperado 0", resultado.Erros)
	}
	if store.bulkCalls != 3 {
		t.Errorf("lotes = %d, esperado 3", store.bulkCalls)
	}
	if store.rowCalls != 0 {
		t.Errorf("fallback linha a linha não devia ter corrido, correu %d vezes", store.rowCalls)
	}
}

func TestIngerirFallbackLinhaALinha(t *testing.T) {
	store := &stubStore{
		bulkErr: errors.New("lote rejeitado"),
		rowFails: map[string]bool{
			"REF-0007": true,
			"REF-0041": true,
			"REF-0090": true,
		},
	}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(100), nil)

	if resultado.Sucesso != 97 {
		t.Errorf("sucesso = %d, esperado 97", resultado.Sucesso)
	}
	if resultado.Erros != 3 {
		t.Errorf("erros = %d, esperado 3", resultado.Erros)
	}
	if len(resultado.Mensagens) != 3 {
		t.Fatalf("mensagens = %d, esperado 3", len(resultado.Mensagens))
	}
	if !strings.Contains(resultado.Mensagens[0], "REF-0007") {
		t.Errorf("mensagem devia identificar a referência: %q", resultado.Mensagens[0])
	}
}

func TestIngerirAbortaAposLotesConsecutivosFalhados(t *testing.T) {
	store := &stubStore{
		bulkErr:   errors.New("base de dados indisponível"),
		sempreRow: true,
	}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(1000), nil)

	if store.bulkCalls != 5 {
		t.Errorf("lotes tentados = %d, esperado 5", store.bulkCalls)
	}
	if resultado.Sucesso != 0 {
		t.Errorf("sucesso = %d, esperado 0", resultado.Sucesso)
	}
	// só as 500 linhas efetivamente tentadas contam; as restantes ficam
	// fora das contagens
	if resultado.Erros != 500 {
		t.Errorf("erros = %d, esperado 500", resultado.Erros)
	}
	ultima := resultado.Mensagens[len(resultado.Mensagens)-1]
	if !strings.Contains(ultima, "PARADO") {
		t.Errorf("última mensagem devia sinalizar a interrupção: %q", ultima)
	}
}

func TestIngerirAbortaComLotesParcialmenteFalhados(t *testing.T) {
	// uma linha má por lote chega para manter a sequência de erros viva
	rowFails := make(map[string]bool)
	for i := 0; i < 10; i++ {
		rowFails[fmt.Sprintf("REF-%04d", i*100)] = true
	}
	store := &stubStore{
		bulkErr:  errors.New("lote rejeitado"),
		rowFails: rowFails,
	}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(1000), nil)

	if store.bulkCalls != 5 {
		t.Errorf("lotes tentados = %d, esperado 5", store.bulkCalls)
	}
	if resultado.Sucesso != 495 {
		t.Errorf("sucesso = %d, esperado 495", resultado.Sucesso)
	}
	if resultado.Erros != 5 {
		t.Errorf("erros = %d, esperado 5", resultado.Erros)
	}
	ultima := resultado.Mensagens[len(resultado.Mensagens)-1]
	if !strings.Contains(ultima, "PARADO") {
		t.Errorf("última mensagem devia sinalizar a interrupção: %q", ultima)
	}
}

func TestIngerirLoteLimpoReiniciaSequencia(t *testing.T) {
	// lotes ímpares falham em bloco mas recuperam todas as linhas; a
	// sequência reinicia e a ingestão vai até ao fim
	store := &stubStore{bulkErrAlternado: true}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(1000), nil)

	if store.bulkCalls != 10 {
		t.Errorf("lotes tentados = %d, esperado 10", store.bulkCalls)
	}
	if resultado.Sucesso != 1000 {
		t.Errorf("sucesso = %d, esperado 1000", resultado.Sucesso)
	}
	if resultado.Erros != 0 {
		t.Errorf("erros = %d, esperado 0", resultado.Erros)
	}
	for _, m := range resultado.Mensagens {
		if strings.Contains(m, "PARADO") {
			t.Errorf("lotes recuperados por completo não deviam abortar: %q", m)
		}
	}
}

func TestIngerirLimitaMensagensDeErro(t *testing.T) {
	rowFails := make(map[string]bool)
	for i := 0; i < 60; i++ {
		rowFails[fmt.Sprintf("REF-%04d", i)] = true
	}
	store := &stubStore{bulkErr: errors.New("lote rejeitado"), rowFails: rowFails}
	ing := NewIngestor(store)

	resultado := ing.Ingerir(context.Background(), gerarComponentes(100), nil)

	if resultado.Erros != 60 {
		t.Errorf("erros = %d, esperado 60", resultado.Erros)
	}
	if len(resultado.Mensagens) != maxMensagensErro {
		t.Errorf("mensagens = %d, esperado %d", len(resultado.Mensagens), maxMensagensErro)
	}
}

func TestIngerirVazio(t *testing.T) {
	store := &stubStore{}
	ing := NewIngestor(store)

	var eventos []pricelist.ProcessingStatus
	resultado := ing.Ingerir(context.Background(), nil, func(s pricelist.ProcessingStatus) {
		eventos = append(eventos, s)
	})

	if resultado.Sucesso != 0 || resultado.Erros != 0 {
		t.Errorf("resultado = %+v, esperado vazio", resultado)
	}
	if len(eventos) != 0 {
		t.Errorf("sem componentes não devia haver progresso, houve %d eventos", len(eventos))
	}
}
