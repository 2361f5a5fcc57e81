package pricelist

import (
	"fmt"
	"testing"
)

func TestLocalizarLinhaCabecalhoNaPrimeiraLinha(t *testing.T) {
	rows := [][]string{
		{"Referência", "Descrição", "PVP"},
		{"ABC1", "Disjuntor", "12,50"},
	}

	linha, ok := LocalizarLinhaCabecalho(rows)
	if !ok || linha != 0 {
		t.Errorf("LocalizarLinhaCabecalho = (%d, %v), esperado (0, true)", linha, ok)
	}
}

func TestLocalizarLinhaCabecalhoComLinhasIniciais(t *testing.T) {
	for _, iniciais := range []int{0, 1, 10} {
		rows := make([][]string, 0, iniciais+2)
		for i := 0; i < iniciais; i++ {
			rows = append(rows, []string{fmt.Sprintf("Título %d", i)})
		}
		rows = append(rows, []string{"Ref.", "Descrição", "PVP"})
		rows = append(rows, []string{"ABC1", "Disjuntor", "12,50"})

		linha, ok := LocalizarLinhaCabecalho(rows)
		if !ok || linha != iniciais {
			t.Errorf("com %d linhas iniciais: (%d, %v), esperado (%d, true)",
				iniciais, linha, ok, iniciais)
		}
	}
}

func TestLocalizarLinhaCabecalhoComTitulos(t *testing.T) {
	rows := [][]string{
		{"Tarifa 2026"},
		{},
		{"Válida a partir de 1 de março"},
		{"Ref.", "Designação", "Preço"},
		{"ABC1", "Disjuntor", "12,50"},
	}

	linha, ok := LocalizarLinhaCabecalho(rows)
	if !ok || linha != 3 {
		t.Errorf("LocalizarLinhaCabecalho = (%d, %v), esperado (3, true)", linha, ok)
	}
}

func TestLocalizarLinhaCabecalhoPorPontuacao(t *testing.T) {
	// sem célula de referência a heurística de vocabulário decide
	rows := [][]string{
		{"Catálogo geral"},
		{"Código", "Designação", "PVP", "EAN"},
		{"ABC1", "Disjuntor", "12,50", "560123"},
	}

	linha, ok := LocalizarLinhaCabecalho(rows)
	if !ok || linha != 1 {
		t.Errorf("LocalizarLinhaCabecalho = (%d, %v), esperado (1, true)", linha, ok)
	}
}

func TestLocalizarLinhaCabecalhoSemCandidata(t *testing.T) {
	rows := [][]string{
		{"111", "222"},
		{"333", "444"},
	}

	linha, ok := LocalizarLinhaCabecalho(rows)
	if ok || linha != 0 {
		t.Errorf("LocalizarLinhaCabecalho = (%d, %v), esperado (0, false)", linha, ok)
	}
}

func TestLocalizarLinhaCabecalhoRespeitaLimite(t *testing.T) {
	rows := make([][]string, 0, maxLinhasCabecalho+2)
	for i := 0; i < maxLinhasCabecalho; i++ {
		rows = append(rows, []string{"nota"})
	}
	// cabeçalho para lá do limite de procura não é considerado
	rows = append(rows, []string{"Referência", "PVP"})
	rows = append(rows, []string{"ABC1", "12,50"})

	linha, ok := LocalizarLinhaCabecalho(rows)
	if ok || linha != 0 {
		t.Errorf("LocalizarLinhaCabecalho = (%d, %v), esperado (0, false)", linha, ok)
	}
}
