package pricelist

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// montarFicheiro constrói um xlsx em memória com a folha dada
func montarFicheiro(t *testing.T, folha string, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", folha); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(folha, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestProcessarFicheiroCompleto(t *testing.T) {
	rows := [][]interface{}{
		{"Tarifa 2026"},
		{},
		{"Válida a partir de março"},
		{"Referência", "Descrição", "PVP", "Fam."},
	}
	for i := 1; i <= 50; i++ {
		ref := fmt.Sprintf("REF-%03d", i)
		if i == 10 || i == 20 {
			ref = "" // linhas sem referência contam como ignoradas
		}
		rows = append(rows, []interface{}{ref, fmt.Sprintf("Artigo %d", i), "12,50", "F1"})
	}

	r := montarFicheiro(t, "Tarifa", rows)

	var eventos []ProcessingStatus
	resultado, err := Processar(r, marcaTeste{}, func(s ProcessingStatus) {
		eventos = append(eventos, s)
	})
	if err != nil {
		t.Fatalf("Processar: %v", err)
	}

	if len(resultado.Componentes) != 48 {
		t.Errorf("componentes = %d, esperado 48", len(resultado.Componentes))
	}
	if resultado.LinhasIgnoradas != 2 {
		t.Errorf("ignoradas = %d, esperado 2", resultado.LinhasIgnoradas)
	}
	if len(resultado.Mensagens) != 0 {
		t.Errorf("mensagens inesperadas: %v", resultado.Mensagens)
	}

	primeiro := resultado.Componentes[0]
	if primeiro.Referencia != "REF-001" || primeiro.IDMarca != 99 {
		t.Errorf("primeiro componente inesperado: %+v", primeiro)
	}
	if primeiro.PrecoTabela == nil || *primeiro.PrecoTabela != 12.5 {
		t.Errorf("preco_tabela = %v, esperado 12.5", primeiro.PrecoTabela)
	}
	if primeiro.Familia == nil || *primeiro.Familia != "F1" {
		t.Errorf("familia = %v, esperado F1", primeiro.Familia)
	}
	if primeiro.Unidade != "UN" {
		t.Errorf("unidade = %q, esperado default UN", primeiro.Unidade)
	}

	// as fases de leitura e mapeamento aparecem antes da extração
	if len(eventos) < 2 {
		t.Fatalf("eventos = %d, esperado pelo menos leitura e mapeamento", len(eventos))
	}
	if eventos[0].Fase != FaseLendo || eventos[1].Fase != FaseMapeando {
		t.Errorf("fases iniciais = %s, %s", eventos[0].Fase, eventos[1].Fase)
	}
}

func TestProcessarFolhaErrada(t *testing.T) {
	rows := [][]interface{}{
		{"Referência", "PVP"},
		{"REF-1", "10,00"},
	}
	r := montarFicheiro(t, "Folha Qualquer", rows)

	resultado, err := Processar(r, marcaTeste{}, nil)
	if err != nil {
		t.Fatalf("Processar: %v", err)
	}
	if len(resultado.Componentes) != 1 {
		t.Errorf("componentes = %d, esperado 1", len(resultado.Componentes))
	}
	if len(resultado.Mensagens) != 1 || !strings.Contains(resultado.Mensagens[0], "Tarifa") {
		t.Errorf("esperado aviso sobre a folha em falta, obtido %v", resultado.Mensagens)
	}
}

func TestProcessarFicheiroVazio(t *testing.T) {
	rows := [][]interface{}{
		{"Tarifa 2026"},
	}
	r := montarFicheiro(t, "Tarifa", rows)

	_, err := Processar(r, marcaTeste{}, nil)
	if err == nil || !strings.Contains(err.Error(), "vazio") {
		t.Errorf("esperado erro de ficheiro vazio, obtido %v", err)
	}
}

func TestProcessarSemColunaReferencia(t *testing.T) {
	rows := [][]interface{}{
		{"Descrição", "PVP"},
		{"Disjuntor", "10,00"},
	}
	r := montarFicheiro(t, "Tarifa", rows)

	_, err := Processar(r, marcaTeste{}, nil)
	if err == nil || !strings.Contains(err.Error(), "referência") {
		t.Errorf("esperado erro de mapeamento, obtido %v", err)
	}
}

func TestProcessarConteudoInvalido(t *testing.T) {
	_, err := Processar(strings.NewReader("isto não é um xlsx"), marcaTeste{}, nil)
	if err == nil {
		t.Error("esperado erro ao abrir conteúdo inválido")
	}
}
