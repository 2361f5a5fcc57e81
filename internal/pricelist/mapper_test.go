package pricelist

import (
	"strings"
	"testing"
)

// marcaTeste é uma estratégia mínima para exercitar o mapeador sem
// depender da configuração de nenhuma marca real
type marcaTeste struct {
	exato map[string]string
	alias map[string]string
}

func (marcaTeste) ID() int           { return 99 }
func (marcaTeste) Nome() string      { return "Teste" }
func (marcaTeste) SheetName() string { return "Tarifa" }
func (m marcaTeste) AliasExato() map[string]string {
	if m.exato == nil {
		return map[string]string{}
	}
	return m.exato
}
func (m marcaTeste) AliasMap() map[string]string {
	if m.alias == nil {
		return map[string]string{}
	}
	return m.alias
}

func TestMapearColunasBasico(t *testing.T) {
	header := []string{"Referência", "Descrição", "PVP", "EAN", "Peso"}

	mapeamento, erros := MapearColunas(header, marcaTeste{})
	if len(erros) != 0 {
		t.Fatalf("erros inesperados: %v", erros)
	}

	esperado := map[Campo]int{
		CampoReferencia:  0,
		CampoDescricao:   1,
		CampoPrecoTabela: 2,
		CampoEAN:         3,
		CampoPeso:        4,
	}
	for campo, coluna := range esperado {
		if mapeamento[campo] != coluna {
			t.Errorf("%s mapeado para %d, esperado %d", campo, mapeamento[campo], coluna)
		}
	}
	if _, ok := mapeamento[CampoFamilia]; ok {
		t.Errorf("familia não devia ter sido mapeada")
	}
}

func TestMapearColunasAliasExatoVenceGenerico(t *testing.T) {
	// "Preço Unitário" casaria por contenção, mas o sinônimo consagrado
	// "pvp" decide primeiro
	header := []string{"Referência", "Preço Unitário", "PVP"}

	mapeamento, erros := MapearColunas(header, marcaTeste{
		exato: map[string]string{"pvp": "preco_tabela"},
	})
	if len(erros) != 0 {
		t.Fatalf("erros inesperados: %v", erros)
	}
	if mapeamento[CampoPrecoTabela] != 2 {
		t.Errorf("preco_tabela mapeado para %d, esperado a coluna PVP (2)", mapeamento[CampoPrecoTabela])
	}
}

func TestMapearColunasColunaReclamadaUmaVez(t *testing.T) {
	// a única coluna serve para referência e para descrição; a referência
	// resolve primeiro e fica com ela
	header := []string{"Descrição Ref"}

	mapeamento, _ := MapearColunas(header, marcaTeste{})
	if mapeamento[CampoReferencia] != 0 {
		t.Fatalf("referencia mapeada para %d, esperado 0", mapeamento[CampoReferencia])
	}
	if _, ok := mapeamento[CampoDescricao]; ok {
		t.Errorf("descricao não devia reclamar a coluna já usada pela referência")
	}
}

func TestMapearColunasPrefixoFamilia(t *testing.T) {
	header := []string{"Referência", "Fam/", "Descrição"}

	mapeamento, erros := MapearColunas(header, marcaTeste{})
	if len(erros) != 0 {
		t.Fatalf("erros inesperados: %v", erros)
	}
	if mapeamento[CampoFamilia] != 1 {
		t.Errorf("familia mapeada para %d, esperado 1", mapeamento[CampoFamilia])
	}
}

func TestMapearColunasFallbackQuantidade(t *testing.T) {
	// "Cantidad" só existe na lista tardia de sinônimos de quantidade
	header := []string{"Referência", "Cantidad"}

	mapeamento, erros := MapearColunas(header, marcaTeste{})
	if len(erros) != 0 {
		t.Fatalf("erros inesperados: %v", erros)
	}
	if mapeamento[CampoQuantidadeMinima] != 1 {
		t.Errorf("quantidade_minima mapeada para %d, esperado 1", mapeamento[CampoQuantidadeMinima])
	}
}

func TestMapearColunasAliasCurtoSoPorIgualdade(t *testing.T) {
	// "un" dentro de "Unitario" não é a coluna de unidade
	header := []string{"Referência", "Custo Unitario", "UN"}

	mapeamento, erros := MapearColunas(header, marcaTeste{
		alias: map[string]string{"UN": "unidade"},
	})
	if len(erros) != 0 {
		t.Fatalf("erros inesperados: %v", erros)
	}
	if mapeamento[CampoUnidade] != 2 {
		t.Errorf("unidade mapeada para %d, esperado a coluna UN (2)", mapeamento[CampoUnidade])
	}
}

func TestMapearColunasSemReferencia(t *testing.T) {
	header := []string{"Descrição", "PVP", ""}

	_, erros := MapearColunas(header, marcaTeste{})
	if len(erros) != 1 {
		t.Fatalf("erros = %v, esperado exatamente um", erros)
	}
	if !strings.Contains(erros[0], "Descrição") || !strings.Contains(erros[0], "PVP") {
		t.Errorf("o erro devia listar os cabeçalhos disponíveis: %q", erros[0])
	}
}
