package brands

import "testing"

func TestGet(t *testing.T) {
	if Get(0) != nil {
		t.Error("marca 0 não devia ter estratégia")
	}
	if Get(999) != nil {
		t.Error("marca desconhecida não devia ter estratégia")
	}

	s := Get(1)
	if s == nil {
		t.Fatal("marca 1 devia ter estratégia registrada")
	}
	if s.ID() != 1 {
		t.Errorf("ID = %d, esperado 1", s.ID())
	}
	if s.SheetName() == "" {
		t.Error("estratégia sem folha configurada")
	}
}

func TestAllOrdenadoPorID(t *testing.T) {
	todas := All()
	if len(todas) == 0 {
		t.Fatal("nenhuma estratégia registrada")
	}
	for i := 1; i < len(todas); i++ {
		if todas[i-1].ID() >= todas[i].ID() {
			t.Errorf("estratégias fora de ordem: %d antes de %d", todas[i-1].ID(), todas[i].ID())
		}
	}
}

func TestAliasesApontamParaCamposCanonicos(t *testing.T) {
	canonicos := map[string]bool{
		"referencia": true, "descricao": true, "familia": true,
		"ean": true, "preco_tabela": true, "grupo_desconto": true,
		"unidade": true, "quantidade_minima": true, "peso": true,
	}

	for _, s := range All() {
		for alias, campo := range s.AliasExato() {
			if !canonicos[campo] {
				t.Errorf("%s: alias exato %q aponta para campo desconhecido %q", s.Nome(), alias, campo)
			}
		}
		for alias, campo := range s.AliasMap() {
			if !canonicos[campo] {
				t.Errorf("%s: alias %q aponta para campo desconhecido %q", s.Nome(), alias, campo)
			}
		}
	}
}
