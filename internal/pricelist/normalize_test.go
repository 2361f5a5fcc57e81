package pricelist

import "testing"

func TestLimparTexto(t *testing.T) {
	tests := []struct {
		nome     string
		entrada  string
		esperado string
		nulo     bool
	}{
		{"texto normal", "ABC123", "ABC123", false},
		{"espaços à volta", "  ABC123  ", "ABC123", false},
		{"vazio", "", "", true},
		{"só espaços", "   ", "", true},
		{"nan literal", "nan", "", true},
		{"NaN maiúsculas", "NaN", "", true},
		{"nan com espaços", " nan ", "", true},
		{"nan dentro de palavra fica", "banana", "banana", false},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			got := LimparTexto(tt.entrada)
			if tt.nulo {
				if got != nil {
					t.Errorf("LimparTexto(%q) = %q, esperado nil", tt.entrada, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("LimparTexto(%q) = nil, esperado %q", tt.entrada, tt.esperado)
			}
			if *got != tt.esperado {
				t.Errorf("LimparTexto(%q) = %q, esperado %q", tt.entrada, *got, tt.esperado)
			}
		})
	}
}

func TestParaNumero(t *testing.T) {
	tests := []struct {
		nome     string
		entrada  string
		esperado float64
		nulo     bool
	}{
		{"inteiro", "42", 42, false},
		{"decimal com ponto", "12.5", 12.5, false},
		{"decimal com vírgula", "12,5", 12.5, false},
		{"vírgula com espaços", " 0,30 ", 0.3, false},
		{"zero", "0", 0, false},
		{"negativo", "-3,2", -3.2, false},
		{"vazio", "", 0, true},
		{"nan", "nan", 0, true},
		{"texto", "abc", 0, true},
		{"unidade colada", "12,5 EUR", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			got := ParaNumero(tt.entrada)
			if tt.nulo {
				if got != nil {
					t.Errorf("ParaNumero(%q) = %v, esperado nil", tt.entrada, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ParaNumero(%q) = nil, esperado %v", tt.entrada, tt.esperado)
			}
			if *got != tt.esperado {
				t.Errorf("ParaNumero(%q) = %v, esperado %v", tt.entrada, *got, tt.esperado)
			}
		})
	}
}

func TestNormalizar(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado string
	}{
		{"Referência", "referencia"},
		{"P.V.P", "pvp"},
		{"Descrição", "descricao"},
		{"  EAN-13  ", "ean-13"},
		{"PREÇO", "preco"},
		{"Fam. Produto", "fam produto"},
		{"Designa\u00e7\u00e3o com BOM\ufeff", "designacao com bom"},
	}

	for _, tt := range tests {
		if got := Normalizar(tt.entrada); got != tt.esperado {
			t.Errorf("Normalizar(%q) = %q, esperado %q", tt.entrada, got, tt.esperado)
		}
	}
}

func TestNormalizarFlexivel(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado string
	}{
		{"Fam/Grupo", "fam grupo"},
		{"EAN-13", "ean 13"},
		{"Preço (EUR)", "preco eur"},
		{"Cód. MPG", "cod mpg"},
	}

	for _, tt := range tests {
		if got := NormalizarFlexivel(tt.entrada); got != tt.esperado {
			t.Errorf("NormalizarFlexivel(%q) = %q, esperado %q", tt.entrada, got, tt.esperado)
		}
	}
}
