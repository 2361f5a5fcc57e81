package pricelist

import (
	"fmt"
	"strings"

	"precario/internal/brands"
)

// Campo é um dos 9 campos canônicos para os quais cada linha importada
// é reduzida
type Campo string

const (
	CampoReferencia       Campo = "referencia"
	CampoDescricao        Campo = "descricao"
	CampoFamilia          Campo = "familia"
	CampoEAN              Campo = "ean"
	CampoPrecoTabela      Campo = "preco_tabela"
	CampoGrupoDesconto    Campo = "grupo_desconto"
	CampoUnidade          Campo = "unidade"
	CampoQuantidadeMinima Campo = "quantidade_minima"
	CampoPeso             Campo = "peso"
)

// camposOrdem fixa a ordem de resolução: a referência primeiro, porque
// é obrigatória e porque as colunas reclamadas ficam indisponíveis para
// os campos seguintes
var camposOrdem = []Campo{
	CampoReferencia, CampoDescricao, CampoPrecoTabela, CampoEAN, CampoFamilia,
	CampoGrupoDesconto, CampoUnidade, CampoQuantidadeMinima, CampoPeso,
}

// fallbacksGenericos são os padrões por campo dos níveis 3 (contenção)
// e 4 (prefixo), aplicados sobre a normalização flexível
var fallbacksGenericos = map[Campo][]string{
	CampoReferencia:       {"referencia", "ref", "codigo", "artigo"},
	CampoDescricao:        {"descricao", "designacao", "descripcion", "description"},
	CampoFamilia:          {"familia", "fam", "actividad", "category", "grupo"},
	CampoEAN:              {"ean", "gtin", "barcode"},
	CampoPrecoTabela:      {"pvp", "preco", "precio", "price", "tarifa", "eur", "valor"},
	CampoGrupoDesconto:    {"mpg", "desconto"},
	CampoUnidade:          {"unidad", "unit", "un", "emb"},
	CampoQuantidadeMinima: {"quantidade", "indivisible", "minima", "qtd"},
	CampoPeso:             {"peso", "weight"},
}

var aliasesQuantidade = []string{"quantidade", "qty", "qtd", "cantidad"}

// Mapeamento associa cada campo canônico ao índice da coluna de origem.
// Campos ausentes ficam sem entrada e rendem valores nulos na extração.
type Mapeamento map[Campo]int

type celulaCabecalho struct {
	original string
	norm     string
	flex     string
}

// matcher tenta encontrar uma coluna ainda livre para o campo; devolve
// o índice ou -1. Os matchers são tentados em ordem, parando no
// primeiro que acertar.
type matcher func(campo Campo, cfg brands.Strategy, headers []celulaCabecalho, usadas map[int]bool) int

var cascata = []matcher{
	matchAliasExato,
	matchAliasConfig,
	matchGenericoContem,
	matchGenericoPrefixo,
}

// MapearColunas resolve cada campo canônico para no máximo uma coluna
// do cabeçalho. Cada coluna só pode ser reclamada uma vez; o primeiro
// campo a acertar fica com ela. Sem coluna de referência o resultado é
// um erro fatal: nenhum registro pode ser produzido.
func MapearColunas(headerRow []string, cfg brands.Strategy) (Mapeamento, []string) {
	headers := make([]celulaCabecalho, len(headerRow))
	for i, h := range headerRow {
		headers[i] = celulaCabecalho{
			original: strings.TrimSpace(h),
			norm:     Normalizar(h),
			flex:     NormalizarFlexivel(h),
		}
	}

	mapeamento := make(Mapeamento, len(camposOrdem))
	usadas := make(map[int]bool)
	var erros []string

	for _, campo := range camposOrdem {
		coluna := -1

		// Regra incondicional da família: os fornecedores chamam a
		// coluna de "Fam.", "Fam/", "Familia", "Fam Produto"... o
		// prefixo "fam" é o único sinal estável.
		if campo == CampoFamilia {
			for i, h := range headers {
				if usadas[i] {
					continue
				}
				if strings.HasPrefix(h.norm, "fam") {
					coluna = i
					break
				}
			}
		}

		if coluna == -1 {
			for _, m := range cascata {
				coluna = m(campo, cfg, headers, usadas)
				if coluna != -1 {
					break
				}
			}
		}

		if coluna != -1 {
			mapeamento[campo] = coluna
			usadas[coluna] = true
		}
	}

	// Fallback tardio da quantidade mínima: qualquer coluna livre que
	// mencione quantidade serve, se nada mais a reclamou
	if _, ok := mapeamento[CampoQuantidadeMinima]; !ok {
		for i, h := range headers {
			if usadas[i] {
				continue
			}
			for _, alias := range aliasesQuantidade {
				if strings.Contains(h.norm, alias) {
					mapeamento[CampoQuantidadeMinima] = i
					usadas[i] = true
					break
				}
			}
			if _, ok := mapeamento[CampoQuantidadeMinima]; ok {
				break
			}
		}
	}

	if _, ok := mapeamento[CampoReferencia]; !ok {
		disponiveis := make([]string, 0, len(headers))
		for _, h := range headers {
			if h.original != "" {
				disponiveis = append(disponiveis, h.original)
			}
		}
		erros = append(erros, fmt.Sprintf(
			"coluna de referência não encontrada; cabeçalhos disponíveis: [%s]",
			strings.Join(disponiveis, ", ")))
	}

	return mapeamento, erros
}

// nível 1: sinônimos consagrados da marca, igualdade estrita
func matchAliasExato(campo Campo, cfg brands.Strategy, headers []celulaCabecalho, usadas map[int]bool) int {
	for alias, campoAlias := range cfg.AliasExato() {
		if campoAlias != string(campo) {
			continue
		}
		aliasNorm := Normalizar(alias)
		for i, h := range headers {
			if usadas[i] {
				continue
			}
			if h.norm == aliasNorm {
				return i
			}
		}
	}
	return -1
}

// nível 2: configuração da marca, igualdade primeiro, contenção depois.
// Aliases com menos de 3 caracteres só valem por igualdade; "un" dentro
// de "unitario" não é a coluna de unidade.
func matchAliasConfig(campo Campo, cfg brands.Strategy, headers []celulaCabecalho, usadas map[int]bool) int {
	for alias, campoAlias := range cfg.AliasMap() {
		if campoAlias != string(campo) {
			continue
		}
		aliasNorm := Normalizar(alias)
		if aliasNorm == "" {
			continue
		}
		for i, h := range headers {
			if usadas[i] {
				continue
			}
			if h.norm == aliasNorm {
				return i
			}
		}
		for i, h := range headers {
			if usadas[i] {
				continue
			}
			if strings.Contains(h.norm, aliasNorm) {
				if len(aliasNorm) < 3 && h.norm != aliasNorm {
					continue
				}
				return i
			}
		}
	}
	return -1
}

// nível 3: padrões genéricos por contenção, na forma flexível
func matchGenericoContem(campo Campo, cfg brands.Strategy, headers []celulaCabecalho, usadas map[int]bool) int {
	for i, h := range headers {
		if usadas[i] || h.flex == "" {
			continue
		}
		for _, padrao := range fallbacksGenericos[campo] {
			if strings.Contains(h.flex, padrao) {
				return i
			}
		}
	}
	return -1
}

// nível 4: os mesmos padrões, por prefixo
func matchGenericoPrefixo(campo Campo, cfg brands.Strategy, headers []celulaCabecalho, usadas map[int]bool) int {
	for i, h := range headers {
		if usadas[i] || h.flex == "" {
			continue
		}
		for _, padrao := range fallbacksGenericos[campo] {
			if strings.HasPrefix(h.flex, padrao) {
				return i
			}
		}
	}
	return -1
}
