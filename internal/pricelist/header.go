package pricelist

import "strings"

// maxLinhasCabecalho limita a procura do cabeçalho; fornecedores põem
// títulos, logos e notas antes da tabela, mas nunca 50 linhas deles
const maxLinhasCabecalho = 50

// aliases da coluna de referência; "ref." normaliza para "ref"
var aliasesReferencia = []string{"referencia", "ref"}

// vocabulário usado pela heurística de pontuação quando nenhuma linha
// tem uma célula de referência explícita
var vocabularioCabecalho = []struct {
	termos []string
	peso   int
}{
	{[]string{"descricao", "designacao", "descripcion", "description"}, 20},
	{[]string{"pvp", "preco", "precio", "price", "tarifa"}, 15},
	{[]string{"ean", "gtin"}, 10},
	{[]string{"familia", "fam", "actividad"}, 10},
	{[]string{"unidade", "unidad", "unit"}, 5},
	{[]string{"quantidade", "cantidad", "qtd", "qty"}, 5},
	{[]string{"peso", "weight"}, 5},
}

// LocalizarLinhaCabecalho procura a linha de cabeçalho nas primeiras 50
// linhas da folha. A presença de uma célula de referência decide de
// imediato; sem ela, vence a linha com mais vocabulário de cabeçalho.
// Quando nada pontua, devolve a linha 0 com ok=false: aviso, não erro.
func LocalizarLinhaCabecalho(rows [][]string) (int, bool) {
	limite := len(rows)
	if limite > maxLinhasCabecalho {
		limite = maxLinhasCabecalho
	}

	melhorLinha := -1
	melhorPontuacao := 0

	for i := 0; i < limite; i++ {
		pontuacao := 0
		for _, celula := range rows[i] {
			norm := Normalizar(celula)
			if norm == "" {
				continue
			}
			if contemReferencia(norm) {
				return i, true
			}
			for _, voc := range vocabularioCabecalho {
				for _, termo := range voc.termos {
					if strings.Contains(norm, termo) {
						pontuacao += voc.peso
						break
					}
				}
			}
		}
		if pontuacao > melhorPontuacao {
			melhorPontuacao = pontuacao
			melhorLinha = i
		}
	}

	if melhorLinha >= 0 {
		return melhorLinha, true
	}
	return 0, false
}

func contemReferencia(norm string) bool {
	for _, alias := range aliasesReferencia {
		if norm == alias || strings.Contains(norm, alias) {
			return true
		}
	}
	return false
}
