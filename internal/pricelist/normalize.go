package pricelist

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// espaços normais, tabs, NBSP, zero-width space e BOM que aparecem em
	// cabeçalhos copiados de Excel
	espacoInvisivel = regexp.MustCompile("[\\s\\t\\n\\r\u00a0\u200b\ufeff]+")
	naoAlfanumerico = regexp.MustCompile(`[^a-z0-9]+`)
)

// LimparTexto apara o valor de uma célula e devolve nil quando o
// resultado é vazio ou o literal "nan" (pandas exporta células vazias
// assim em alguns ficheiros de fornecedor)
func LimparTexto(valor string) *string {
	s := strings.TrimSpace(valor)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	return &s
}

// ParaNumero converte o valor de uma célula para float. A vírgula é
// tratada como separador decimal, convenção fixa dos preçários em
// português, não configurável. Um valor com vírgula de milhares
// ("1,234") é interpretado como 1.234; limitação conhecida, herdada do
// formato dos ficheiros.
func ParaNumero(valor string) *float64 {
	s := strings.TrimSpace(valor)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &num
}

// Normalizar prepara um texto de cabeçalho para comparação: minúsculas,
// sem acentos, ç vira c, espaços invisíveis colapsados e pontos
// removidos (P.V.P -> pvp)
func Normalizar(texto string) string {
	s := strings.ToLower(texto)
	s = removerAcentos(s)
	s = strings.ReplaceAll(s, "ç", "c")
	s = espacoInvisivel.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(s)
}

// NormalizarFlexivel vai além de Normalizar e troca qualquer pontuação
// restante por espaço. Usada apenas nos níveis genéricos de contenção e
// prefixo, onde "Fam/Grupo" deve casar com "fam"
func NormalizarFlexivel(texto string) string {
	s := Normalizar(texto)
	s = naoAlfanumerico.ReplaceAllString(s, " ")
	return strings.TrimSpace(espacoInvisivel.ReplaceAllString(s, " "))
}

func removerAcentos(s string) string {
	decomposto := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposto))
	for _, r := range decomposto {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
