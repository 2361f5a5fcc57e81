// Package brands define como interpretar o ficheiro de preçário de cada
// marca. A marca em si vive na base de dados (tblmarca); aqui só entra o
// conhecimento de processamento: nome da folha esperada e sinônimos de
// cabeçalho conhecidos.
package brands

import "sort"

// Strategy descreve o processamento do preçário de uma marca
type Strategy interface {
	ID() int
	Nome() string
	// SheetName é o nome da folha onde está a tabela de preços. Se não
	// existir no ficheiro, o pipeline procura por similaridade e por fim
	// usa a primeira folha, com aviso.
	SheetName() string
	// AliasExato mapeia sinônimos consagrados (já normalizados) para o
	// campo canônico. Comparado por igualdade estrita, antes de tudo.
	AliasExato() map[string]string
	// AliasMap mapeia textos de cabeçalho conhecidos (como aparecem no
	// ficheiro) para o campo canônico. Comparado por igualdade
	// normalizada e depois por contenção.
	AliasMap() map[string]string
}

var registry = map[int]Strategy{
	1: Schneider{},
	2: ABB{},
	3: Hager{},
}

// Get devolve a estratégia da marca, ou nil se a marca não tem
// configuração de importação registrada
func Get(idmarca int) Strategy {
	return registry[idmarca]
}

// All devolve todas as estratégias registradas, ordenadas por id
func All() []Strategy {
	out := make([]Strategy, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
