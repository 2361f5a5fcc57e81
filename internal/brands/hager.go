package brands

// Hager, idmarca 3. A tarifa vem numa folha "Tarifa" com cabeçalhos em
// português e a coluna de quantidade como "Qtd. Emb.".
type Hager struct{}

func (Hager) ID() int           { return 3 }
func (Hager) Nome() string      { return "Hager" }
func (Hager) SheetName() string { return "Tarifa" }

func (Hager) AliasExato() map[string]string {
	return map[string]string{
		"referencia": "referencia",
		"ref":        "referencia",
		"artigo":     "referencia",

		"designacao": "descricao",
		"descricao":  "descricao",

		"pvp":    "preco_tabela",
		"tarifa": "preco_tabela",

		"ean":     "ean",
		"familia": "familia",

		"grupo": "grupo_desconto",

		"un":        "unidade",
		"qtd emb":   "quantidade_minima",
		"peso unit": "peso",
	}
}

func (Hager) AliasMap() map[string]string {
	return map[string]string{
		"Referência": "referencia",
		"Artigo":     "referencia",
		"Designação": "descricao",
		"PVP":        "preco_tabela",
		"Tarifa":     "preco_tabela",
		"EAN":        "ean",
		"Família":    "familia",
		"Grupo":      "grupo_desconto",
		"Un.":        "unidade",
		"Qtd. Emb.":  "quantidade_minima",
		"Peso Unit.": "peso",
	}
}
