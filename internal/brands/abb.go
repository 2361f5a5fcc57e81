package brands

// ABB, idmarca 2. Tarifa em português com cabeçalhos relativamente
// estáveis; a folha de preços chama-se "Preços" nas tarifas recentes.
type ABB struct{}

func (ABB) ID() int           { return 2 }
func (ABB) Nome() string      { return "ABB" }
func (ABB) SheetName() string { return "Preços" }

func (ABB) AliasExato() map[string]string {
	return map[string]string{
		"codigo":     "referencia",
		"referencia": "referencia",
		"ref":        "referencia",

		"designacao": "descricao",
		"descricao":  "descricao",

		"pvp":   "preco_tabela",
		"preco": "preco_tabela",

		"ean": "ean",

		"grupo desconto": "grupo_desconto",
		"gd":             "grupo_desconto",

		"unidade embalagem": "unidade",
		"emb":               "unidade",

		"peso": "peso",
	}
}

func (ABB) AliasMap() map[string]string {
	return map[string]string{
		"Código":            "referencia",
		"Código ABB":        "referencia",
		"Referência":        "referencia",
		"Designação":        "descricao",
		"Descrição":         "descricao",
		"PVP (€)":           "preco_tabela",
		"Preço Tabela":      "preco_tabela",
		"EAN":               "ean",
		"Família":           "familia",
		"Grupo de Desconto": "grupo_desconto",
		"GD":                "grupo_desconto",
		"Emb.":              "unidade",
		"Qt. Mínima":        "quantidade_minima",
		"Peso (kg)":         "peso",
	}
}
