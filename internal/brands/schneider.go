package brands

// Schneider Electric, idmarca 1. Os ficheiros misturam português e
// espanhol conforme a origem da tarifa, daí a quantidade de variações.
type Schneider struct{}

func (Schneider) ID() int           { return 1 }
func (Schneider) Nome() string      { return "Schneider Electric" }
func (Schneider) SheetName() string { return "TP" }

func (Schneider) AliasExato() map[string]string {
	return map[string]string{
		// preço tem prioridade sobre qualquer coluna com "eur" no nome
		"pvp":    "preco_tabela",
		"preco":  "preco_tabela",
		"precio": "preco_tabela",

		"actividad":  "familia",
		"actividade": "familia",
		"familia":    "familia",
		"fam":        "familia",
		"family":     "familia",

		"referencia": "referencia",
		"ref":        "referencia",
		"ean-13":     "ean",
		"ean":        "ean",

		"descricao": "descricao",

		"cod mpg": "grupo_desconto",
		"mpg":     "grupo_desconto",

		"unidad":  "unidade",
		"unidade": "unidade",
		"un":      "unidade",

		"quantidade indivisible": "quantidade_minima",
		"quantidade":             "quantidade_minima",

		"peso bruto": "peso",
		"peso":       "peso",
	}
}

func (Schneider) AliasMap() map[string]string {
	return map[string]string{
		"Referência":  "referencia",
		"Ref":         "referencia",
		"Ref.":        "referencia",
		"Descrição":   "descricao",
		"Descripcion": "descricao",
		"Descripción": "descricao",
		"Actividad":   "familia",
		"Actividade":  "familia",
		"Atividade":   "familia",
		"Família":     "familia",
		"Familia":     "familia",
		"Fam":         "familia",
		"Fam.":        "familia",
		"Fam/":        "familia",
		"EAN-13":      "ean",
		"EAN":         "ean",
		"PVP":         "preco_tabela",
		"Precio":      "preco_tabela",
		"Preço":       "preco_tabela",
		"COD MPG":     "grupo_desconto",
		"Unidad":      "unidade",
		"Unidade":     "unidade",

		"Quantidade indivisible": "quantidade_minima",
		"Cantidad indivisible":   "quantidade_minima",
		"Peso Bruto":             "peso",
		"Peso":                   "peso",
	}
}
