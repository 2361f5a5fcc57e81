package models

// ImportResult agrega o resultado de uma importação de preçário
type ImportResult struct {
	Sucesso   int      `json:"sucesso"`
	Erros     int      `json:"erros"`
	Mensagens []string `json:"mensagens"`
}

// DescontoImportRequest representa descontos colados da área de
// transferência (linhas separadas por \n, colunas por tab)
type DescontoImportRequest struct {
	IDMarca int    `json:"idmarca" validate:"required,gt=0"`
	Texto   string `json:"texto" validate:"required"`
}

// DescontoImportResult representa o resultado da importação de descontos
type DescontoImportResult struct {
	Total     int `json:"total"`
	Ignorados int `json:"ignorados"`
}
