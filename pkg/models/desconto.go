package models

import "time"

// Desconto representa o desconto de um grupo de uma marca (tbldescontos).
// Chave natural: (idmarca, grupo_desconto).
type Desconto struct {
	IDDesconto    int64     `gorm:"column:iddesconto;primaryKey;autoIncrement" json:"iddesconto"`
	IDMarca       int       `gorm:"column:idmarca;not null;uniqueIndex:idx_descontos_marca_grupo" json:"idmarca"`
	GrupoDesconto string    `gorm:"column:grupo_desconto;not null;uniqueIndex:idx_descontos_marca_grupo" json:"grupo_desconto"`
	ValorDesconto float64   `gorm:"column:valor_desconto;not null" json:"valor_desconto"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name
func (Desconto) TableName() string { return "tbldescontos" }

// NormalizarPercentual corrige percentuais colados como fração decimal:
// 0.71 significa 71%, não 0.71%. Qualquer valor em (0, 1] é multiplicado
// por 100; zero fica zero e valores acima de 1 passam inalterados.
// Importação e exibição passam ambas por aqui.
func NormalizarPercentual(valor float64) float64 {
	if valor > 0 && valor <= 1 {
		return valor * 100
	}
	return valor
}
