package models

import "time"

// Marca representa um fornecedor cadastrado (tblmarca)
type Marca struct {
	IDMarca int    `gorm:"column:idmarca;primaryKey" json:"idmarca"`
	Nome    string `gorm:"column:nome;not null" json:"nome"`
}

// TableName overrides the table name
func (Marca) TableName() string { return "tblmarca" }

// Componente representa um item de preçário importado (tblcomponentes).
// A chave natural é (idmarca, referencia); importações repetidas fazem
// upsert sobre ela e nunca duplicam linhas.
type Componente struct {
	IDComponente     int64     `gorm:"column:idcomponente;primaryKey;autoIncrement" json:"idcomponente"`
	IDMarca          int       `gorm:"column:idmarca;not null;uniqueIndex:idx_componentes_marca_ref" json:"idmarca"`
	Referencia       string    `gorm:"column:referencia;not null;uniqueIndex:idx_componentes_marca_ref" json:"referencia"`
	Descricao        *string   `gorm:"column:descricao" json:"descricao"`
	Familia          *string   `gorm:"column:familia" json:"familia"`
	EAN              *string   `gorm:"column:ean" json:"ean"`
	PrecoTabela      *float64  `gorm:"column:preco_tabela" json:"preco_tabela"`
	GrupoDesconto    *string   `gorm:"column:grupo_desconto" json:"grupo_desconto"`
	Unidade          string    `gorm:"column:unidade;not null;default:UN" json:"unidade"`
	QuantidadeMinima *float64  `gorm:"column:quantidade_minima" json:"quantidade_minima"`
	Peso             *float64  `gorm:"column:peso" json:"peso"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name
func (Componente) TableName() string { return "tblcomponentes" }

// HistoricoPreco representa um snapshot de preço anterior
// (tblcomponentes_historico). A tabela é populada por SQL fora deste
// sistema; aqui ela é somente leitura.
type HistoricoPreco struct {
	IDMarca            int        `gorm:"column:idmarca;index" json:"idmarca"`
	ReferenciaBackup   string     `gorm:"column:referencia_backup" json:"referencia_backup"`
	PrecoAtualAnterior *float64   `gorm:"column:precoatual_anterior" json:"precoatual_anterior"`
	ValidoAte          *time.Time `gorm:"column:valido_ate" json:"valido_ate"`
}

// TableName overrides the table name
func (HistoricoPreco) TableName() string { return "tblcomponentes_historico" }
