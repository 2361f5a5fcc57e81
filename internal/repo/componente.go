package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"precario/pkg/models"
)

// colunas pelas quais a listagem de componentes aceita ordenar; tudo o
// resto cai no default
var componenteSortable = map[string]bool{
	"referencia":        true,
	"descricao":         true,
	"familia":           true,
	"ean":               true,
	"preco_tabela":      true,
	"grupo_desconto":    true,
	"unidade":           true,
	"quantidade_minima": true,
	"peso":              true,
	"updated_at":        true,
}

// ComponenteRepository handles price-list item data access
type ComponenteRepository struct {
	db *gorm.DB
}

// NewComponenteRepository creates a new componente repository
func NewComponenteRepository(db *gorm.DB) *ComponenteRepository {
	return &ComponenteRepository{db: db}
}

// Count conta componentes, opcionalmente filtrando por marca e pesquisa
func (r *ComponenteRepository) Count(ctx context.Context, idmarca *int, pesquisa string) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&models.Componente{})
	query = aplicarFiltroComponentes(query, idmarca, pesquisa)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// List devolve uma página de componentes com filtro, pesquisa e
// ordenação por qualquer coluna permitida
func (r *ComponenteRepository) List(ctx context.Context, page, perPage int, idmarca *int, pesquisa, sortBy, sortDir string) (*models.PaginationResult[models.Componente], error) {
	query := r.db.WithContext(ctx).Model(&models.Componente{})
	query = aplicarFiltroComponentes(query, idmarca, pesquisa)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if !componenteSortable[sortBy] {
		sortBy = "updated_at"
	}
	if sortDir != "asc" {
		sortDir = "desc"
	}

	var itens []models.Componente
	offset := (page - 1) * perPage
	err := query.Order(sortBy + " " + sortDir).Offset(offset).Limit(perPage).Find(&itens).Error
	if err != nil {
		return nil, err
	}

	return &models.PaginationResult[models.Componente]{
		Data:       itens,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}

func aplicarFiltroComponentes(query *gorm.DB, idmarca *int, pesquisa string) *gorm.DB {
	if idmarca != nil {
		query = query.Where("idmarca = ?", *idmarca)
	}
	if pesquisa != "" {
		termo := "%" + pesquisa + "%"
		query = query.Where("referencia ILIKE ? OR descricao ILIKE ?", termo, termo)
	}
	return query
}

// colunas sobrescritas num upsert; a chave natural (idmarca,
// referencia) fica intacta
var componenteUpsertColumns = []string{
	"descricao", "familia", "ean", "preco_tabela", "grupo_desconto",
	"unidade", "quantidade_minima", "peso", "updated_at",
}

// BulkUpsert insere ou atualiza um lote inteiro numa só chamada,
// resolvendo conflitos pela chave natural (idmarca, referencia)
func (r *ComponenteRepository) BulkUpsert(ctx context.Context, componentes []models.Componente) error {
	if len(componentes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idmarca"}, {Name: "referencia"}},
		DoUpdates: clause.AssignmentColumns(componenteUpsertColumns),
	}).Create(&componentes).Error
}

// Upsert insere ou atualiza um único componente; usado no fallback
// linha a linha quando um lote inteiro falha
func (r *ComponenteRepository) Upsert(ctx context.Context, componente *models.Componente) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idmarca"}, {Name: "referencia"}},
		DoUpdates: clause.AssignmentColumns(componenteUpsertColumns),
	}).Create(componente).Error
}
