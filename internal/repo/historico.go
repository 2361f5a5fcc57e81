package repo

import (
	"context"

	"gorm.io/gorm"

	"precario/pkg/models"
)

var historicoSortable = map[string]bool{
	"referencia_backup":   true,
	"precoatual_anterior": true,
	"valido_ate":          true,
}

// HistoricoRepository lê o histórico de preços. A tabela é populada por
// SQL fora deste sistema; aqui só há leitura.
type HistoricoRepository struct {
	db *gorm.DB
}

// NewHistoricoRepository creates a new historico repository
func NewHistoricoRepository(db *gorm.DB) *HistoricoRepository {
	return &HistoricoRepository{db: db}
}

// List devolve uma página do histórico, filtrando por marca e por
// pesquisa sobre a referência
func (r *HistoricoRepository) List(ctx context.Context, page, perPage int, idmarca *int, pesquisa, sortBy, sortDir string) (*models.PaginationResult[models.HistoricoPreco], error) {
	query := r.db.WithContext(ctx).Model(&models.HistoricoPreco{})
	if idmarca != nil {
		query = query.Where("idmarca = ?", *idmarca)
	}
	if pesquisa != "" {
		query = query.Where("referencia_backup ILIKE ?", "%"+pesquisa+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if !historicoSortable[sortBy] {
		sortBy = "valido_ate"
	}
	if sortDir != "asc" {
		sortDir = "desc"
	}

	var itens []models.HistoricoPreco
	offset := (page - 1) * perPage
	err := query.Order(sortBy + " " + sortDir).Offset(offset).Limit(perPage).Find(&itens).Error
	if err != nil {
		return nil, err
	}

	return &models.PaginationResult[models.HistoricoPreco]{
		Data:       itens,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: int((total + int64(perPage) - 1) / int64(perPage)),
	}, nil
}
