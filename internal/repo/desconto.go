package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"precario/pkg/models"
)

// DescontoRepository handles discount group data access
type DescontoRepository struct {
	db *gorm.DB
}

// NewDescontoRepository creates a new desconto repository
func NewDescontoRepository(db *gorm.DB) *DescontoRepository {
	return &DescontoRepository{db: db}
}

// ListByMarca devolve os descontos de uma marca ordenados por grupo
func (r *DescontoRepository) ListByMarca(ctx context.Context, idmarca int) ([]models.Desconto, error) {
	var descontos []models.Desconto
	err := r.db.WithContext(ctx).
		Where("idmarca = ?", idmarca).
		Order("grupo_desconto ASC").
		Find(&descontos).Error
	if err != nil {
		return nil, err
	}
	return descontos, nil
}

// BulkUpsert insere ou atualiza descontos pela chave natural
// (idmarca, grupo_desconto)
func (r *DescontoRepository) BulkUpsert(ctx context.Context, descontos []models.Desconto) error {
	if len(descontos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idmarca"}, {Name: "grupo_desconto"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor_desconto", "updated_at"}),
	}).Create(&descontos).Error
}
