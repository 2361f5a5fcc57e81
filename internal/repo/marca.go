package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"precario/pkg/models"
)

// MarcaRepository handles brand data access
type MarcaRepository struct {
	db *gorm.DB
}

// NewMarcaRepository creates a new marca repository
func NewMarcaRepository(db *gorm.DB) *MarcaRepository {
	return &MarcaRepository{db: db}
}

// List devolve todas as marcas ordenadas por nome
func (r *MarcaRepository) List(ctx context.Context) ([]models.Marca, error) {
	var marcas []models.Marca
	if err := r.db.WithContext(ctx).Order("nome ASC").Find(&marcas).Error; err != nil {
		return nil, err
	}
	return marcas, nil
}

// GetByID devolve uma marca pelo id
func (r *MarcaRepository) GetByID(ctx context.Context, idmarca int) (*models.Marca, error) {
	var marca models.Marca
	if err := r.db.WithContext(ctx).First(&marca, "idmarca = ?", idmarca).Error; err != nil {
		return nil, err
	}
	return &marca, nil
}

// Upsert insere ou atualiza uma marca; usado pelo seed de migração
func (r *MarcaRepository) Upsert(ctx context.Context, marca *models.Marca) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idmarca"}},
		DoUpdates: clause.AssignmentColumns([]string{"nome"}),
	}).Create(marca).Error
}
