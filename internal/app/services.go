package app

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"precario/internal/repo"
	"precario/internal/services"
)

// Services holds all application services
type Services struct {
	DB              *gorm.DB
	ComponenteRepo  *repo.ComponenteRepository
	DescontoRepo    *repo.DescontoRepository
	HistoricoRepo   *repo.HistoricoRepository
	MarcaRepo       *repo.MarcaRepository
	ImportService   *services.ImportService
	DescontoService *services.DescontoService
	StorageService  *services.StorageService
	ProgressHub     *services.ProgressHub
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	componenteRepo := repo.NewComponenteRepository(db)
	descontoRepo := repo.NewDescontoRepository(db)
	historicoRepo := repo.NewHistoricoRepository(db)
	marcaRepo := repo.NewMarcaRepository(db)

	progressHub := services.NewProgressHub()

	// arquivo S3 é opcional; sem configuração os imports seguem na mesma
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("storage S3 não configurado, ficheiros de import não serão arquivados")
		storageService = nil
	}

	importService := services.NewImportService(db, componenteRepo, progressHub, storageService)
	descontoService := services.NewDescontoService(descontoRepo)

	return &Services{
		DB:              db,
		ComponenteRepo:  componenteRepo,
		DescontoRepo:    descontoRepo,
		HistoricoRepo:   historicoRepo,
		MarcaRepo:       marcaRepo,
		ImportService:   importService,
		DescontoService: descontoService,
		StorageService:  storageService,
		ProgressHub:     progressHub,
	}
}
