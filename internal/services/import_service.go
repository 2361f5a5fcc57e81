package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"precario/internal/brands"
	"precario/internal/pricelist"
	"precario/internal/repo"
	"precario/pkg/models"
)

// ImportService orquestra importações de preçários: recebe o ficheiro,
// cria o job e processa em background com progresso observável
type ImportService struct {
	db             *gorm.DB
	componenteRepo *repo.ComponenteRepository
	hub            *ProgressHub
	storage        *StorageService
	uploadDir      string
}

// NewImportService creates a new import service. O storage é opcional;
// sem ele os ficheiros originais não são arquivados.
func NewImportService(db *gorm.DB, componenteRepo *repo.ComponenteRepository, hub *ProgressHub, storage *StorageService) *ImportService {
	uploadDir := "uploads/imports"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Error().Err(err).Str("dir", uploadDir).Msg("falha ao criar diretório de uploads")
	}

	return &ImportService{
		db:             db,
		componenteRepo: componenteRepo,
		hub:            hub,
		storage:        storage,
		uploadDir:      uploadDir,
	}
}

// CreateImportJob guarda o ficheiro recebido, cria o job e dispara o
// processamento em background
func (s *ImportService) CreateImportJob(ctx context.Context, idmarca int, file multipart.File, header *multipart.FileHeader) (*models.ImportJob, error) {
	marca := brands.Get(idmarca)
	if marca == nil {
		return nil, fmt.Errorf("marca %d não tem importação de preçário configurada", idmarca)
	}

	fileName := fmt.Sprintf("%s_%s", uuid.New().String(), header.Filename)
	filePath := filepath.Join(s.uploadDir, fileName)

	outFile, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	job := &models.ImportJob{
		IDMarca:  idmarca,
		Status:   models.ImportJobStatusPending,
		FileName: header.Filename,
		FilePath: filePath,
		Fase:     string(pricelist.FaseLendo),
	}

	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create import job: %w", err)
	}

	go s.processImportJob(job.ID)

	return job, nil
}

// GetJobProgress devolve o progresso atual de um job
func (s *ImportService) GetJobProgress(ctx context.Context, jobID uuid.UUID) (*models.ImportJobProgress, error) {
	var job models.ImportJob
	if err := s.db.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		return nil, fmt.Errorf("job not found: %w", err)
	}

	progress := job.ToProgress()

	switch job.Status {
	case models.ImportJobStatusPending:
		progress.Message = "Aguardando processamento..."
	case models.ImportJobStatusProcessing:
		progress.Message = fmt.Sprintf("Processando %d de %d registos...", job.ProcessedRecords, job.TotalRecords)
	case models.ImportJobStatusCompleted:
		progress.Message = fmt.Sprintf("Concluído! %d gravados, %d com erro, %d ignorados",
			job.SuccessRecords, job.ErrorRecords, job.SkippedRecords)
	case models.ImportJobStatusFailed:
		progress.Message = "Falha no processamento"
	}

	if job.ErrorDetails != nil && *job.ErrorDetails != "" {
		var errorDetails []string
		if err := json.Unmarshal([]byte(*job.ErrorDetails), &errorDetails); err == nil {
			progress.ErrorDetails = errorDetails
		}
	}

	return &progress, nil
}

// ListJobs lista os jobs de importação com paginação e filtros
func (s *ImportService) ListJobs(ctx context.Context, page, limit int, status string, idmarca *int) ([]*models.ImportJob, int64, error) {
	var jobs []*models.ImportJob
	var total int64

	query := s.db.WithContext(ctx).Model(&models.ImportJob{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if idmarca != nil {
		query = query.Where("idmarca = ?", *idmarca)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao contar jobs: %w", err)
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar jobs: %w", err)
	}

	return jobs, total, nil
}

// processImportJob corre o pipeline completo de um job e regista o
// desfecho na linha do job
func (s *ImportService) processImportJob(jobID uuid.UUID) {
	ctx := context.Background()

	var job models.ImportJob
	if err := s.db.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("job de importação não encontrado")
		return
	}

	now := time.Now()
	job.Status = models.ImportJobStatusProcessing
	job.StartedAt = &now
	s.db.WithContext(ctx).Save(&job)

	mensagens, err := s.runImport(ctx, &job)

	completedAt := time.Now()
	job.CompletedAt = &completedAt

	if err != nil {
		job.Status = models.ImportJobStatusFailed
		job.Fase = string(pricelist.FaseErro)
		mensagens = append(mensagens, err.Error())
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("importação falhou")
	} else {
		job.Status = models.ImportJobStatusCompleted
		job.Fase = string(pricelist.FaseConcluido)
		job.Progresso = 100
		log.Info().
			Str("job_id", jobID.String()).
			Int("sucesso", job.SuccessRecords).
			Int("erros", job.ErrorRecords).
			Int("ignorados", job.SkippedRecords).
			Msg("importação concluída")
	}

	if len(mensagens) > 0 {
		if detalhes, jsonErr := json.Marshal(mensagens); jsonErr == nil {
			texto := string(detalhes)
			job.ErrorDetails = &texto
		}
	}

	s.db.WithContext(ctx).Save(&job)
	s.publicarProgresso(&job, ultimaMensagem(mensagens, job.Status))

	s.arquivarFicheiro(ctx, &job)
	os.Remove(job.FilePath)
}

// runImport lê o ficheiro, extrai os componentes e ingere-os em lotes,
// atualizando o job conforme o progresso chega
func (s *ImportService) runImport(ctx context.Context, job *models.ImportJob) ([]string, error) {
	marca := brands.Get(job.IDMarca)
	if marca == nil {
		return nil, fmt.Errorf("marca %d não tem importação de preçário configurada", job.IDMarca)
	}

	file, err := os.Open(job.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	onProgress := s.bridgeProgresso(ctx, job)

	resultado, err := pricelist.Processar(file, marca, onProgress)
	if err != nil {
		return nil, err
	}

	job.TotalRecords = resultado.LinhasIgnoradas + len(resultado.Componentes)
	job.SkippedRecords = resultado.LinhasIgnoradas

	ingestor := NewIngestor(s.componenteRepo)
	importResult := ingestor.Ingerir(ctx, resultado.Componentes, onProgress)

	job.ProcessedRecords = len(resultado.Componentes)
	job.SuccessRecords = importResult.Sucesso
	job.ErrorRecords = importResult.Erros

	mensagens := append(resultado.Mensagens, importResult.Mensagens...)

	if importResult.Sucesso == 0 && len(resultado.Componentes) > 0 {
		return mensagens, fmt.Errorf("nenhum registo gravado de %d extraídos", len(resultado.Componentes))
	}
	return mensagens, nil
}

// bridgeProgresso liga os eventos do pipeline à linha do job e ao hub
// de subscritores. As escritas na base seguem o ritmo dos eventos, que
// já vêm espaçados pelo pipeline.
func (s *ImportService) bridgeProgresso(ctx context.Context, job *models.ImportJob) pricelist.ProgressFunc {
	return func(status pricelist.ProcessingStatus) {
		job.Fase = string(status.Fase)
		job.Progresso = status.Progresso
		if status.Total > 0 {
			job.TotalRecords = status.Total
		}
		if status.Atual > 0 {
			job.ProcessedRecords = status.Atual
		}

		err := s.db.WithContext(ctx).Model(job).Updates(map[string]interface{}{
			"fase":              job.Fase,
			"progresso":         job.Progresso,
			"total_records":     job.TotalRecords,
			"processed_records": job.ProcessedRecords,
		}).Error
		if err != nil {
			log.Warn().Err(err).Str("job_id", job.ID.String()).Msg("falha ao gravar progresso")
		}

		s.publicarProgresso(job, status.Mensagem)
	}
}

func (s *ImportService) publicarProgresso(job *models.ImportJob, mensagem string) {
	if s.hub == nil {
		return
	}
	progress := job.ToProgress()
	progress.Message = mensagem
	s.hub.Publish(job.ID, progress)
}

// arquivarFicheiro envia o ficheiro original para S3; falhas são apenas
// registadas, o job já terminou
func (s *ImportService) arquivarFicheiro(ctx context.Context, job *models.ImportJob) {
	if s.storage == nil {
		return
	}
	url, err := s.storage.ArchiveImportFile(job.FilePath, job.ID, job.FileName)
	if err != nil {
		log.Warn().Err(err).Str("job_id", job.ID.String()).Msg("falha ao arquivar ficheiro de import")
		return
	}
	s.db.WithContext(ctx).Model(job).Update("archive_url", url)
}

func ultimaMensagem(mensagens []string, status models.ImportJobStatus) string {
	if status == models.ImportJobStatusFailed && len(mensagens) > 0 {
		return mensagens[len(mensagens)-1]
	}
	if status == models.ImportJobStatusCompleted {
		return "Importação concluída"
	}
	return ""
}
