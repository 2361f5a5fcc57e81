package models

import (
	"time"

	"github.com/google/uuid"
)

type ImportJobStatus string

const (
	ImportJobStatusPending    ImportJobStatus = "pending"
	ImportJobStatusProcessing ImportJobStatus = "processing"
	ImportJobStatusCompleted  ImportJobStatus = "completed"
	ImportJobStatusFailed     ImportJobStatus = "failed"
)

// ImportJob representa uma importação assíncrona de preçário de uma marca
type ImportJob struct {
	BaseModel
	IDMarca          int             `gorm:"column:idmarca;not null;index" json:"idmarca"`
	Status           ImportJobStatus `gorm:"not null;default:'pending'" json:"status"`
	FileName         string          `gorm:"not null" json:"file_name"`
	FilePath         string          `gorm:"not null" json:"-"`
	Fase             string          `gorm:"default:''" json:"fase"`
	Progresso        int             `gorm:"default:0" json:"progresso"`
	TotalRecords     int             `gorm:"default:0" json:"total_records"`
	ProcessedRecords int             `gorm:"default:0" json:"processed_records"`
	SuccessRecords   int             `gorm:"default:0" json:"success_records"`
	ErrorRecords     int             `gorm:"default:0" json:"error_records"`
	SkippedRecords   int             `gorm:"default:0" json:"skipped_records"`
	ErrorDetails     *string         `gorm:"type:jsonb" json:"error_details,omitempty"`
	ArchiveURL       *string         `json:"archive_url,omitempty"`
	StartedAt        *time.Time      `json:"started_at"`
	CompletedAt      *time.Time      `json:"completed_at"`
}

// ImportJobProgress representa o progresso de um job
type ImportJobProgress struct {
	JobID            uuid.UUID       `json:"job_id"`
	Status           ImportJobStatus `json:"status"`
	Fase             string          `json:"fase"`
	Progresso        int             `json:"progresso"`
	TotalRecords     int             `json:"total_records"`
	ProcessedRecords int             `json:"processed_records"`
	SuccessRecords   int             `json:"success_records"`
	ErrorRecords     int             `json:"error_records"`
	SkippedRecords   int             `json:"skipped_records"`
	Message          string          `json:"message"`
	ErrorDetails     []string        `json:"error_details,omitempty"`
}

// ToProgress converte para estrutura de progresso
func (job *ImportJob) ToProgress() ImportJobProgress {
	return ImportJobProgress{
		JobID:            job.ID,
		Status:           job.Status,
		Fase:             job.Fase,
		Progresso:        job.Progresso,
		TotalRecords:     job.TotalRecords,
		ProcessedRecords: job.ProcessedRecords,
		SuccessRecords:   job.SuccessRecords,
		ErrorRecords:     job.ErrorRecords,
		SkippedRecords:   job.SkippedRecords,
	}
}
