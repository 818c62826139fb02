package models

import (
	"time"
)

type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// Application is the persisted applicant record. The record itself is owned by
// the application-submission endpoints; this subsystem reads the candidate
// columns and writes the ai_* columns.
type Application struct {
	ID             string    `gorm:"type:text;primary_key" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:text" json:"email"`
	College        string    `gorm:"type:text" json:"college"`
	Specialization string    `gorm:"type:text" json:"specialization"`
	CGPA           float64   `gorm:"type:decimal(4,2)" json:"cgpa"`
	Skills         string    `gorm:"type:text" json:"skills"` // JSON array serialized as text
	Experience     string    `gorm:"type:text" json:"experience"`
	ResumeURL      *string   `gorm:"column:resume_url;type:text" json:"resume_url,omitempty"`

	AIScore          *int           `gorm:"column:ai_score" json:"ai_score,omitempty"`
	AIStrengths      *string        `gorm:"column:ai_strengths;type:text" json:"ai_strengths,omitempty"`
	AIWeaknesses     *string        `gorm:"column:ai_weaknesses;type:text" json:"ai_weaknesses,omitempty"`
	AIPrediction     *string        `gorm:"column:ai_prediction;type:text" json:"ai_prediction,omitempty"`
	AIAnalysisStatus AnalysisStatus `gorm:"column:ai_analysis_status;not null;default:'pending'" json:"ai_analysis_status"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}
