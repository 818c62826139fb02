package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"yugayatra/internship-portal/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByID(id string) (*models.Application, error)
	GetAnalysisStatus(id string) (models.AnalysisStatus, error)
	UpdateAnalysisStatus(id string, status models.AnalysisStatus) error
	UpdateAnalysisResult(id string, result *AnalysisUpdateData) error
}

// AnalysisUpdateData is the write-back payload for a completed analysis.
// Strengths and weaknesses are JSON arrays serialized as text.
type AnalysisUpdateData struct {
	Score      int
	Strengths  string
	Weaknesses string
	Prediction string
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var app models.Application
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

func (r *applicationRepository) GetAnalysisStatus(id string) (models.AnalysisStatus, error) {
	var app models.Application
	err := r.db.Select("ai_analysis_status").Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrApplicationNotFound
		}
		return "", fmt.Errorf("failed to get analysis status: %w", err)
	}
	return app.AIAnalysisStatus, nil
}

func (r *applicationRepository) UpdateAnalysisStatus(id string, status models.AnalysisStatus) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_analysis_status": status,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update analysis status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (r *applicationRepository) UpdateAnalysisResult(id string, data *AnalysisUpdateData) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"ai_score":           data.Score,
			"ai_strengths":       data.Strengths,
			"ai_weaknesses":      data.Weaknesses,
			"ai_prediction":      data.Prediction,
			"ai_analysis_status": models.AnalysisCompleted,
			"updated_at":         time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update analysis result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
