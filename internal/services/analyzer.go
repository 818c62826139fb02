package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
)

// AnalyzerService sequences extraction, content validation, scoring strategy
// selection and confidence-based score adjustment. Every branch returns a
// usable result; nothing escapes to the caller as an error.
type AnalyzerService interface {
	AnalyzeResumeFromFile(ctx context.Context, filePath string, info CandidateInfo) *AIAnalysisResult
}

type analyzerService struct {
	extractor TextExtractor
	grok      GrokService
}

func NewAnalyzerService(extractor TextExtractor, grok GrokService) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		grok:      grok,
	}
}

func (a *analyzerService) AnalyzeResumeFromFile(ctx context.Context, filePath string, info CandidateInfo) *AIAnalysisResult {
	extraction := a.extractor.ExtractTextFromFile(filePath)

	if !extraction.Success || extraction.Text == "" {
		log.Printf("❌ Text extraction failed for %s: %s\n", info.Name, extraction.Error)

		// Missing-file detection is deliberately substring-based on the
		// extraction error; a corrupt-but-present file must NOT land here.
		errLower := strings.ToLower(extraction.Error)
		isFileNotFound := strings.Contains(extraction.Error, "File not found") ||
			strings.Contains(errLower, "not found") ||
			strings.Contains(extraction.Error, "ENOENT")

		if isFileNotFound {
			log.Printf("📄 No resume file available for %s, using no-resume analysis\n", info.Name)
			result := CreateNoResumeAnalysis(info)
			result.Validation = &ValidationResult{
				IsValid:    false,
				Issues:     []string{"Resume file not available"},
				Confidence: 0,
				MatchScore: 0,
			}
			result.Error = "Resume not provided - analysis based on application form data only"
			return result
		}

		result := CreateFallbackAnalysis(info)
		result.Validation = &ValidationResult{
			IsValid:    false,
			Issues:     []string{"Resume text extraction failed"},
			Confidence: 10,
			MatchScore: 0,
		}
		result.Error = extraction.Error
		if result.Error == "" {
			result.Error = "Failed to extract text from resume file"
		}
		return result
	}

	validation := ValidateResumeContent(extraction.Text, info.Name, info.Specialization)
	log.Printf("🔍 Validation for %s: Valid=%t, Confidence=%d%%, Match=%d%%\n",
		info.Name, validation.IsValid, validation.Confidence, validation.MatchScore)
	if len(validation.Issues) > 0 {
		log.Printf("⚠️  Issues found: %s\n", strings.Join(validation.Issues, ", "))
	}

	aiResult, err := a.grok.AnalyzeResume(ctx, ResumeAnalysisRequest{
		ResumeText:    extraction.Text,
		CandidateInfo: info,
	})
	if err != nil {
		log.Printf("🔄 AI analysis failed for %s: %v\n", info.Name, err)
		aiResult = &AIAnalysisResult{Success: false, Error: err.Error()}
	} else if aiResult.Success && validation.Confidence < 70 {
		adjusted := int(math.Round(float64(aiResult.Score) * float64(validation.Confidence) / 100))
		log.Printf("📉 Adjusted AI score from %d to %d based on validation confidence\n", aiResult.Score, adjusted)
		aiResult.Score = adjusted
	}

	if !aiResult.Success || validation.Confidence < 30 {
		cause := "AI processing issues"
		if aiResult.Success {
			cause = "resume content issues"
		}

		fallback := CreateFallbackAnalysis(info)
		fallback.Validation = &validation
		fallback.AnalysisDetails = fmt.Sprintf("Fallback analysis used due to: %s. %s. %s",
			cause, strings.Join(validation.Issues, ", "), fallback.AnalysisDetails)
		return fallback
	}

	aiResult.Validation = &validation
	return aiResult
}
