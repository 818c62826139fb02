package services

import (
	"fmt"
	"math"
	"strings"
)

// ValidationResult measures whether extracted text plausibly is the given
// candidate's resume for the stated specialization. Confidence estimates
// extraction/content reliability; MatchScore estimates topical fit.
type ValidationResult struct {
	IsValid    bool     `json:"isValid"`
	Issues     []string `json:"issues"`
	Confidence int      `json:"confidence"`
	MatchScore int      `json:"matchScore"`
}

var specializationKeywords = map[string][]string{
	"data analytics":         {"data", "analytics", "analysis", "python", "sql", "statistics", "tableau", "excel", "machine learning", "visualization"},
	"international business": {"business", "international", "global", "trade", "export", "import", "market", "commerce", "cross-border"},
	"marketing":              {"marketing", "brand", "campaign", "advertising", "promotion", "digital", "social media", "content", "seo"},
	"finance":                {"finance", "financial", "accounting", "investment", "banking", "budget", "audit", "portfolio", "risk"},
	"operations":             {"operations", "supply", "logistics", "process", "management", "efficiency", "optimization", "lean"},
	"human resources":        {"human", "resources", "hr", "recruitment", "talent", "employee", "personnel", "payroll", "training"},
	"hr":                     {"human", "resources", "hr", "recruitment", "talent", "employee", "personnel", "payroll", "training"},
	"consulting":             {"consulting", "consultant", "advisory", "strategy", "analysis", "project", "client", "solution"},
	"it":                     {"technology", "software", "programming", "development", "computer", "system", "network", "database"},
	"general management":     {"management", "leadership", "strategy", "planning", "coordination", "team", "project"},
}

var resumeStructureKeywords = []string{"education", "experience", "skills", "contact", "email", "phone"}

// ValidateResumeContent checks extracted text against the applicant's name and
// specialization. Pure and deterministic. Confidence and match score both
// start at 100 and accumulate penalties/bonuses unclamped; clamping happens
// once at the end so borderline accumulations keep their exact values.
func ValidateResumeContent(extractedText, applicantName, specialization string) ValidationResult {
	issues := []string{}
	confidence := 100
	matchScore := 100

	textLower := strings.ToLower(extractedText)

	// Extraction-failure placeholder or suspiciously short text
	if strings.Contains(extractedText, pdfExtractionFailedMarker) {
		issues = append(issues, "PDF text extraction failed - manual review required")
		confidence = 10
		matchScore = 0
	} else if len(extractedText) < 100 {
		issues = append(issues, "Resume text is too short (possible extraction failure)")
		confidence -= 40
		matchScore -= 30
	}

	// Applicant name should appear somewhere in the resume
	var nameParts []string
	for _, part := range strings.Fields(strings.ToLower(applicantName)) {
		if len(part) > 2 {
			nameParts = append(nameParts, part)
		}
	}
	nameMatches := 0
	for _, part := range nameParts {
		if strings.Contains(textLower, part) {
			nameMatches++
		}
	}

	if len(nameParts) > 0 && nameMatches == 0 && len(extractedText) > 100 {
		issues = append(issues, fmt.Sprintf("Applicant name %q not found in resume content", applicantName))
		confidence -= 30
		matchScore -= 40
	} else if nameMatches > 0 {
		matchScore += 10
	}

	// Specialization keyword coverage
	keywords, ok := specializationKeywords[strings.ToLower(specialization)]
	if !ok {
		keywords = specializationKeywords["general management"]
	}

	keywordMatches := 0
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			keywordMatches++
		}
	}

	if len(keywords) > 0 {
		ratio := float64(keywordMatches) / float64(len(keywords))
		switch {
		case ratio == 0:
			issues = append(issues, fmt.Sprintf("No relevant keywords found for %s", specialization))
			confidence -= 25
			matchScore -= 30
		case ratio < 0.2:
			issues = append(issues, fmt.Sprintf("Few relevant keywords found for %s (%d/%d)", specialization, keywordMatches, len(keywords)))
			confidence -= 15
			matchScore -= 20
		default:
			matchScore += int(math.Round(ratio * 20))
		}
	}

	// Basic resume structure
	structureMatches := 0
	for _, keyword := range resumeStructureKeywords {
		if strings.Contains(textLower, keyword) {
			structureMatches++
		}
	}

	if structureMatches < 3 {
		issues = append(issues, "Resume appears to be missing standard sections (education, experience, skills)")
		confidence -= 10
		matchScore -= 10
	}

	return ValidationResult{
		IsValid:    len(issues) == 0 && confidence > 50,
		Issues:     issues,
		Confidence: max(0, confidence),
		MatchScore: max(0, min(100, matchScore)),
	}
}
