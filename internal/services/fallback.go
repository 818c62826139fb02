package services

import (
	"fmt"
	"strings"
)

// CreateFallbackAnalysis scores a candidate from structured application fields
// when a resume exists but could not be scored by the AI service. Always
// succeeds; the score is clamped to [30,85] so a heuristic result never
// competes with a strong AI assessment.
func CreateFallbackAnalysis(info CandidateInfo) *AIAnalysisResult {
	score := 55

	switch {
	case info.CGPA >= 8.5:
		score += 20
	case info.CGPA >= 7.5:
		score += 15
	case info.CGPA >= 6.5:
		score += 10
	case info.CGPA >= 6.0:
		score += 5
	}

	switch {
	case len(info.Skills) >= 8:
		score += 10
	case len(info.Skills) >= 5:
		score += 7
	case len(info.Skills) >= 3:
		score += 3
	}

	switch {
	case len(info.Experience) > 200:
		score += 8
	case len(info.Experience) > 100:
		score += 5
	case len(info.Experience) > 50:
		score += 2
	}

	score = min(max(score, 30), 85)

	var strengths []string
	var weaknesses []string

	switch {
	case info.CGPA >= 8.0:
		strengths = append(strengths, "Excellent academic performance demonstrating strong analytical capabilities")
	case info.CGPA >= 7.0:
		strengths = append(strengths, "Good academic foundation with solid performance record")
	case info.CGPA >= 6.0:
		strengths = append(strengths, "Adequate academic background meeting program requirements")
	}

	switch {
	case len(info.Skills) >= 6:
		strengths = append(strengths, "Well-rounded skill portfolio applicable to business environments")
	case len(info.Skills) >= 3:
		strengths = append(strengths, "Focused skill set relevant to chosen specialization")
	}

	strengths = append(strengths, fmt.Sprintf("Specialized knowledge in %s field", info.Specialization))

	if len(info.Experience) > 150 {
		strengths = append(strengths, "Comprehensive experience summary indicating professional engagement")
	}

	if strings.TrimSpace(info.College) != "" {
		strengths = append(strengths, fmt.Sprintf("Educational background from %s", info.College))
	}

	if len(strengths) < 3 {
		strengths = append(strengths, "Demonstrates interest in professional development through program application")
	}

	if info.CGPA < 7.0 && info.CGPA > 0 {
		weaknesses = append(weaknesses, "Academic performance indicates opportunity for stronger analytical development")
	}

	if len(info.Skills) < 4 {
		weaknesses = append(weaknesses, "Limited skill portfolio mentioned - expanding technical and soft skills would be beneficial")
	}

	if len(info.Experience) < 100 {
		weaknesses = append(weaknesses, "Experience summary could be more detailed to better showcase professional background")
	}

	weaknesses = append(weaknesses, "Detailed resume analysis not available - comprehensive evaluation requires additional documentation")

	for len(weaknesses) < 3 {
		weaknesses = append(weaknesses, "Portfolio development recommended to strengthen application profile")
	}

	return &AIAnalysisResult{
		Score:      score,
		Strengths:  strengths[:min(len(strengths), 5)],
		Weaknesses: weaknesses[:3],
		Prediction: fmt.Sprintf("%s Associate/Analyst role based on educational specialization", info.Specialization),
		AnalysisDetails: fmt.Sprintf(
			"Candidate demonstrates academic foundation in %s with CGPA of %.1f/10.0. Assessment based on available application information. Comprehensive evaluation would benefit from detailed resume review and additional documentation.",
			info.Specialization, info.CGPA,
		),
		Success: true,
	}
}

// CreateNoResumeAnalysis scores a candidate who never supplied a resume.
// Deliberately more conservative than CreateFallbackAnalysis: base 45,
// clamped to [25,70], with fixed weaknesses about the missing document.
func CreateNoResumeAnalysis(info CandidateInfo) *AIAnalysisResult {
	score := 45

	switch {
	case info.CGPA >= 8.5:
		score += 15
	case info.CGPA >= 7.5:
		score += 12
	case info.CGPA >= 6.5:
		score += 8
	case info.CGPA >= 6.0:
		score += 4
	}

	switch {
	case len(info.Skills) >= 6:
		score += 5
	case len(info.Skills) >= 3:
		score += 3
	}

	switch {
	case len(info.Experience) > 150:
		score += 3
	case len(info.Experience) > 75:
		score += 2
	}

	score = min(max(score, 25), 70)

	var strengths []string

	switch {
	case info.CGPA >= 7.5:
		strengths = append(strengths, "Strong academic performance as indicated in application")
	case info.CGPA >= 6.5:
		strengths = append(strengths, "Satisfactory academic performance meeting program requirements")
	}

	if len(info.Skills) >= 4 {
		strengths = append(strengths, "Multiple skills listed showing diverse interests")
	}

	strengths = append(strengths, fmt.Sprintf("Educational focus in %s aligns with program objectives", info.Specialization))

	if len(info.Experience) > 100 {
		strengths = append(strengths, "Provided experience summary in application form")
	}

	strengths = append(strengths, "Completed application process demonstrating program interest")

	weaknesses := []string{
		"Resume not provided - detailed evaluation of professional background not available",
		"Assessment limited to application form information only",
		"Professional experience and achievements require documentation for comprehensive review",
	}

	return &AIAnalysisResult{
		Score:      score,
		Strengths:  strengths[:min(len(strengths), 5)],
		Weaknesses: weaknesses,
		Prediction: fmt.Sprintf("Entry-level %s role based on academic specialization", info.Specialization),
		AnalysisDetails: fmt.Sprintf(
			"Assessment based solely on application form data as resume not provided. Candidate shows interest in %s field with CGPA of %.1f/10.0. Complete evaluation requires resume submission and additional documentation.",
			info.Specialization, info.CGPA,
		),
		Success: true,
	}
}
