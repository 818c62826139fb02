package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func candidateWith(cgpa float64, skillCount, experienceLen int) CandidateInfo {
	skills := make([]string, skillCount)
	for i := range skills {
		skills[i] = "skill"
	}
	return CandidateInfo{
		Name:           "Test Candidate",
		College:        "Example Institute",
		Specialization: "Finance",
		CGPA:           cgpa,
		Skills:         skills,
		Experience:     strings.Repeat("x", experienceLen),
	}
}

func TestCreateFallbackAnalysisScoreBounds(t *testing.T) {
	cases := []struct {
		cgpa       float64
		skills     int
		experience int
	}{
		{0, 0, 0},
		{5.0, 1, 10},
		{6.0, 3, 60},
		{7.5, 5, 120},
		{8.5, 8, 250},
		{10.0, 12, 500},
	}

	for _, tc := range cases {
		result := CreateFallbackAnalysis(candidateWith(tc.cgpa, tc.skills, tc.experience))

		assert.True(t, result.Success)
		assert.GreaterOrEqual(t, result.Score, 30)
		assert.LessOrEqual(t, result.Score, 85)
	}
}

func TestCreateFallbackAnalysisMaxProfile(t *testing.T) {
	// 55 + 20 (CGPA) + 10 (skills) + 8 (experience) = 93, clamped to 85.
	result := CreateFallbackAnalysis(candidateWith(9.5, 10, 300))

	assert.Equal(t, 85, result.Score)
}

func TestCreateFallbackAnalysisCGPAMonotonic(t *testing.T) {
	low := CreateFallbackAnalysis(candidateWith(6.0, 4, 80))
	high := CreateFallbackAnalysis(candidateWith(8.5, 4, 80))

	assert.Greater(t, high.Score, low.Score)
}

func TestCreateFallbackAnalysisShape(t *testing.T) {
	result := CreateFallbackAnalysis(candidateWith(7.0, 2, 40))

	assert.GreaterOrEqual(t, len(result.Strengths), 3)
	assert.LessOrEqual(t, len(result.Strengths), 5)
	assert.Len(t, result.Weaknesses, 3)
	assert.Contains(t, result.Prediction, "Finance")
	assert.Contains(t, result.Prediction, "Associate/Analyst")
	assert.Empty(t, result.Error)
}

func TestCreateFallbackAnalysisWeaknessesMentionMissingResume(t *testing.T) {
	result := CreateFallbackAnalysis(candidateWith(9.0, 8, 300))

	// A strong profile trips none of the conditional weaknesses, so the
	// padding entries fill the list.
	assert.Len(t, result.Weaknesses, 3)
	assert.Contains(t, strings.Join(result.Weaknesses, " "), "Detailed resume analysis not available")
}

func TestCreateNoResumeAnalysisScoreBounds(t *testing.T) {
	cases := []struct {
		cgpa       float64
		skills     int
		experience int
	}{
		{0, 0, 0},
		{6.0, 2, 50},
		{7.5, 4, 100},
		{8.5, 6, 160},
		{10.0, 10, 400},
	}

	for _, tc := range cases {
		result := CreateNoResumeAnalysis(candidateWith(tc.cgpa, tc.skills, tc.experience))

		assert.True(t, result.Success)
		assert.GreaterOrEqual(t, result.Score, 25)
		assert.LessOrEqual(t, result.Score, 70)
	}
}

func TestCreateNoResumeAnalysisStrongCandidate(t *testing.T) {
	// 45 + 15 (CGPA 9.0) + 5 (10 skills) + 3 (300-char experience) = 68.
	result := CreateNoResumeAnalysis(candidateWith(9.0, 10, 300))

	assert.Equal(t, 68, result.Score)
	assert.Len(t, result.Weaknesses, 3)
	assert.Contains(t, result.Weaknesses[0], "Resume not provided")
	assert.Contains(t, result.Prediction, "Entry-level Finance")
}

func TestCreateNoResumeAnalysisMoreConservativeThanFallback(t *testing.T) {
	info := candidateWith(8.0, 6, 200)

	withResume := CreateFallbackAnalysis(info)
	withoutResume := CreateNoResumeAnalysis(info)

	assert.Greater(t, withResume.Score, withoutResume.Score)
}
