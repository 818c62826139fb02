package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResumeContentCleanMatch(t *testing.T) {
	text := "Jane Doe\n" +
		"Education: MBA Finance, Example University\n" +
		"Experience: three years in investment banking covering budget planning, audit support and portfolio risk reviews.\n" +
		"Skills: financial modelling, accounting\n" +
		"Contact: email and phone on request"

	result := ValidateResumeContent(text, "Jane Doe", "Finance")

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, 100, result.MatchScore) // bonuses accumulate past 100, clamped once at the end
}

func TestValidateResumeContentIsDeterministic(t *testing.T) {
	text := "Some moderately long resume text with experience and education sections " +
		"plus budget and audit work for a finance role."

	first := ValidateResumeContent(text, "Jane Doe", "Finance")
	second := ValidateResumeContent(text, "Jane Doe", "Finance")

	assert.Equal(t, first, second)
}

func TestValidateResumeContentExtractionPlaceholder(t *testing.T) {
	text := "[PDF EXTRACTION FAILED] Resume file: resume.pdf, Size: 12.3KB. Manual review required - text extraction unsuccessful."

	result := ValidateResumeContent(text, "Jane Doe", "Finance")

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Issues[0], "PDF text extraction failed")
	// The placeholder pins confidence to 10 before the remaining checks
	// subtract further; the final clamp stops at zero.
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, 0, result.MatchScore)
	assert.GreaterOrEqual(t, len(result.Issues), 2)
}

func TestValidateResumeContentShortText(t *testing.T) {
	result := ValidateResumeContent("too short", "Jane Doe", "Finance")

	assert.False(t, result.IsValid)
	assert.NotEmpty(t, result.Issues)
	// -40 short text, -25 no keywords, -10 missing structure; name check
	// skipped because the text is under 100 characters.
	assert.Equal(t, 25, result.Confidence)
	assert.Equal(t, 30, result.MatchScore)
}

func TestValidateResumeContentWrongSpecialization(t *testing.T) {
	// 80 words of plausible resume text with structure sections but zero
	// marketing vocabulary and no trace of the applicant's name.
	text := "Education section lists coursework in general studies. Experience section covers warehouse " +
		"shift supervision and inventory counting duties. Skills section mentions forklift operation and " +
		"record keeping. " + strings.Repeat("Additional filler sentence about unrelated daily tasks. ", 8)

	result := ValidateResumeContent(text, "Priya Sharma", "Marketing")

	assert.False(t, result.IsValid)
	assert.GreaterOrEqual(t, len(result.Issues), 2)
	// -30 name missing, -25 no specialization keywords
	assert.LessOrEqual(t, result.Confidence, 45)
	// -40 name, -30 keywords
	assert.Equal(t, 30, result.MatchScore)
}

func TestValidateResumeContentNameBonusAndKeywordRatio(t *testing.T) {
	text := "Priya Sharma is a marketing graduate. Experience running a digital campaign with brand and " +
		"content work, advertising coordination and seo audits. Education and skills sections included, " +
		"with contact email and phone."

	result := ValidateResumeContent(text, "Priya Sharma", "Marketing")

	assert.True(t, result.IsValid)
	assert.Equal(t, 100, result.Confidence)
	assert.Equal(t, 100, result.MatchScore)
}

func TestValidateResumeContentUnknownSpecializationFallsBack(t *testing.T) {
	text := "Ravi Kumar resume. Education in management with leadership of a project team, strategy and " +
		"planning coordination experience. Skills section present alongside contact email and phone details."

	result := ValidateResumeContent(text, "Ravi Kumar", "Astrophysics")

	// Unknown specializations use the general management keyword list.
	assert.True(t, result.IsValid)
	for _, issue := range result.Issues {
		assert.NotContains(t, issue, "No relevant keywords")
	}
}

func TestValidateResumeContentNeverNegative(t *testing.T) {
	result := ValidateResumeContent("x", "Someone Unrelated", "Marketing")

	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.GreaterOrEqual(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 100)
}
