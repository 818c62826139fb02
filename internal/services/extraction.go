package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ExtractedText is the best-effort output of a single extraction attempt.
// Success reports whether the text is usable for AI analysis; a degraded PDF
// extraction still carries a diagnostic placeholder in Text.
type ExtractedText struct {
	Text      string
	Success   bool
	Error     string
	WordCount int
}

const pdfExtractionFailedMarker = "[PDF EXTRACTION FAILED]"

// minUsableChars is the threshold below which a PDF extraction method is
// considered to have produced nothing worth analyzing.
const minUsableChars = 50

type TextExtractor interface {
	ExtractTextFromFile(filePath string) ExtractedText
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractTextFromFile dispatches on file extension.
func (t *textExtractor) ExtractTextFromFile(filePath string) ExtractedText {
	if _, err := os.Stat(filePath); err != nil {
		return ExtractedText{
			Success: false,
			Error:   "File not found",
		}
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return t.extractFromPDF(filePath)
	case ".docx":
		return t.extractFromDOCX(filePath)
	case ".doc":
		return t.extractFromDOC(filePath)
	default:
		return ExtractedText{
			Success: false,
			Error:   fmt.Sprintf("Unsupported file format: %s", strings.ToLower(filepath.Ext(filePath))),
		}
	}
}

// extractFromPDF tries the structured text layer first, then a raw scan of the
// content streams, and finally synthesizes a diagnostic placeholder so that
// downstream stages always have text to route on.
func (t *textExtractor) extractFromPDF(filePath string) ExtractedText {
	var lastError string

	// Method 1: structured text layer
	text, err := extractPDFTextLayer(filePath)
	if err != nil {
		lastError = fmt.Sprintf("pdf text layer failed: %v", err)
	} else if len(text) > minUsableChars {
		return ExtractedText{
			Text:      text,
			Success:   true,
			WordCount: len(strings.Fields(text)),
		}
	} else {
		lastError = fmt.Sprintf("pdf text layer extracted only %d characters", len(text))
	}

	// Method 2: raw scan of text-showing operators in the content streams
	rawText, err := extractPDFRawText(filePath)
	if err != nil {
		lastError += fmt.Sprintf(" | Raw extraction failed: %v", err)
	} else if len(rawText) > minUsableChars {
		return ExtractedText{
			Text:      rawText,
			Success:   true,
			WordCount: len(strings.Fields(rawText)),
		}
	} else {
		lastError += fmt.Sprintf(" | Raw extraction: %d characters", len(rawText))
	}

	// Method 3: diagnostic placeholder with file info
	stats, err := os.Stat(filePath)
	if err != nil {
		return ExtractedText{
			Success: false,
			Error:   fmt.Sprintf("Complete PDF extraction failure: %s", lastError),
		}
	}

	fallbackText := fmt.Sprintf(
		"%s Resume file: %s, Size: %.1fKB. Manual review required - text extraction unsuccessful.",
		pdfExtractionFailedMarker, filepath.Base(filePath), float64(stats.Size())/1024,
	)

	return ExtractedText{
		Text:      fallbackText,
		Success:   false,
		Error:     lastError,
		WordCount: len(strings.Fields(fallbackText)),
	}
}

func extractPDFTextLayer(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Keep going; partial text from other pages is still useful.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

// Text-showing operator patterns in PDF content streams.
var (
	pdfTextShowPattern  = regexp.MustCompile(`\(([^)]+)\)\s*Tj`)
	pdfTextArrayPattern = regexp.MustCompile(`\[([^\]]+)\]\s*TJ`)
	pdfTextBlockPattern = regexp.MustCompile(`(?s)BT\s*(.*?)\s*ET`)

	pdfOperatorSyntax  = regexp.MustCompile(`\\[nrt()]|/[A-Za-z0-9]+|-?\d+(\.\d+)?|Tf|Td|TD|Tm|Tj|TJ|BT|ET`)
	pdfControlChars    = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	whitespaceRunRegex = regexp.MustCompile(`\s+`)
)

func extractPDFRawText(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	var rawText strings.Builder
	patterns := []*regexp.Regexp{pdfTextShowPattern, pdfTextArrayPattern, pdfTextBlockPattern}

	for _, pattern := range patterns {
		matches := pattern.FindAllSubmatch(content, -1)
		for _, match := range matches {
			cleaned := string(match[1])
			cleaned = pdfOperatorSyntax.ReplaceAllString(cleaned, " ")
			cleaned = pdfControlChars.ReplaceAllString(cleaned, " ")
			cleaned = strings.TrimSpace(whitespaceRunRegex.ReplaceAllString(cleaned, " "))
			if len(cleaned) > 3 {
				rawText.WriteString(cleaned)
				rawText.WriteString(" ")
			}
		}
	}

	return strings.TrimSpace(rawText.String()), nil
}

func (t *textExtractor) extractFromDOCX(filePath string) ExtractedText {
	res, err := docconv.ConvertPath(filePath)
	if err != nil {
		return ExtractedText{
			Success: false,
			Error:   err.Error(),
		}
	}

	text := strings.TrimSpace(res.Body)
	return ExtractedText{
		Text:      text,
		Success:   true,
		WordCount: len(strings.Fields(text)),
	}
}

// Legacy binary DOC is unsupported by design.
func (t *textExtractor) extractFromDOC(_ string) ExtractedText {
	return ExtractedText{
		Success: false,
		Error:   "DOC files are not fully supported. Please convert to DOCX or PDF format.",
	}
}

var (
	newlineRunRegex   = regexp.MustCompile(`\n+`)
	specialCharsRegex = regexp.MustCompile(`[^\w\s\n.,;:()!?-]`)
)

// PreprocessTextForAI collapses whitespace runs and strips characters outside
// basic punctuation before the text is embedded in a prompt.
func PreprocessTextForAI(text string) string {
	text = whitespaceRunRegex.ReplaceAllString(text, " ")
	text = newlineRunRegex.ReplaceAllString(text, "\n")
	text = specialCharsRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

const minAnalysisWordCount = 50

var resumeIndicatorKeywords = []string{
	"experience", "education", "skills", "work", "job", "position",
	"university", "degree", "bachelor", "master", "project", "internship",
}

// ValidateTextForAnalysis rejects text too short or too unlike a resume to be
// worth an AI call.
func ValidateTextForAnalysis(text string) (bool, string) {
	wordCount := len(strings.Fields(text))
	if wordCount < minAnalysisWordCount {
		return false, fmt.Sprintf(
			"Resume text too short (%d words). Minimum %d words required for analysis.",
			wordCount, minAnalysisWordCount,
		)
	}

	lowerText := strings.ToLower(text)
	found := 0
	for _, keyword := range resumeIndicatorKeywords {
		if strings.Contains(lowerText, keyword) {
			found++
		}
	}

	if found < 3 {
		return false, "Text does not appear to be a resume. Please ensure you uploaded the correct file."
	}

	return true, ""
}
