package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"yugayatra/internship-portal/internal/config"
)

type CandidateInfo struct {
	Name           string   `json:"name"`
	College        string   `json:"college"`
	Specialization string   `json:"specialization"`
	CGPA           float64  `json:"cgpa"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
}

type ResumeAnalysisRequest struct {
	ResumeText    string
	CandidateInfo CandidateInfo
}

// AIAnalysisResult is the unit persisted to the application record. Success
// reports whether the result is authoritative rather than an error
// placeholder; Error carries the diagnostic when it is not.
type AIAnalysisResult struct {
	Score           int               `json:"score"`
	Strengths       []string          `json:"strengths"`
	Weaknesses      []string          `json:"weaknesses"`
	Prediction      string            `json:"prediction"`
	AnalysisDetails string            `json:"analysisDetails"`
	Success         bool              `json:"success"`
	Error           string            `json:"error,omitempty"`
	Validation      *ValidationResult `json:"validation,omitempty"`
}

type GrokService interface {
	AnalyzeResume(ctx context.Context, req ResumeAnalysisRequest) (*AIAnalysisResult, error)
}

type grokService struct {
	cfg           config.GrokConfig
	client        *http.Client
	promptBuilder *PromptBuilder
}

func NewGrokService(cfg config.GrokConfig) GrokService {
	return &grokService{
		cfg:           cfg,
		client:        &http.Client{Timeout: cfg.Timeout},
		promptBuilder: NewPromptBuilder(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// grokAnalysisPayload is the raw shape expected from the model before
// structural validation.
type grokAnalysisPayload struct {
	Score           json.Number `json:"score"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	Prediction      string      `json:"prediction"`
	AnalysisDetails string      `json:"analysisDetails"`
}

// AnalyzeResume scores resume text against candidate info via the external
// chat-completion API. A returned error is the explicit fall-back signal for
// the orchestrator; no partial results accompany it.
func (g *grokService) AnalyzeResume(ctx context.Context, req ResumeAnalysisRequest) (*AIAnalysisResult, error) {
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, errors.New("resume text is required for analysis")
	}

	if ok, reason := ValidateTextForAnalysis(req.ResumeText); !ok {
		return nil, errors.New(reason)
	}

	req.ResumeText = PreprocessTextForAI(req.ResumeText)

	prompt := g.promptBuilder.BuildAnalysisPrompt(req)

	content, err := g.callChatCompletion(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload grokAnalysisPayload
	if err := json.Unmarshal([]byte(extractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON response from AI: %w", err)
	}

	result, err := validateAIResponse(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid response format from AI service: %w", err)
	}

	return result, nil
}

func (g *grokService) callChatCompletion(ctx context.Context, prompt string) (string, error) {
	if g.cfg.APIKey == "" {
		return "", errors.New("GROK_API_KEY environment variable is not set")
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1500,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("no response from Grok API - network issue: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "Unknown error"
		if completion.Error != nil && completion.Error.Message != "" {
			msg = completion.Error.Message
		}
		return "", fmt.Errorf("Grok API error: %d - %s", resp.StatusCode, msg)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("invalid response structure from Grok API")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// validateAIResponse enforces the response schema strictly; no partial repair
// is attempted.
func validateAIResponse(payload grokAnalysisPayload) (*AIAnalysisResult, error) {
	score, err := payload.Score.Float64()
	if err != nil {
		return nil, fmt.Errorf("score is not numeric: %w", err)
	}
	if score < 1 || score > 100 {
		return nil, fmt.Errorf("score %v out of range [1,100]", score)
	}

	strengths, err := trimmedNonEmpty(payload.Strengths)
	if err != nil {
		return nil, fmt.Errorf("strengths: %w", err)
	}

	weaknesses, err := trimmedNonEmpty(payload.Weaknesses)
	if err != nil {
		return nil, fmt.Errorf("weaknesses: %w", err)
	}

	prediction := strings.TrimSpace(payload.Prediction)
	analysisDetails := strings.TrimSpace(payload.AnalysisDetails)
	if prediction == "" || analysisDetails == "" {
		return nil, errors.New("prediction and analysisDetails must be non-empty")
	}

	return &AIAnalysisResult{
		Score:           int(math.Round(score)),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Prediction:      prediction,
		AnalysisDetails: analysisDetails,
		Success:         true,
	}, nil
}

func trimmedNonEmpty(values []string) ([]string, error) {
	if len(values) == 0 {
		return nil, errors.New("must be a non-empty array")
	}

	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, errors.New("contains an empty entry")
		}
		trimmed = append(trimmed, v)
	}
	return trimmed, nil
}

// extractJSON pulls the JSON object out of a response that may be wrapped in
// markdown fences.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
