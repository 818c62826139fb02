package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// SystemInstruction reinforces professional register and the strict JSON-only
// response contract on every call.
const SystemInstruction = `You are a professional MBA recruitment consultant conducting candidate evaluations. Use only professional, respectful language. For missing information, use terms like "N/A", "Not Available", or "Not Provided". Never use informal, casual, or derogatory terms. Respond only with valid JSON format as requested.`

// BuildAnalysisPrompt creates the candidate-assessment prompt sent to the
// chat-completion API.
func (pb *PromptBuilder) BuildAnalysisPrompt(req ResumeAnalysisRequest) string {
	resumeContent := strings.TrimSpace(req.ResumeText)
	if len(resumeContent) < 50 {
		resumeContent = "Resume content not available or insufficient for detailed analysis."
	}

	return fmt.Sprintf(`You are an expert MBA recruitment consultant analyzing a candidate for an MBA internship position at YugaYatra Retail (OPC) Private Limited. Please provide a comprehensive and professional assessment.

CANDIDATE INFORMATION:
- Name: %s
- Specialization: %s
- College: %s
- CGPA: %.1f/10.0
- Key Skills: %s
- Experience Summary: %s

RESUME CONTENT:
%s

IMPORTANT INSTRUCTIONS:
1. Use only professional and respectful language in your analysis
2. For missing resume content, use terms like "N/A", "Not Available", or "Not Provided" - never informal or derogatory terms
3. Focus on available information when resume content is limited
4. Provide constructive feedback that helps the candidate improve
5. Base predictions on the candidate's stated specialization and qualifications

Please provide your analysis in the following JSON format (respond ONLY with valid JSON):

{
  "score": <number between 1-100>,
  "strengths": [
    "<specific professional strength 1>",
    "<specific professional strength 2>",
    "<specific professional strength 3>",
    "<specific professional strength 4>",
    "<specific professional strength 5>"
  ],
  "weaknesses": [
    "<constructive area for improvement 1>",
    "<constructive area for improvement 2>",
    "<constructive area for improvement 3>"
  ],
  "prediction": "<predicted best-fit role based on available information>",
  "analysisDetails": "<professional 2-3 sentence analysis of candidate's potential based on available information>"
}

SCORING CRITERIA (1-100):
- 90-100: Exceptional candidate, top 5%% - outstanding achievements, perfect fit
- 80-89: Excellent candidate, top 15%% - strong qualifications, very good fit
- 70-79: Good candidate, top 30%% - solid qualifications, good potential
- 60-69: Average candidate, meets basic requirements
- 50-59: Developing candidate with growth potential
- Below 50: Requires significant development, may not be suitable for current role

EVALUATION FOCUS:
1. Academic performance and educational background
2. Relevant experience and achievements (if resume available)
3. Skills alignment with retail/business roles
4. Leadership and project management experience
5. Communication and analytical abilities
6. Career progression potential and growth mindset

When resume content is unavailable or insufficient, focus on the candidate information provided and use professional language such as "Resume not available for detailed assessment" rather than informal terms.`,
		req.CandidateInfo.Name,
		req.CandidateInfo.Specialization,
		req.CandidateInfo.College,
		req.CandidateInfo.CGPA,
		strings.Join(req.CandidateInfo.Skills, ", "),
		req.CandidateInfo.Experience,
		resumeContent,
	)
}
