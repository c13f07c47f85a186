package gemini

import (
	"google.golang.org/genai"

	"github.com/vmdantas/mail-triage-go/internal/metrics"
)

func extractUsage(response *genai.GenerateContentResponse) metrics.Usage {
	if response == nil || response.UsageMetadata == nil {
		return metrics.Usage{}
	}
	usage := response.UsageMetadata
	return metrics.Usage{
		InputTokens:  int(usage.PromptTokenCount),
		OutputTokens: int(usage.CandidatesTokenCount) + int(usage.ThoughtsTokenCount),
		TotalTokens:  int(usage.TotalTokenCount),
	}
}
