package engine

import (
	"fmt"

	"github.com/kuehq/kue-brain/internal/persona"
	"github.com/kuehq/kue-brain/internal/types"
)

// MockRespond is the deterministic stand-in for the live path, used when no
// API credential is configured. It echoes recognizable request fields into
// canned text so the API contract can be exercised without cost, and it
// branches on custom_input exactly the way the prompt composer does.
func MockRespond(req *types.ReplyRequest) *types.EngineResponse {
	return &types.EngineResponse{
		Analysis: types.Analysis{
			Translation:    "Mock Mode: They want attention.",
			ThreatLevel:    45,
			StrategyAdvice: "Keep it cool.",
		},
		Replies: mockReplies(req),
	}
}

func mockReplies(req *types.ReplyRequest) map[string]string {
	if req.CustomInput != "" {
		return map[string]string{
			"option_1": fmt.Sprintf("Draft 1: %s", req.CustomInput),
			"option_2": fmt.Sprintf("Draft 2: %s", req.CustomInput),
			"option_3": fmt.Sprintf("Draft 3: %s", req.CustomInput),
		}
	}

	if req.Dossier.Category == persona.CategoryWork {
		return map[string]string{
			"positive": "I will handle this immediately.",
			"neutral":  "Received, reviewing now.",
			"negative": "My bandwidth is full.",
		}
	}

	positive := "Sure thing!"
	negative := "No thanks."
	if req.HasSliders() {
		positive = fmt.Sprintf("Sure thing! (Interest: %d%%)", *req.InterestScore)
		negative = fmt.Sprintf("No thanks. (Spice: %d%%)", *req.SpiceScore)
	}

	return map[string]string{
		"positive": positive,
		"neutral":  "Maybe later.",
		"negative": negative,
	}
}
