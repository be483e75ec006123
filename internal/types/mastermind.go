package types

// Dossier describes who the user is replying to. Category picks the persona;
// unrecognized values fall back to the friendly profile.
type Dossier struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	RoleTitle string `json:"role_title" binding:"required"`
	Archetype string `json:"archetype"`
}

// ReplyRequest is the superset request shape across all frontend revisions:
// everything beyond incoming_text and dossier is optional and the prompt
// degrades gracefully when fields are absent.
type ReplyRequest struct {
	IncomingText    string   `json:"incoming_text" binding:"required"`
	Dossier         Dossier  `json:"dossier" binding:"required"`
	InterestScore   *int     `json:"interest_score" binding:"omitempty,min=0,max=100"`
	SpiceScore      *int     `json:"spice_score" binding:"omitempty,min=0,max=100"`
	CustomInput     string   `json:"custom_input"`
	PreviousRejects []string `json:"previous_rejects"`
}

// HasSliders reports whether the request carries tone sliders.
func (r *ReplyRequest) HasSliders() bool {
	return r.InterestScore != nil && r.SpiceScore != nil
}

// Analysis is the cognitive decode of the incoming message.
type Analysis struct {
	Translation    string `json:"translation"`
	ThreatLevel    int    `json:"threat_level"`
	StrategyAdvice string `json:"strategy_advice"`
}

// EngineResponse is what the engine returns to the HTTP layer. Replies always
// holds exactly three entries: positive/neutral/negative, or option_1..3 when
// the request carried a custom instruction.
type EngineResponse struct {
	Analysis Analysis          `json:"analysis"`
	Replies  map[string]string `json:"replies"`
}
