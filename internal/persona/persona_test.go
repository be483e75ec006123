package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name            string
		category        string
		wantPersona     string
		wantSafetyRails bool
	}{
		{name: "work", category: "Work", wantPersona: "Corporate Strategist", wantSafetyRails: true},
		{name: "dating", category: "Dating", wantPersona: "High-EQ Dating Coach", wantSafetyRails: false},
		{name: "friends falls back", category: "Friends", wantPersona: "Witty Friend", wantSafetyRails: false},
		{name: "family falls back", category: "Family", wantPersona: "Witty Friend", wantSafetyRails: false},
		{name: "unknown falls back", category: "Landlord", wantPersona: "Witty Friend", wantSafetyRails: false},
		{name: "empty falls back", category: "", wantPersona: "Witty Friend", wantSafetyRails: false},
		{name: "case sensitive", category: "work", wantPersona: "Witty Friend", wantSafetyRails: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Resolve(tt.category)
			assert.Equal(t, tt.wantPersona, p.Persona)
			assert.Equal(t, tt.wantSafetyRails, p.SafetyRails)
			assert.NotEmpty(t, p.Positive)
			assert.NotEmpty(t, p.Negative)
			assert.NotEmpty(t, p.AxisA)
			assert.NotEmpty(t, p.AxisB)
		})
	}
}

func TestResolveWorkDefinitions(t *testing.T) {
	p := Resolve("Work")
	assert.Equal(t, "Agreement with Action Items", p.Positive)
	assert.Equal(t, "Polite but Firm Refusal", p.Negative)
	assert.Equal(t, "Professionalism", p.AxisA)
	assert.Equal(t, "Assertiveness", p.AxisB)
}
