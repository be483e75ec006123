// Package persona maps a relationship category to the communication profile
// used for prompt construction.
package persona

// Profile describes the voice, safety posture and tone axes for one category.
type Profile struct {
	Persona     string
	SafetyRails bool
	Positive    string
	Negative    string
	AxisA       string // label for the first tone slider
	AxisB       string // label for the second tone slider
}

const (
	CategoryWork   = "Work"
	CategoryDating = "Dating"
)

// Resolve is total over all category strings: anything that is not Work or
// Dating (Friends, Family, typos, empty) gets the Witty Friend fallback.
func Resolve(category string) Profile {
	switch category {
	case CategoryWork:
		return Profile{
			Persona:     "Corporate Strategist",
			SafetyRails: true,
			Positive:    "Agreement with Action Items",
			Negative:    "Polite but Firm Refusal",
			AxisA:       "Professionalism",
			AxisB:       "Assertiveness",
		}
	case CategoryDating:
		return Profile{
			Persona:     "High-EQ Dating Coach",
			SafetyRails: false,
			Positive:    "High Enthusiasm / Flirting",
			Negative:    "Playful Disinterest / Sassy",
			AxisA:       "Interest",
			AxisB:       "Spice",
		}
	default:
		return Profile{
			Persona:     "Witty Friend",
			SafetyRails: false,
			Positive:    "Hype / Validation",
			Negative:    "Roast / Disagreement",
			AxisA:       "Warmth",
			AxisB:       "Roast",
		}
	}
}
