// Package prompt assembles the system and user turns sent to the chat model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kuehq/kue-brain/internal/persona"
	"github.com/kuehq/kue-brain/internal/types"
)

// NoSamplesPlaceholder keeps the memory block non-empty when retrieval finds
// nothing; the model otherwise tends to treat a blank section as an error.
const NoSamplesPlaceholder = "(No past samples found)"

// Composed holds the two turns of a single chat call.
type Composed struct {
	System string
	User   string
}

// Compose builds the instruction pair for one request. previous_rejects is
// accepted on the wire but deliberately not consumed here.
func Compose(req *types.ReplyRequest, profile persona.Profile, samples []string) Composed {
	sliderContext := sliderContext(req, profile)

	var task string
	if req.CustomInput != "" {
		task = customTask(req.CustomInput, sliderContext)
	} else {
		task = sentimentTask(profile, sliderContext)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ROLE: %s\n", personaLine(profile))
	if sliderContext != "" {
		fmt.Fprintf(&b, "CONTEXT: %s\n", sliderContext)
	}
	b.WriteString("\nINPUT DATA:\n")
	fmt.Fprintf(&b, "- User is replying to: %s (%s)\n", req.Dossier.Name, req.Dossier.RoleTitle)
	b.WriteString("- Memory (Style Samples):\n")
	b.WriteString(styleBlock(samples))
	b.WriteString("\n\nYOUR TASK (Output JSON Only):\n\n")
	b.WriteString("1. \"analysis\": Perform cognitive analysis.\n")
	b.WriteString("   - \"translation\": What they ACTUALLY mean (Subtext).\n")
	b.WriteString("   - \"threat_level\": Integer 0-100.\n")
	b.WriteString("   - \"strategy_advice\": 1 sentence strategic tip.\n\n")
	fmt.Fprintf(&b, "2. \"replies\": %s\n", task)

	user := fmt.Sprintf("Incoming Message: %q\n\nDecode and Generate.", req.IncomingText)

	return Composed{System: b.String(), User: user}
}

func personaLine(profile persona.Profile) string {
	if profile.SafetyRails {
		return fmt.Sprintf("You are a %s. Safety Rails: ON (No emojis, no slang).", profile.Persona)
	}
	return fmt.Sprintf("You are a %s. Safety Rails: OFF.", profile.Persona)
}

// sliderContext renders the tone axes, or nothing when the request carries no
// sliders (older frontend revisions omit them entirely).
func sliderContext(req *types.ReplyRequest, profile persona.Profile) string {
	if !req.HasSliders() {
		return ""
	}
	return fmt.Sprintf("%s Level: %d%%, %s Level: %d%%",
		profile.AxisA, *req.InterestScore, profile.AxisB, *req.SpiceScore)
}

func customTask(customInput, sliderContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "USER CUSTOM REQUEST: %q\n", customInput)
	if sliderContext != "" {
		fmt.Fprintf(&b, "Apply the sliders (%s) to this request.\n", sliderContext)
	}
	b.WriteString("Generate 3 variations.\n")
	b.WriteString(`keys: ["option_1", "option_2", "option_3"]`)
	return b.String()
}

func sentimentTask(profile persona.Profile, sliderContext string) string {
	var b strings.Builder
	if sliderContext != "" {
		fmt.Fprintf(&b, "Generate 3 Distinct Options based on (%s):\n", sliderContext)
	} else {
		b.WriteString("Generate 3 Distinct Options:\n")
	}
	fmt.Fprintf(&b, "1. \"positive\": %s\n", profile.Positive)
	b.WriteString("2. \"neutral\": Safe / Buying Time\n")
	fmt.Fprintf(&b, "3. \"negative\": %s", profile.Negative)
	return b.String()
}

func styleBlock(samples []string) string {
	if len(samples) == 0 {
		return NoSamplesPlaceholder
	}
	lines := make([]string, len(samples))
	for i, s := range samples {
		lines[i] = "- " + s
	}
	return strings.Join(lines, "\n")
}
