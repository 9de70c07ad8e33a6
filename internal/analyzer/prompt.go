package analyzer

import (
	"fmt"

	"google.golang.org/genai"
)

const systemInstruction = "You are an expert script analyst for YouTube. Analyze strictly in Korean."

const analysisPrompt = `You are a YouTube viral video expert. Analyze the following transcript of a successful video.
Identify the core elements that made it successful (Hook, Structure, Pacing, Tone).

TRANSCRIPT:
%s`

var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"hookStrategy": {
			Type:        genai.TypeString,
			Description: "Analysis of how the video grabs attention in the first 10 seconds.",
		},
		"pacing": {
			Type:        genai.TypeString,
			Description: "Description of the speed, editing rhythm, and information density.",
		},
		"tone": {
			Type:        genai.TypeString,
			Description: "The emotional tone and delivery style (e.g., energetic, mysterious, educational).",
		},
		"structureBreakdown": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A step-by-step list of the script's structural flow (e.g., Intro -> Problem -> Twist -> Solution).",
		},
		"keyKeywords": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "5 powerful keywords or phrases used to retain audience.",
		},
	},
	Required: []string{"hookStrategy", "pacing", "tone", "structureBreakdown", "keyKeywords"},
}

func buildPrompt(excerpt string) string {
	return fmt.Sprintf(analysisPrompt, excerpt)
}
