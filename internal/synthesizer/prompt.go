package synthesizer

import (
	"fmt"
	"strings"

	"github.com/yunpil/youtube/internal/models"
)

const synthesisPrompt = `Based on the following analysis of a viral video structure, write a NEW YouTube script for a completely different topic.

TARGET TOPIC: %s

VIRAL ANALYSIS DATA:
- Hook Strategy: %s
- Tone: %s
- Pacing: %s
- Structure: %s

INSTRUCTIONS:
1. Write the full script in Korean.
2. Strictly follow the "Structure" identified in the analysis.
3. Mimic the sentence length and energy of the original style.
4. Include [Scene/Visual Notes] in brackets to guide editing.
5. Make the hook extremely strong.`

// StructureSeparator joins structure steps inside the prompt.
const StructureSeparator = " -> "

func buildPrompt(analysis models.StyleAnalysis, topic string) string {
	return fmt.Sprintf(synthesisPrompt,
		topic,
		analysis.HookStrategy,
		analysis.Tone,
		analysis.Pacing,
		strings.Join(analysis.StructureSteps, StructureSeparator),
	)
}
