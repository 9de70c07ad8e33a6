package models

// StyleAnalysis is the structured breakdown of what made a transcript work.
type StyleAnalysis struct {
	HookStrategy   string   `json:"hookStrategy"`
	Pacing         string   `json:"pacing"`
	Tone           string   `json:"tone"`
	StructureSteps []string `json:"structureBreakdown"`
	Keywords       []string `json:"keyKeywords"`

	// Fallback is set when default content replaced some or all of the
	// model output because it could not be parsed.
	Fallback bool `json:"fallback"`
}

// Complete reports whether every field carries content.
func (a StyleAnalysis) Complete() bool {
	return a.HookStrategy != "" &&
		a.Pacing != "" &&
		a.Tone != "" &&
		len(a.StructureSteps) > 0 &&
		len(a.Keywords) > 0
}
