package analyzer

import "github.com/yunpil/youtube/internal/models"

// DefaultAnalysis is substituted when the model answer cannot be read.
func DefaultAnalysis() models.StyleAnalysis {
	return models.StyleAnalysis{
		HookStrategy:   "강력한 첫 인상으로 시청자의 관심을 끕니다",
		Pacing:         "빠른 전개로 핵심 정보를 짧은 호흡에 전달합니다",
		Tone:           "친근하고 에너지 넘치는 말투",
		StructureSteps: []string{"도입", "문제 제기", "해결책 제시", "마무리"},
		Keywords:       []string{"꿀팁", "비밀", "지금 바로", "놀라운", "필수"},
		Fallback:       true,
	}
}
