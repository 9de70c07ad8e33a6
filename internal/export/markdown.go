package export

import (
	"fmt"
	"strings"

	"github.com/yunpil/youtube/internal/models"
)

const timeLayout = "2006-01-02 15:04"

// Markdown renders a result as a self-contained document: analysis first,
// then the script verbatim.
func Markdown(res *models.GenerationResult) string {
	a := res.Analysis

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", res.Topic)
	fmt.Fprintf(&sb, "_%s_\n\n", res.CreatedAt.Local().Format(timeLayout))

	sb.WriteString("## 바이럴 분석\n\n")
	fmt.Fprintf(&sb, "- **후킹 전략**: %s\n", a.HookStrategy)
	fmt.Fprintf(&sb, "- **페이싱**: %s\n", a.Pacing)
	fmt.Fprintf(&sb, "- **톤**: %s\n", a.Tone)
	fmt.Fprintf(&sb, "- **구조**: %s\n", strings.Join(a.StructureSteps, " -> "))
	fmt.Fprintf(&sb, "- **핵심 키워드**: %s\n", strings.Join(a.Keywords, ", "))
	if a.Fallback {
		sb.WriteString("\n> 분석 결과를 읽지 못해 기본 분석값이 일부 사용되었습니다.\n")
	}

	sb.WriteString("\n## 새 대본\n\n")
	sb.WriteString(strings.TrimSpace(res.Script))
	sb.WriteString("\n")
	return sb.String()
}
