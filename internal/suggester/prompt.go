package suggester

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/models"
)

const suggestPrompt = `다음 유튜브 영상 대본의 구조와 스타일을 분석하여,
이 구조를 활용하기 좋은 5가지 다른 주제를 추천해주세요.

대본:
%s

요구사항:
1. 각 주제는 구체적이고 흥미로워야 합니다
2. 실제로 영상을 만들 수 있는 현실적인 주제여야 합니다
3. 다양한 카테고리의 주제를 제안해주세요
4. 각 주제는 20자 이내로 작성해주세요`

var topicsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topics": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "5 recommended video topics based on the script structure",
		},
	},
	Required: []string{"topics"},
}

// FallbackTopics pad a suggestion list that came back short.
var FallbackTopics = [models.TopicCount]string{
	"누구나 따라 할 수 있는 아침 루틴",
	"초보자를 위한 재테크 첫걸음",
	"10분 만에 끝내는 집밥 레시피",
	"알아두면 쓸모 있는 생활 꿀팁",
	"혼자 떠나기 좋은 국내 여행지",
}

func buildPrompt(excerpt string) string {
	return fmt.Sprintf(suggestPrompt, excerpt)
}
