package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yunpil/youtube/internal/llm"
	"github.com/yunpil/youtube/internal/orchestrator"
	"github.com/yunpil/youtube/internal/synthesizer"
)

const timeoutMessage = "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요."

// respondPipelineError maps a pipeline failure to a status and a stable code.
// The raw error goes to the log only.
func respondPipelineError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *orchestrator.ValidationError
	if errors.As(err, &verr) {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, verr.Message, verr.Field)
		return
	}

	if errors.Is(err, synthesizer.ErrEmptySynthesis) {
		respondError(c, http.StatusBadGateway, CodeEmptySynthesis, llm.UserMessage(err))
		return
	}

	kind, ok := llm.KindOf(err)
	if !ok {
		respondError(c, http.StatusInternalServerError, CodeInternalError, "알 수 없는 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
		return
	}

	switch kind {
	case llm.KindAuth:
		respondError(c, http.StatusUnauthorized, CodeAPIKeyMissing, llm.UserMessage(err))
	case llm.KindQuota:
		respondError(c, http.StatusTooManyRequests, CodeQuotaExceeded, llm.UserMessage(err))
	case llm.KindEmptyResponse:
		respondError(c, http.StatusBadGateway, CodeEmptyResponse, llm.UserMessage(err))
	default:
		if errors.Is(err, context.DeadlineExceeded) {
			respondError(c, http.StatusGatewayTimeout, CodeTimeout, timeoutMessage)
			return
		}
		respondError(c, http.StatusBadGateway, CodeModelUnavailable, llm.UserMessage(err))
	}
}
