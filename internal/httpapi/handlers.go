package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/export"
	"github.com/yunpil/youtube/internal/models"
)

const (
	mimeMarkdown = "text/markdown; charset=utf-8"
	mimeDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type credentialRequest struct {
	APIKey string `json:"apiKey"`
}

type credentialStatus struct {
	Configured bool   `json:"configured"`
	Masked     string `json:"masked,omitempty"`
}

type topicsRequest struct {
	Transcript string `json:"transcript"`
}

type topicsResponse struct {
	Topics models.TopicList `json:"topics"`
}

type scriptRequest struct {
	Transcript string `json:"transcript"`
	Topic      string `json:"topic"`
}

// credentialFor prefers a per-request key over the session one.
func (h *handler) credentialFor(c *gin.Context) credential.Credential {
	if key := strings.TrimSpace(c.GetHeader(HeaderAPIKey)); key != "" {
		return credential.Credential(key)
	}
	return h.credentials.Get()
}

func (h *handler) status() credentialStatus {
	cur := h.credentials.Get()
	if !cur.Configured() {
		return credentialStatus{}
	}
	return credentialStatus{Configured: true, Masked: cur.Masked()}
}

func (h *handler) getCredential(c *gin.Context) {
	respondOK(c, h.status())
}

func (h *handler) putCredential(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}

	cred := credential.Credential(strings.TrimSpace(req.APIKey))
	if err := cred.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidAPIKey, "올바른 Gemini API 키를 입력해주세요.", err.Error())
		return
	}
	if err := h.credentials.Set(string(cred)); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, CodeInternalError, "API 키를 저장하지 못했습니다.")
		return
	}
	respondOK(c, h.status())
}

func (h *handler) deleteCredential(c *gin.Context) {
	if err := h.credentials.Clear(); err != nil {
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, CodeInternalError, "API 키를 삭제하지 못했습니다.")
		return
	}
	respondOK(c, h.status())
}

func (h *handler) loadingMessages(c *gin.Context) {
	respondOK(c, gin.H{"messages": models.LoadingMessages})
}

func (h *handler) suggestTopics(c *gin.Context) {
	var req topicsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}

	topics, err := h.orchestrator.SuggestTopics(c.Request.Context(), req.Transcript, h.credentialFor(c))
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	respondOK(c, topicsResponse{Topics: topics})
}

func (h *handler) generateScript(c *gin.Context) {
	var req scriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}

	result, err := h.orchestrator.Generate(c.Request.Context(), req.Transcript, req.Topic, h.credentialFor(c))
	if err != nil {
		respondPipelineError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *handler) exportScript(c *gin.Context) {
	var res models.GenerationResult
	if err := c.ShouldBindJSON(&res); err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "요청 형식이 올바르지 않습니다.", err.Error())
		return
	}
	if strings.TrimSpace(res.Script) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "내보낼 대본이 없습니다.", "newScript")
		return
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}

	switch format := strings.ToLower(c.DefaultQuery("format", "md")); format {
	case "md", "markdown":
		attachment(c, export.Filename(res.Topic, "md"), mimeMarkdown, []byte(export.Markdown(&res)))
	case "docx":
		data, err := export.DocxBytes(&res)
		if err != nil {
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, CodeExportFailed, "문서를 만들지 못했습니다.")
			return
		}
		attachment(c, export.Filename(res.Topic, "docx"), mimeDocx, data)
	default:
		respondError(c, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("지원하지 않는 형식입니다: %s", format))
	}
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="script%s"; filename*=UTF-8''%s`,
		filenameExt(filename), url.PathEscape(filename)))
	c.Data(http.StatusOK, contentType, data)
}

func filenameExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

