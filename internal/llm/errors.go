package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/yunpil/youtube/internal/credential"
)

// Kind groups failures by what the caller can do about them.
type Kind int

const (
	KindTransport Kind = iota
	KindAuth
	KindQuota
	KindEmptyResponse
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindQuota:
		return "quota"
	case KindEmptyResponse:
		return "empty_response"
	default:
		return "transport"
	}
}

// Error carries a Kind through every wrapping layer. Message is safe to show
// to the end user.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

var (
	ErrAuth          = &Error{Kind: KindAuth, Message: "API 키를 먼저 입력해주세요. 우측 상단의 \"API 키 입력\" 버튼을 클릭하세요."}
	ErrQuota         = &Error{Kind: KindQuota, Message: "API 사용량 한도를 초과했습니다. 잠시 후 다시 시도해주세요."}
	ErrTransport     = &Error{Kind: KindTransport, Message: "AI 서버와 통신하지 못했습니다. 잠시 후 다시 시도해주세요."}
	ErrEmptyResponse = &Error{Kind: KindEmptyResponse, Message: "AI가 빈 응답을 반환했습니다."}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrQuota) holds
// regardless of the message attached on the way up.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Wrap attaches a user-facing message while keeping the kind of err.
// Errors that carry no kind are treated as transport failures.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	kind := KindTransport
	var e *Error
	if errors.As(err, &e) {
		kind = e.Kind
	}
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err and whether it carried one at all.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindTransport, false
}

// UserMessage returns the outermost user-facing message in err's chain.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ErrTransport.Message
}

// ValidateCredential runs the local format check and reports failures as auth errors.
func ValidateCredential(c credential.Credential) error {
	if err := c.Validate(); err != nil {
		return &Error{Kind: KindAuth, Message: ErrAuth.Message, Err: err}
	}
	return nil
}

// classify maps a failed generateContent call onto a Kind.
func classify(err error) error {
	kind := KindTransport

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
	case errors.As(err, &apiErr):
		kind = kindFromAPIError(apiErr)
	case errors.As(err, &apiErrPtr):
		kind = kindFromAPIError(*apiErrPtr)
	case isQuotaMessage(err.Error()):
		kind = KindQuota
	}

	msg := ErrTransport.Message
	if kind == KindQuota {
		msg = ErrQuota.Message
	}
	return &Error{Kind: kind, Message: msg, Err: err}
}

// Remote auth rejections stay transport failures: the key already passed
// the local check, so the user should retry or replace it, not be told to
// enter one.
func kindFromAPIError(e genai.APIError) Kind {
	if e.Code == 429 || e.Status == "RESOURCE_EXHAUSTED" || isQuotaMessage(e.Message) {
		return KindQuota
	}
	return KindTransport
}

func isQuotaMessage(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "quota") ||
		strings.Contains(lower, "resource_exhausted") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "exceeded")
}
