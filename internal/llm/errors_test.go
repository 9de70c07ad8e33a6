package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yunpil/youtube/internal/credential"
)

func TestWrapKeepsKind(t *testing.T) {
	inner := classify(errors.New("quota exceeded for today"))
	wrapped := fmt.Errorf("suggest topics: %w", Wrap(inner, "주제 추천을 생성하지 못했습니다."))

	assert.ErrorIs(t, wrapped, ErrQuota)
	assert.NotErrorIs(t, wrapped, ErrTransport)
	assert.Equal(t, "주제 추천을 생성하지 못했습니다.", UserMessage(wrapped))

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindQuota, kind)
}

func TestWrapUntypedIsTransport(t *testing.T) {
	err := Wrap(errors.New("boom"), "실패")
	assert.ErrorIs(t, err, ErrTransport)
	assert.Nil(t, Wrap(nil, "unused"))
}

func TestUserMessageDefaults(t *testing.T) {
	assert.Equal(t, ErrTransport.Message, UserMessage(errors.New("plain")))
}

func TestValidateCredential(t *testing.T) {
	err := ValidateCredential(credential.Placeholder)
	assert.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, credential.ErrPlaceholder)

	assert.NoError(t, ValidateCredential(testKey))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "quota", KindQuota.String())
	assert.Equal(t, "empty_response", KindEmptyResponse.String())
	assert.Equal(t, "transport", KindTransport.String())
}
