package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yunpil/youtube/internal/credential"
	"github.com/yunpil/youtube/internal/llm"
)

// MockClient is a mock type for the llm.Client type
type MockClient struct {
	mock.Mock
}

// Call provides a mock function with given fields: ctx, prompt, contract, cred
func (_m *MockClient) Call(ctx context.Context, prompt string, contract llm.Contract, cred credential.Credential) (string, error) {
	ret := _m.Called(ctx, prompt, contract, cred)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, llm.Contract, credential.Credential) string); ok {
		r0 = rf(ctx, prompt, contract, cred)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, llm.Contract, credential.Credential) error); ok {
		r1 = rf(ctx, prompt, contract, cred)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ llm.Client = (*MockClient)(nil)
