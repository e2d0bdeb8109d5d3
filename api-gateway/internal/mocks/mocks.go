package mocks

import (
	"net/http"

	"github.com/stretchr/testify/mock"

	"pickup-market/api-gateway/internal/gateway"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type HTTPClient struct {
	mock.Mock
}

func NewHTTPClient(t testingT) *HTTPClient {
	m := &HTTPClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

var _ gateway.HTTPClient = (*HTTPClient)(nil)
