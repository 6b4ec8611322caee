package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestError_Error(t *testing.T) {
	err := &RequestError{Status: 503, Message: "service unavailable"}
	assert.Equal(t, "request failed (status 503): service unavailable", err.Error())
}

func TestRequestError_TransportFailure(t *testing.T) {
	err := &RequestError{Message: "connection refused"}
	assert.Equal(t, "request failed: connection refused", err.Error())
}

func TestIsRequestError_Wrapped(t *testing.T) {
	inner := &RequestError{Status: 404, Message: "no such patient"}
	wrapped := fmt.Errorf("fetch records: %w", inner)

	got, ok := IsRequestError(wrapped)
	require.True(t, ok)
	assert.Equal(t, 404, got.Status)
}

func TestIsRequestError_NotARequestError(t *testing.T) {
	_, ok := IsRequestError(ErrUnauthenticated)
	assert.False(t, ok)
}
