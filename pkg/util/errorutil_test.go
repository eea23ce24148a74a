package util

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpstreamErrorBackendMessageFlag(t *testing.T) {
	withMsg := ToDomainError(NewUpstreamError(http.StatusUnauthorized, "invalid email or password"))
	require.True(t, withMsg.MessageFromBackend)
	require.Equal(t, "invalid email or password", withMsg.Message)
	require.Equal(t, http.StatusUnauthorized, withMsg.HTTPStatus)

	withoutMsg := ToDomainError(NewUpstreamError(http.StatusInternalServerError, ""))
	require.False(t, withoutMsg.MessageFromBackend)
	require.Equal(t, "backend request failed", withoutMsg.Message)
	require.Equal(t, http.StatusBadGateway, withoutMsg.HTTPStatus)
}
