package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"courier-agent/internal/apperr"
)

func TestServerError_Message(t *testing.T) {
	t.Parallel()

	err := apperr.NewServerError(401, "invalid employee id")
	require.EqualError(t, err, "server rejected request: status 401: invalid employee id")

	bare := apperr.NewServerError(500, "")
	require.EqualError(t, bare, "server rejected request: status 500")
}

func TestIsServerRejected(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("update status: %w", apperr.NewServerError(409, "conflict"))
	require.True(t, apperr.IsServerRejected(err))
	require.False(t, apperr.IsServerRejected(apperr.ErrTransport))

	var se *apperr.ServerError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 409, se.Status)
}

func TestSentinels_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		apperr.ErrBadURL,
		apperr.ErrEncoding,
		apperr.ErrTransport,
		apperr.ErrDecoding,
		apperr.ErrUnauthorized,
		apperr.ErrNotFound,
		apperr.ErrInvalidTransition,
		apperr.ErrTransitionInFlight,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestWrapping_PreservesKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch deliveries: %w", apperr.ErrTransport)
	require.ErrorIs(t, err, apperr.ErrTransport)
	require.NotErrorIs(t, err, apperr.ErrDecoding)
}
