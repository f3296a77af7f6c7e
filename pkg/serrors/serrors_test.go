package serrors_test

import (
	"errors"
	"fmt"
	"cmsscan/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrConnection,
		serrors.ErrTimeout,
		serrors.ErrProtocol,
		serrors.ErrFileAccess,
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrConnection, serrors.ErrTimeout, "Connection should not equal Timeout")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "plugin %q not found", "drupal")
	require.Equal(t, `plugin "drupal" not found`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrConnection, base, "could not reach http://a/")
	require.Equal(t, "could not reach http://a/: connection refused", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrFileAccess)
	require.Equal(t, "FILE_ACCESS", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrProtocol, base, "reading")

	require.ErrorIs(t, e, serrors.ErrProtocol)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrTimeout, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrFileAccess, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrFileAccess, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrTimeout, base, "probe timed out")
	require.Equal(t, serrors.ErrTimeout, e.Kind())
	require.Equal(t, "probe timed out", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("could not identify line: %w", serrors.With(serrors.ErrBadRequest, "too many fields"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
}

func TestLookupKind(t *testing.T) {
	require.Equal(t, serrors.ErrTimeout, serrors.LookupKind("TIMEOUT"))
	require.Equal(t, serrors.ErrFileAccess, serrors.LookupKind(serrors.ErrFileAccess.Error()))
	require.Nil(t, serrors.LookupKind("SOMETHING_ELSE"))
}
