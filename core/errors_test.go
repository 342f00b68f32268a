package core_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/directdb/directdb/core"
	"github.com/directdb/directdb/internal/logger"
)

func TestError_PreservesMessage(t *testing.T) {
	driverErr := errors.New(`relation "users" does not exist`)

	err := core.NewError(nil, core.KindInsert, driverErr)

	assert.Equal(t, driverErr.Error(), err.Error())
	assert.ErrorIs(t, err, driverErr)
	assert.ErrorIs(t, err, core.ErrInsert)
	assert.NotErrorIs(t, err, core.ErrFetch)
	assert.False(t, err.Time.IsZero())
}

func TestError_MatchesKindThroughWrapping(t *testing.T) {
	var err error = core.NewError(nil, core.KindDelete, core.ErrNoFilter)
	wrapped := fmt.Errorf("cleanup: %w", err)

	require.ErrorIs(t, wrapped, core.ErrDelete)
	require.ErrorIs(t, wrapped, core.ErrNoFilter)

	var dbErr *core.Error
	require.ErrorAs(t, wrapped, &dbErr)
	require.Equal(t, core.KindDelete, dbErr.Kind)
}

func TestError_LogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, logger.LevelDebug)

	_ = core.NewError(l, core.KindUpdate, errors.New("boom"))

	assert.Contains(t, buf.String(), "[error]: update error | boom")
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind core.Kind
		want string
	}{
		{core.KindTable, "table"},
		{core.KindInsert, "insert"},
		{core.KindFetch, "fetch"},
		{core.KindUpdate, "update"},
		{core.KindDelete, "delete"},
		{core.Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}

	assert.Equal(t, "fetch error", core.ErrFetch.Error())
}
