package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnavailableClassifiesErrors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		notConfigured bool
	}{
		{name: "nil", err: nil},
		{name: "not configured", err: ErrNotConfigured, notConfigured: true},
		{name: "request failed", err: ErrRequestFailed},
		{name: "foreign", err: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Unavailable[int](tt.err)

			assert.Equal(t, StatusUnavailable, r.Status)
			assert.False(t, r.Ok())
			require.Error(t, r.Err)
			assert.Equal(t, tt.notConfigured, r.NotConfigured())
			assert.True(t, errors.Is(r.Err, ErrNotConfigured) || errors.Is(r.Err, ErrRequestFailed))
			if tt.err != nil {
				assert.ErrorIs(t, r.Err, tt.err)
			}
		})
	}
}

func TestOKAndNotFoundCarryNoError(t *testing.T) {
	ok := OK("x")
	assert.True(t, ok.Ok())
	assert.NoError(t, ok.Err)
	assert.Equal(t, "x", ok.Value)

	nf := NotFound[string]()
	assert.Equal(t, StatusNotFound, nf.Status)
	assert.NoError(t, nf.Err)
	assert.False(t, nf.NotConfigured())
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, OK(4), Map(OK(2), double))
	assert.Equal(t, NotFound[int](), Map(NotFound[int](), double))

	failed := Map(Unavailable[int](ErrNotConfigured), double)
	assert.Equal(t, StatusUnavailable, failed.Status)
	assert.True(t, failed.NotConfigured())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
	assert.Equal(t, "not_found", StatusNotFound.String())
	assert.Equal(t, "status(9)", Status(9).String())
}
