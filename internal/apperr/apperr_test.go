package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsAreDistinguishable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		is       func(error) bool
		textCode string
	}{
		{"invalid", Invalid("username is blank"), IsInvalid, TextInvalid},
		{"conflict", Conflict(errors.New("UNIQUE constraint failed"), "username taken"), IsConflict, TextConflict},
		{"unauthorized", Unauthorized("bad credentials"), IsUnauthorized, TextUnauthorized},
		{"not found", NotFound("no message 3"), IsNotFound, TextNotFound},
		{"storage", Storage(errors.New("disk I/O error"), "insert message"), IsStorage, TextStorage},
	}

	predicates := []func(error) bool{IsInvalid, IsConflict, IsUnauthorized, IsNotFound, IsStorage}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.textCode, TextCode(tt.err))

			matches := 0
			for _, is := range predicates {
				if is(tt.err) {
					matches++
				}
			}
			assert.True(t, tt.is(tt.err))
			assert.Equal(t, 1, matches, "exactly one kind must match")
		})
	}
}

func TestWrappedSourceIsKept(t *testing.T) {
	driverErr := errors.New("UNIQUE constraint failed: account.username")
	err := Conflict(driverErr, "username already exists")

	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "username already exists")
}

func TestNilSourceStillProducesKind(t *testing.T) {
	err := Storage(nil, "store is not configured")
	require.Error(t, err)
	assert.True(t, IsStorage(err))
}

func TestKindSurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("register: %w", Invalid("password too short"))
	assert.True(t, IsInvalid(err))
	assert.Equal(t, TextInvalid, TextCode(err))
}

func TestForeignErrorHasNoKind(t *testing.T) {
	err := errors.New("boom")
	assert.False(t, IsInvalid(err))
	assert.False(t, IsStorage(err))
	assert.Empty(t, TextCode(err))
}
