package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err    error
		expect Kind
	}{
		{E(KindDuplicate, errors.New("duplicate key value")), KindDuplicate},
		{E(KindForeignKey, errors.New("violates foreign key")), KindForeignKey},
		{Validation("title too long"), KindValidation},
		{NotFound("video %s", "abc"), KindNotFound},
		{fmt.Errorf("save video: %w", E(KindDuplicate, errors.New("dup"))), KindDuplicate},
		{errors.New("connection reset by peer"), KindInternal},
		{nil, KindInternal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, KindOf(tt.err))
	}
}

func TestPermanent(t *testing.T) {
	assert.True(t, Permanent(Validation("bad input")))
	assert.True(t, Permanent(E(KindDuplicate, nil)))
	assert.True(t, Permanent(E(KindForeignKey, nil)))
	assert.True(t, Permanent(NotFound("gone")))

	assert.False(t, Permanent(errors.New("timeout")))
	assert.False(t, Permanent(E(KindInternal, errors.New("i/o error"))))
	assert.False(t, Permanent(nil))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := E(KindDuplicate, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "duplicate")
}
