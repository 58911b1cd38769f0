package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
)

func TestTranslateErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect apperr.Kind
	}{
		{"nil", nil, apperr.KindInternal},
		{"record not found", gorm.ErrRecordNotFound, apperr.KindNotFound},
		{"wrapped record not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), apperr.KindNotFound},
		{"unique violation", &pq.Error{Code: "23505"}, apperr.KindDuplicate},
		{"foreign key violation", &pq.Error{Code: "23503"}, apperr.KindForeignKey},
		{"not null violation", &pq.Error{Code: "23502"}, apperr.KindValidation},
		{"check violation", &pq.Error{Code: "23514"}, apperr.KindValidation},
		{"invalid text representation", &pq.Error{Code: "22P02"}, apperr.KindValidation},
		{"string too long", &pq.Error{Code: "22001"}, apperr.KindValidation},
		{"serialization failure stays retryable", &pq.Error{Code: "40001"}, apperr.KindInternal},
		{"plain error stays retryable", errors.New("connection refused"), apperr.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateErr(tt.err)
			assert.Equal(t, tt.expect, apperr.KindOf(got))
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestTranslateErrKeepsRetryablesUnclassified(t *testing.T) {
	err := translateErr(errors.New("dial tcp: i/o timeout"))
	assert.False(t, apperr.Permanent(err))
}
