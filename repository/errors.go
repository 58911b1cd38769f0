package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
)

// translateErr maps driver and ORM failures onto the closed error taxonomy
// the retry executor matches against. Anything it does not recognize stays
// untagged and therefore retryable.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.E(apperr.KindNotFound, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return apperr.E(apperr.KindDuplicate, err)
		case "23503": // foreign_key_violation
			return apperr.E(apperr.KindForeignKey, err)
		case "23502", "23514", "22P02", "22001":
			return apperr.E(apperr.KindValidation, err)
		}
	}

	return err
}
