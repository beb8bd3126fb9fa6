package commands

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

func validateDate(date kernel.Date) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}
