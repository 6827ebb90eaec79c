package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// storageError tags an unexpected store failure with common.ErrStorage.
// Domain sentinels pass through unchanged.
func storageError(op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrStorage):
		return err
	}
	return fmt.Errorf("%w: %s: %v", common.ErrStorage, op, err)
}
