package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"rokto-connect/internal/core/domain"
)

// storageTimeout bounds every storage call. Timeouts surface as
// ErrStorageUnavailable so the caller can treat them as retryable.
const storageTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storageTimeout)
}

// wrapErr translates storage failures into the domain taxonomy. Record
// misses keep their gorm sentinel so callers can map them to NotFound;
// everything else is a storage failure.
func wrapErr(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
