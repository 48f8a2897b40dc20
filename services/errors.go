package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kaalchakra-cms/cache"
	"kaalchakra-cms/logger"
	"kaalchakra-cms/metrics"
	"kaalchakra-cms/models"
)

// translateDBError turns repository errors into request errors. Errors
// that already carry a kind pass through unchanged.
func translateDBError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var appErr *models.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound("%s not found", entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.ErrConflict("%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.ErrConflict("%s is still referenced", entity)
	}
	return fmt.Errorf("%s: %w", entity, err)
}

// observe records the outcome of an authorizer call and returns err.
func observe(operation string, err error) error {
	outcome := "allowed"
	if err != nil {
		outcome = string(models.KindOf(err))
	}
	metrics.ObserveDecision(operation, outcome)
	return err
}

// invalidate drops cached public responses. Failures are logged and the
// entries expire with their TTL.
func invalidate(c cache.Cacher, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(context.Background(), keys...); err != nil {
		logger.Warn().Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
