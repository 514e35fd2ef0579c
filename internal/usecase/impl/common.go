// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "padelpoint/internal/delivery/context"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/errors"
)

// loggerFor returns a request-scoped logger if available, otherwise the service's logger.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

func isAdmin(caller *entity.TokenPayload) bool {
	return caller != nil && entity.HasRole(caller.RoleNames(), entity.RoleNameAdmin)
}

// ensureSelfOrAdmin rejects non-admin callers acting on another user's resources.
func ensureSelfOrAdmin(caller *entity.TokenPayload, userID int64) error {
	if caller == nil {
		return domainerrors.ErrNoTokens
	}
	if isAdmin(caller) || caller.ID == userID {
		return nil
	}

	return domainerrors.TokenIDMismatch(userID)
}

// internalError reports an unexpected failure as a BadRequest carrying message.
// err stays in the chain for logs. Errors that already carry a user message pass through.
func internalError(err error, message string) error {
	if _, ok := errors.AsType[*domainerrors.BaseError](err); ok {
		return err
	}

	return errors.Wrap(domainerrors.NewBadRequest("%s", message), err.Error())
}
