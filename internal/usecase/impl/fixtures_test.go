package impl

import (
	"io"
	"log/slog"

	"padelpoint/config"
	"padelpoint/internal/domain/entity"
	domainerrors "padelpoint/internal/domain/errors"
	"padelpoint/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Mail.AdminAddress = "admin@padel.test"
	cfg.Storage.S3.Prefix = "test"

	return cfg
}

func callerWithRoles(id int64, roles ...string) *entity.TokenPayload {
	payload := &entity.TokenPayload{ID: id, Method: entity.LoginMethodLocal}
	for i, name := range roles {
		payload.Roles = append(payload.Roles, entity.RoleClaim{ID: int64(i + 1), Name: name})
	}

	return payload
}

func userCaller(id int64) *entity.TokenPayload {
	return callerWithRoles(id, entity.RoleNameUser)
}

func adminCaller(id int64) *entity.TokenPayload {
	return callerWithRoles(id, entity.RoleNameAdmin)
}

// messageOf returns the user-facing message of err.
func messageOf(err error) string {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.Message()
	}

	return ""
}

func httpCodeOf(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	return 0
}
