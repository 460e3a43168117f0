// Package service holds the pool business logic used by the HTTP handlers.
package service

import "log/slog"

// BaseService carries dependencies shared by service types.
type BaseService struct {
	logger *slog.Logger
}
