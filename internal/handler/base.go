// Package handler exposes pools over HTTP.
package handler

import "log/slog"

// BaseHandler carries dependencies shared by HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}
