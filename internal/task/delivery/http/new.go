package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/task"
	"task-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ListUsers(c *gin.Context)
}

type handler struct {
	l               log.Logger
	uc              task.UseCase
	defaultTimezone string
	debugAllowed    bool
}

// Config for the task HTTP handler.
type Config struct {
	DefaultTimezone string
	// DebugAllowed lets clients request the debug payload.
	DebugAllowed bool
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, cfg Config) *handler {
	return &handler{
		l:               l,
		uc:              uc,
		defaultTimezone: cfg.DefaultTimezone,
		debugAllowed:    cfg.DebugAllowed,
	}
}
