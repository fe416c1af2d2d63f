package server

import (
	"fmt"

	"function-invoker-api/internal/config"
	"function-invoker-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	InvokerService services.InvokerService
}

// NewContainer creates a new dependency injection container. A function that
// fails to load is not an error here: the service starts degraded and reports
// the failure on every invoke.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	return &Container{
		Config:         cfg,
		InvokerService: services.NewInvokerService(cfg),
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}
