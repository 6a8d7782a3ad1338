package core

import (
	"context"
	"fmt"
	"log"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

type namedService struct {
	name    string
	service Interface
}

// Registry starts services in registration order and stops them in reverse
type Registry struct {
	services []namedService
	started  int
}

// NewRegistry creates a new core registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service under a name used in logs and errors
func (sr *Registry) Register(name string, service Interface) {
	sr.services = append(sr.services, namedService{name: name, service: service})
}

// Names returns the registered service names in start order
func (sr *Registry) Names() []string {
	names := make([]string, 0, len(sr.services))
	for _, s := range sr.services {
		names = append(names, s.name)
	}
	return names
}

// StartAll starts all registered services. When one fails, the services
// already started are stopped in reverse order and the error names the failing service.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, s := range sr.services {
		if err := s.service.Start(ctx); err != nil {
			log.Printf("Registry: %s failed to start: %v", s.name, err)
			sr.started = i
			sr.StopAll()
			return fmt.Errorf("starting %s: %w", s.name, err)
		}
		log.Printf("Registry: %s started", s.name)
	}
	sr.started = len(sr.services)
	return nil
}

// StopAll stops the started services in reverse order. Repeated calls are no-ops.
func (sr *Registry) StopAll() {
	for i := sr.started - 1; i >= 0; i-- {
		sr.services[i].service.Stop()
		log.Printf("Registry: %s stopped", sr.services[i].name)
	}
	sr.started = 0
}
