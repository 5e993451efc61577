package module

import (
	"bitlog/internal/services/journal/domain"
)

// Ports exposes the journal service to sibling modules
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
