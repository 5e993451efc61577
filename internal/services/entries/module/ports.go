package module

import (
	"bitlog/internal/services/entries/domain"
)

// Ports exposes the entries service to sibling modules
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
