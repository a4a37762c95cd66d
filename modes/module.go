package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Module provides Mode and the running test, if any.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

// ForTest runs hermetically and exposes t to providers.
func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) Mode() Mode {
	return m.mode
}

// T is nil outside tests.
func (m Module) T() *testing.T {
	return m.t
}
