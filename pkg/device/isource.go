package device

import (
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
)

type CurrentSource struct {
	BaseDevice
}

func NewCurrentSource(name string, n1, n2 int, value float64) *CurrentSource {
	return &CurrentSource{
		BaseDevice: BaseDevice{Name: name, N1: n1, N2: n2, Value: value},
	}
}

func (i *CurrentSource) GetType() string { return "I" }

// Stamp moves the source current through the right-hand side. The
// current flows from N1 through the source to N2, so it leaves N1's
// node equation and enters N2's.
func (i *CurrentSource) Stamp(mat matrix.DeviceMatrix) error {
	if i.N1 != 0 {
		mat.AddRHS(i.N1, -i.Value)
	}
	if i.N2 != 0 {
		mat.AddRHS(i.N2, i.Value)
	}
	return nil
}
