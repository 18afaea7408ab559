package device

import (
	"fmt"

	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
)

type Resistor struct {
	BaseDevice
}

func NewResistor(name string, n1, n2 int, value float64) *Resistor {
	return &Resistor{
		BaseDevice: BaseDevice{Name: name, N1: n1, N2: n2, Value: value},
	}
}

func (r *Resistor) GetType() string { return "R" }

// Stamp adds the conductance pattern. G = 1/R
func (r *Resistor) Stamp(mat matrix.DeviceMatrix) error {
	if r.Value == 0 {
		return fmt.Errorf("resistor %s: division by zero", r.Name)
	}

	g := 1.0 / r.Value
	n1, n2 := r.N1, r.N2

	if n1 == n2 {
		// Self loop contributes its diagonal term once.
		if n1 != 0 {
			mat.AddElement(n1, n1, g)
		}
		return nil
	}

	if n1 != 0 {
		mat.AddElement(n1, n1, g)
		if n2 != 0 {
			mat.AddElement(n1, n2, -g)
		}
	}
	if n2 != 0 {
		if n1 != 0 {
			mat.AddElement(n2, n1, -g)
		}
		mat.AddElement(n2, n2, g)
	}

	return nil
}
