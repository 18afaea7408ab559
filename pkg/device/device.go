package device

import (
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
)

// Device is a two-terminal circuit element that can stamp its MNA
// contribution into the system matrix.
type Device interface {
	GetName() string
	GetType() string
	GetValue() float64
	Stamp(mat matrix.DeviceMatrix) error
}

// BaseDevice carries what every element kind shares. N1 and N2 are
// resolved node indices; 0 is ground.
type BaseDevice struct {
	Name  string
	N1    int
	N2    int
	Value float64
}

func (d *BaseDevice) GetName() string { return d.Name }

func (d *BaseDevice) GetValue() float64 { return d.Value }
