package analysis

import (
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/circuit"
)

// OperatingPoint computes the DC steady state of a linear circuit.
// One factor-and-solve is enough: every supported element is linear,
// so there is no iteration loop here.
type OperatingPoint struct {
	Circuit  *circuit.Circuit
	voltages map[string]float64
	currents map[string]float64
}

func NewOP() *OperatingPoint {
	return &OperatingPoint{}
}

func (op *OperatingPoint) Setup(ckt *circuit.Circuit) error {
	op.Circuit = ckt
	return nil
}

func (op *OperatingPoint) Execute() error {
	if err := op.Circuit.Solve(); err != nil {
		return err
	}

	op.voltages = op.Circuit.Voltages()
	op.currents = op.Circuit.Currents()
	return nil
}

// Voltages returns node name -> voltage, ground included at 0.
func (op *OperatingPoint) Voltages() map[string]float64 { return op.voltages }

// Currents returns voltage source name -> branch current.
func (op *OperatingPoint) Currents() map[string]float64 { return op.currents }

// ResistorCurrents returns Ohm's-law currents through each resistor.
func (op *OperatingPoint) ResistorCurrents() map[string]float64 {
	return op.Circuit.ResistorCurrents()
}
