package analysis

import (
	"errors"
	"fmt"
	"os"

	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/circuit"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/netlist"
)

// ErrFileAccess wraps any failure to read the input netlist file.
var ErrFileAccess = errors.New("please give the name of a valid SPICE file as input")

// Evaluate runs the whole pipeline on a netlist file: parse, stamp,
// solve, and map the solution back onto node and source names. Every
// call is independent; any failure aborts with no partial result.
func Evaluate(filename string) (map[string]float64, map[string]float64, error) {
	input, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}

	data, err := netlist.Parse(string(input))
	if err != nil {
		return nil, nil, err
	}

	ckt := circuit.New(filename)
	defer ckt.Destroy()

	if err := ckt.Setup(data); err != nil {
		return nil, nil, err
	}

	op := NewOP()
	if err := op.Setup(ckt); err != nil {
		return nil, nil, err
	}
	if err := op.Execute(); err != nil {
		return nil, nil, err
	}

	return op.Voltages(), op.Currents(), nil
}
