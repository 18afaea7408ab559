package circuit

import (
	"errors"
	"math"
	"testing"

	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/netlist"
)

func evaluate(t *testing.T, input string) (*Circuit, map[string]float64, map[string]float64) {
	t.Helper()

	data, err := netlist.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ckt := New("test")
	t.Cleanup(ckt.Destroy)
	if err := ckt.Setup(data); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := ckt.Solve(); err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	return ckt, ckt.Voltages(), ckt.Currents()
}

func TestSingleSourceSingleResistor(t *testing.T) {
	_, voltages, currents := evaluate(t, `
.circuit
V1 1 0 dc 10
R1 1 0 5
.end
`)

	if v := voltages["GND"]; v != 0 {
		t.Errorf("V(GND) = %v, want exactly 0", v)
	}
	if v := voltages["1"]; math.Abs(v-10) > 1e-9 {
		t.Errorf("V(1) = %v, want 10", v)
	}
	// The source supplies 2 A into node 1; the branch unknown is the
	// current into the positive terminal, so it solves to -2.
	if i := currents["V1"]; math.Abs(i-(-2)) > 1e-9 {
		t.Errorf("I(V1) = %v, want -2", i)
	}
}

func TestVoltageDivider(t *testing.T) {
	ckt, voltages, currents := evaluate(t, `
.circuit
V1 in GND dc 10
R1 in out 1000
R2 out GND 1000
.end
`)

	if v := voltages["out"]; math.Abs(v-5) > 1e-9 {
		t.Errorf("V(out) = %v, want 5", v)
	}
	if i := currents["V1"]; math.Abs(i-(-0.005)) > 1e-9 {
		t.Errorf("I(V1) = %v, want -5 mA", i)
	}

	resistorCurrents := ckt.ResistorCurrents()
	if i := resistorCurrents["R1"]; math.Abs(i-0.005) > 1e-9 {
		t.Errorf("I(R1) = %v, want 5 mA", i)
	}

	// Charge conservation at the internal node: current in through
	// R1 equals current out through R2.
	if diff := resistorCurrents["R1"] - resistorCurrents["R2"]; math.Abs(diff) > 1e-12 {
		t.Errorf("KCL violated at node out: net %v", diff)
	}
}

func TestCurrentSourceOrientation(t *testing.T) {
	// 1 A drawn from node a through the source to ground pulls the
	// node negative across 5 ohms.
	_, voltages, _ := evaluate(t, `
.circuit
I1 a GND dc 1
R1 a GND 5
.end
`)
	if v := voltages["a"]; math.Abs(v-(-5)) > 1e-9 {
		t.Errorf("V(a) = %v, want -5", v)
	}
}

func TestNodeCountInvariant(t *testing.T) {
	_, voltages, _ := evaluate(t, `
.circuit
V1 a GND dc 1
R1 a b 10
R2 b c 10
R3 c GND 10
.end
`)
	if len(voltages) != 4 {
		t.Errorf("voltage map has %d entries, want 4 (a, b, c, GND)", len(voltages))
	}
}

func TestEmptyCircuitBlock(t *testing.T) {
	_, voltages, currents := evaluate(t, ".circuit\n.end\n")
	if len(voltages) != 1 || voltages["GND"] != 0 {
		t.Errorf("voltages = %v, want only GND at 0", voltages)
	}
	if len(currents) != 0 {
		t.Errorf("currents = %v, want none", currents)
	}
}

func TestSetupRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric resistance", ".circuit\nR1 a GND abc\n.end\n"},
		{"zero resistance", ".circuit\nR1 a GND 0\n.end\n"},
		{"non-numeric voltage", ".circuit\nV1 a GND dc ten\n.end\n"},
		{"non-numeric current", ".circuit\nI1 a GND dc ??\n.end\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := netlist.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			ckt := New("test")
			defer ckt.Destroy()
			if err := ckt.Setup(data); !errors.Is(err, netlist.ErrMalformed) {
				t.Fatalf("Setup() error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestSingularCircuit(t *testing.T) {
	// A current source into a node with no return path has no unique
	// operating point.
	data, err := netlist.Parse(".circuit\nI1 1 2 dc 1\n.end\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ckt := New("test")
	defer ckt.Destroy()
	if err := ckt.Setup(data); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := ckt.Solve(); !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("Solve() error = %v, want ErrSingular", err)
	}
}

func TestBranchRowAssignment(t *testing.T) {
	data, err := netlist.Parse(`
.circuit
V1 a GND dc 1
V2 b GND dc 2
R1 a b 10
.end
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ckt := New("test")
	defer ckt.Destroy()
	if err := ckt.Setup(data); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	// Two non-ground nodes occupy rows 1..2; branch rows follow in
	// declaration order.
	branches := ckt.BranchMap()
	if branches["V1"] != 3 || branches["V2"] != 4 {
		t.Errorf("branch rows = %v, want V1:3 V2:4", branches)
	}
}
