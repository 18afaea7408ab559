package circuit

import (
	"fmt"
	"strconv"

	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/device"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/netlist"
)

// Circuit owns the devices, the node and branch bookkeeping, and the
// MNA matrix for a single evaluation. Build one per call; nothing is
// shared or reused.
type Circuit struct {
	name      string
	nodeMap   map[string]int
	branchMap map[string]int // voltage source name -> matrix row
	devices   []device.Device
	numNodes  int
	matrix    *matrix.CircuitMatrix
}

func New(name string) *Circuit {
	return &Circuit{
		name:      name,
		nodeMap:   make(map[string]int),
		branchMap: make(map[string]int),
		devices:   make([]device.Device, 0),
	}
}

// Setup converts parsed elements into devices, assigns voltage source
// branch rows in declaration order, and stamps the system. Numeric
// conversion of element values happens here, so a bad value aborts
// before anything is stamped.
func (c *Circuit) Setup(data *netlist.NetlistData) error {
	for name, idx := range data.Nodes {
		c.nodeMap[name] = idx
	}
	c.numNodes = data.NumNodes

	for _, elem := range data.Resistors {
		value, err := strconv.ParseFloat(elem.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid resistor value %q", netlist.ErrMalformed, elem.Value)
		}
		if value == 0 {
			return fmt.Errorf("%w: resistor %s value causes division by zero", netlist.ErrMalformed, elem.Name)
		}
		c.devices = append(c.devices, device.NewResistor(elem.Name, elem.N1, elem.N2, value))
	}

	// Branch rows follow the node rows: i-th source sits at row
	// numNodes-1+i+1 in the 1-based matrix.
	branchStart := c.numNodes
	for i, elem := range data.VoltageSources {
		value, err := strconv.ParseFloat(elem.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid voltage source value %q", netlist.ErrMalformed, elem.Value)
		}
		src := device.NewVoltageSource(elem.Name, elem.N1, elem.N2, value)
		src.SetBranchIndex(branchStart + i)
		c.branchMap[elem.Name] = branchStart + i
		c.devices = append(c.devices, src)
	}

	for _, elem := range data.CurrentSources {
		value, err := strconv.ParseFloat(elem.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid current source value %q", netlist.ErrMalformed, elem.Value)
		}
		c.devices = append(c.devices, device.NewCurrentSource(elem.Name, elem.N1, elem.N2, value))
	}

	size := c.numNodes - 1 + len(data.VoltageSources)
	if size == 0 {
		// Ground alone; nothing to solve.
		return nil
	}

	mat, err := matrix.NewMatrix(size)
	if err != nil {
		return err
	}
	c.matrix = mat

	if err := c.Stamp(); err != nil {
		return err
	}
	c.matrix.SetupElements()

	return nil
}

func (c *Circuit) Stamp() error {
	for _, dev := range c.devices {
		if err := dev.Stamp(c.matrix); err != nil {
			return fmt.Errorf("stamping device %s: %v", dev.GetName(), err)
		}
	}
	return nil
}

func (c *Circuit) Solve() error {
	if c.matrix == nil {
		return nil
	}
	return c.matrix.Solve()
}

// Voltages maps every known node name to its solved voltage. Ground
// is exactly 0; an index past the solution is omitted rather than
// reported wrong.
func (c *Circuit) Voltages() map[string]float64 {
	voltages := make(map[string]float64, len(c.nodeMap))

	var solution []float64
	if c.matrix != nil {
		solution = c.matrix.Solution()
	}

	for name, idx := range c.nodeMap {
		if idx == 0 {
			voltages[name] = 0
			continue
		}
		if idx < len(solution) {
			voltages[name] = solution[idx]
		}
	}
	return voltages
}

// Currents maps each voltage source name to its solved branch
// current, positive into the n1 terminal.
func (c *Circuit) Currents() map[string]float64 {
	currents := make(map[string]float64, len(c.branchMap))
	if c.matrix == nil {
		return currents
	}

	solution := c.matrix.Solution()
	for name, idx := range c.branchMap {
		if idx < len(solution) {
			currents[name] = solution[idx]
		}
	}
	return currents
}

// ResistorCurrents derives each resistor's branch current from the
// solved node voltages. I = (v1 - v2) / R
func (c *Circuit) ResistorCurrents() map[string]float64 {
	currents := make(map[string]float64)
	if c.matrix == nil {
		return currents
	}

	solution := c.matrix.Solution()
	for _, dev := range c.devices {
		r, ok := dev.(*device.Resistor)
		if !ok {
			continue
		}
		v1, v2 := 0.0, 0.0
		if r.N1 > 0 && r.N1 < len(solution) {
			v1 = solution[r.N1]
		}
		if r.N2 > 0 && r.N2 < len(solution) {
			v2 = solution[r.N2]
		}
		currents[r.Name] = (v1 - v2) / r.Value
	}
	return currents
}

func (c *Circuit) Name() string { return c.name }

func (c *Circuit) NumNodes() int { return c.numNodes }

func (c *Circuit) NodeMap() map[string]int { return c.nodeMap }

func (c *Circuit) BranchMap() map[string]int { return c.branchMap }

func (c *Circuit) Devices() []device.Device { return c.devices }

func (c *Circuit) Matrix() *matrix.CircuitMatrix { return c.matrix }

func (c *Circuit) Destroy() {
	if c.matrix != nil {
		c.matrix.Destroy()
	}
}
