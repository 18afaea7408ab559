package device

import (
	"github.com/Priyanka-idk/SPICE-Simulator-EE2703/pkg/matrix"
)

type VoltageSource struct {
	BaseDevice
	// Branch index for MNA
	branchIdx int
}

func NewVoltageSource(name string, n1, n2 int, value float64) *VoltageSource {
	return &VoltageSource{
		BaseDevice: BaseDevice{Name: name, N1: n1, N2: n2, Value: value},
	}
}

func (v *VoltageSource) GetType() string { return "V" }

func (v *VoltageSource) BranchIndex() int { return v.branchIdx }

func (v *VoltageSource) SetBranchIndex(idx int) { v.branchIdx = idx }

// Stamp writes the branch constraint v(n1) - v(n2) = V and couples
// the unknown branch current into both node equations.
func (v *VoltageSource) Stamp(mat matrix.DeviceMatrix) error {
	n1, n2 := v.N1, v.N2
	bIdx := v.branchIdx

	if n1 != 0 {
		mat.SetElement(bIdx, n1, 1) // v1 coefficient
		mat.SetElement(n1, bIdx, 1) // n1 current
	}
	if n2 != 0 {
		mat.SetElement(bIdx, n2, -1) // -v2 coefficient
		mat.SetElement(n2, bIdx, -1) // n2 current
	}

	mat.SetRHS(bIdx, v.Value)
	return nil
}
