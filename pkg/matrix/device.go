package matrix

// DeviceMatrix is the stamping surface a device writes through.
// Indices are 1-based; callers drop ground (index 0) themselves.
type DeviceMatrix interface {
	AddElement(i, j int, value float64)
	AddRHS(i int, value float64)
	SetElement(i, j int, value float64)
	SetRHS(i int, value float64)
}
