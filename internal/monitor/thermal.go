package monitor

// ThermalStatus is the discretized thermal condition of an entity.
type ThermalStatus int

const (
	ThermalNominal ThermalStatus = iota
	ThermalWarning
	ThermalCritical
)

func (s ThermalStatus) String() string {
	switch s {
	case ThermalWarning:
		return "warning"
	case ThermalCritical:
		return "critical"
	default:
		return "nominal"
	}
}

// classifyThermal applies the static 2-band threshold table to a smoothed
// temperature. Band transitions are immediate; the slow EMA upstream is the
// only smoothing.
func classifyThermal(value, warning, critical float64) ThermalStatus {
	switch {
	case value >= critical:
		return ThermalCritical
	case value >= warning:
		return ThermalWarning
	default:
		return ThermalNominal
	}
}
