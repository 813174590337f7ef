package config

// MaxTickRate caps viewer ticks per second.
const MaxTickRate = 60

// SpeedPreset represents a named viewer pace.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedTurbo  SpeedPreset = "turbo"
)

// Valid reports whether p names a known preset.
func (p SpeedPreset) Valid() bool {
	switch p {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedTurbo:
		return true
	}
	return false
}

// ApplySpeedPreset sets tick rate and step size from a preset. Unknown presets
// leave cfg unchanged.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	switch preset {
	case SpeedSlow:
		cfg.Viewer.TickRate, cfg.Viewer.StepSize = 4, 1
	case SpeedNormal:
		cfg.Viewer.TickRate, cfg.Viewer.StepSize = 10, 1
	case SpeedFast:
		cfg.Viewer.TickRate, cfg.Viewer.StepSize = 30, 1
	case SpeedTurbo:
		cfg.Viewer.TickRate, cfg.Viewer.StepSize = MaxTickRate, 4
	default:
		return
	}
	cfg.Viewer.Speed = preset
}

// Pace is the viewer speed adjusted at runtime: ticks per second and
// generations per tick. Faster raises the tick rate until MaxTickRate, then
// doubles the step size; Slower walks back the same way.
type Pace struct {
	TickRate int
	StepSize int
}

// NewPace creates a pace, clamping its values to valid ranges.
func NewPace(tickRate, stepSize int) Pace {
	return Pace{
		TickRate: clamp(tickRate, 1, MaxTickRate),
		StepSize: max(stepSize, 1),
	}
}

// Faster returns the next faster pace.
func (p Pace) Faster() Pace {
	if p.TickRate < MaxTickRate {
		return NewPace(p.TickRate*2, p.StepSize)
	}
	return NewPace(p.TickRate, p.StepSize*2)
}

// Slower returns the next slower pace.
func (p Pace) Slower() Pace {
	if p.StepSize > 1 {
		return NewPace(p.TickRate, p.StepSize/2)
	}
	return NewPace(p.TickRate/2, p.StepSize)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
