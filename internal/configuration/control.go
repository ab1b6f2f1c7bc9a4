package configuration

import "time"

// ControlConfig configures the controllers applying the curve duty to fan and pump
type ControlConfig struct {
	Enabled bool `json:"enabled"`
	// MaxDutyChangePerSecond limits how fast the duty may change, 0 means unlimited
	MaxDutyChangePerSecond int           `json:"maxDutyChangePerSecond"`
	AdjustmentTickRate     time.Duration `json:"adjustmentTickRate"`
}

// MaxChangePerSecond returns the configured limit, or nil if the duty may change without limit
func (c ControlConfig) MaxChangePerSecond() *int {
	if c.MaxDutyChangePerSecond <= 0 {
		return nil
	}
	value := c.MaxDutyChangePerSecond
	return &value
}
