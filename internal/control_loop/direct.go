package control_loop

import (
	"time"

	"github.com/markusressel/kraken2go/internal/util"
)

// DirectControlLoop is a very simple control that directly applies the given
// target duty. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerSecond" property.
type DirectControlLoop struct {
	// limits the maximum allowed duty change per second, nil means unlimited
	maxChangePerSecond *int

	lastTime   time.Time
	lastOutput *float64

	now func() time.Time
}

// NewDirectControlLoop creates a DirectControlLoop, which is a very simple control that directly applies the given
// target duty. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerSecond" property.
func NewDirectControlLoop(
	// can be used to limit the maximum allowed duty change per second
	maxChangePerSecond *int,
) *DirectControlLoop {
	return &DirectControlLoop{
		maxChangePerSecond: maxChangePerSecond,
		now:                time.Now,
	}
}

func (l *DirectControlLoop) Cycle(target float64) float64 {
	loopTime := l.now()
	dt := loopTime.Sub(l.lastTime).Seconds()
	l.lastTime = loopTime

	if l.lastOutput == nil || l.maxChangePerSecond == nil {
		l.lastOutput = &target
		return target
	}

	// we can be above or below the target,
	// so we subtract or add at most the max change,
	// capped to having reached the target
	maxChangeThisStep := float64(*l.maxChangePerSecond) * dt
	err := target - *l.lastOutput
	var change float64
	if err > 0 {
		change = util.Coerce(maxChangeThisStep, 0, err)
	} else {
		change = util.Coerce(-maxChangeThisStep, err, 0)
	}

	output := *l.lastOutput + change
	l.lastOutput = &output
	return output
}
