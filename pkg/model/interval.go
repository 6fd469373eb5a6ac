package model

import (
	"fmt"

	"github.com/objectflow/objectflow-go/pkg/log"
)

var timerTypes = [...]uint16{CurrentTimeType, IntervalTimeType, LastActivationTimeType}

// HasTimer returns true if the object carries all three timer resources.
func (o *Object) HasTimer() bool {
	for _, t := range timerTypes {
		if !o.HasResource(t, defaultInstance) {
			return false
		}
	}
	return true
}

// AdvanceTime stores now in CurrentTime and fires the OnInterval hook when
// at least IntervalTime has elapsed since LastActivationTime. It returns
// true if the hook fired.
//
// The elapsed time is computed modulo the registry's counter width, so the
// comparison stays correct across one wrap of the counter as long as the
// interval is less than half the counter range.
func (o *Object) AdvanceTime(now Time) (bool, error) {
	var res [len(timerTypes)]*Resource
	for i, t := range timerTypes {
		r, ok := o.Resource(t, defaultInstance)
		if !ok {
			return false, fmt.Errorf("%w: resource %d/0 on object %s", ErrMissingTimerResource, t, o)
		}
		res[i] = r
	}
	current, interval, last := res[0], res[1], res[2]

	mask := o.registry.timeMask
	now &= mask
	if err := current.set(TimeValue(now)); err != nil {
		return false, err
	}

	lastT, err := last.value.AsTime()
	if err != nil {
		return false, err
	}
	intervalT, err := interval.value.AsTime()
	if err != nil {
		return false, err
	}

	elapsed := now.Sub(lastT) & mask
	if elapsed < intervalT {
		return false, nil
	}

	if err := last.set(TimeValue(now)); err != nil {
		return false, err
	}

	o.registry.logger.Debug("interval fired",
		"object", o.String(),
		"now", uint32(now),
		"elapsed", uint32(elapsed))
	o.registry.trace(log.Event{
		Category: log.CategoryInterval,
		Object:   o.logRef(),
		Interval: &log.IntervalData{
			Now:      uint32(now),
			Elapsed:  uint32(elapsed),
			Interval: uint32(intervalT),
		},
	})

	o.behavior.OnInterval(o)
	return true, nil
}
