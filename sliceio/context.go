// Package sliceio provides the build-time logging and timing context
// shared by the slicing pipeline's stages.
package sliceio

import (
	"fmt"
	"time"
)

// LogCategory classifies a logged message.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress message.
	LogWarning                         // A recoverable anomaly.
	LogError                           // A fatal condition.
)

// TimerLabel names one of the pipeline's timed stages.
type TimerLabel int

const (
	TimerParams TimerLabel = iota
	TimerProfileBuild
	TimerProfileEdit
	TimerLayers
	TimerHeatmap
	maxTimers
)

const maxMessages = 1000

// Context accumulates log messages and stage timings for one slicing pass.
//
// A zero Context is usable but disabled: Log and timer calls are no-ops
// until Enable is called, so a pipeline stage can always take a Context
// argument even when a caller has no interest in diagnostics.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	messages    [maxMessages]string
	numMessages int

	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration
}

// NewContext returns a Context with logging and timers enabled according to
// state.
func NewContext(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

// Enable turns logging and timing on or off.
func (c *Context) Enable(state bool) {
	c.logEnabled = state
	c.timerEnabled = state
}

// ResetLog clears all accumulated log messages.
func (c *Context) ResetLog() {
	if c.logEnabled {
		c.numMessages = 0
	}
}

// ResetTimers zeroes all accumulated timer durations.
func (c *Context) ResetTimers() {
	if c.timerEnabled {
		for i := range c.accTime {
			c.accTime[i] = 0
		}
	}
}

func (c *Context) Progressf(format string, v ...interface{}) { c.log(LogProgress, format, v...) }
func (c *Context) Warningf(format string, v ...interface{})  { c.log(LogWarning, format, v...) }
func (c *Context) Errorf(format string, v ...interface{})    { c.log(LogError, format, v...) }

func (c *Context) log(cat LogCategory, format string, v ...interface{}) {
	if !c.logEnabled || c.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch cat {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	c.messages[c.numMessages] = prefix + fmt.Sprintf(format, v...)
	c.numMessages++
}

// DumpLog prints a header followed by every accumulated log message.
func (c *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	for i := 0; i < c.numMessages; i++ {
		fmt.Println(c.messages[i])
	}
}

// LogCount returns the number of accumulated messages.
func (c *Context) LogCount() int { return c.numMessages }

// LogText returns the i-th accumulated message.
func (c *Context) LogText(i int) string { return c.messages[i] }

// StartTimer begins timing label. Calling it again before StopTimer
// restarts the interval.
func (c *Context) StartTimer(label TimerLabel) {
	if c.timerEnabled {
		c.startTime[label] = time.Now()
	}
}

// StopTimer accumulates the elapsed time since the last StartTimer call
// for label.
func (c *Context) StopTimer(label TimerLabel) {
	if !c.timerEnabled {
		return
	}
	c.accTime[label] += time.Since(c.startTime[label])
}

// AccumulatedTime returns the total time accumulated for label, or zero if
// timers are disabled.
func (c *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if !c.timerEnabled {
		return 0
	}
	return c.accTime[label]
}
