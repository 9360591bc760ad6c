package engine

import "time"

// Timer is a pending scheduled task
type Timer interface {
	// Stop cancels the task, returns false if it already fired or was stopped
	Stop() bool
}

// Scheduler runs fire-once delayed tasks independent of the frame loop
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler schedules on the runtime timer heap
type RealScheduler struct{}

// NewRealScheduler creates a wall-clock scheduler
func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

// AfterFunc runs fn on its own goroutine after d
func (s *RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
