package engine

import (
	"sort"
	"sync"
	"time"
)

// MockScheduler provides a controllable scheduler for testing
// Tasks fire synchronously on the goroutine calling Advance
type MockScheduler struct {
	mu          sync.Mutex
	currentTime time.Time
	nextSeq     uint64
	tasks       []*mockTask
}

type mockTask struct {
	sched *MockScheduler
	due   time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewMockScheduler creates a new mock scheduler with the given start time
func NewMockScheduler(startTime time.Time) *MockScheduler {
	return &MockScheduler{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// AfterFunc registers fn to run once the mocked time reaches now+d
func (m *MockScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSeq++
	task := &mockTask{
		sched: m,
		due:   m.currentTime.Add(d),
		seq:   m.nextSeq,
		fn:    fn,
	}
	m.tasks = append(m.tasks, task)
	return task
}

// Pending returns the number of tasks that have neither fired nor been stopped
func (m *MockScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Advance moves the mocked time forward by d, firing due tasks in deadline order
func (m *MockScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	m.currentTime = m.currentTime.Add(d)
	now := m.currentTime

	var due []*mockTask
	kept := m.tasks[:0]
	for _, task := range m.tasks {
		if !task.due.After(now) {
			task.done = true
			due = append(due, task)
		} else {
			kept = append(kept, task)
		}
	}
	m.tasks = kept
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	// Run outside the lock, tasks may schedule more work
	for _, task := range due {
		task.fn()
	}
}

func (t *mockTask) Stop() bool {
	m := t.sched
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return true
}
