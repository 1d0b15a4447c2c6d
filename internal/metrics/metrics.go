package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry groups the process-lifetime counters shown on the admin dashboard.
type Registry struct {
	Requests      Counter
	ClientErrors  Counter
	ServerErrors  Counter
	OrdersCreated Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}

type Snapshot struct {
	Requests      uint64 `json:"requests"`
	ClientErrors  uint64 `json:"clientErrors"`
	ServerErrors  uint64 `json:"serverErrors"`
	OrdersCreated uint64 `json:"ordersCreated"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Requests:      r.Requests.Load(),
		ClientErrors:  r.ClientErrors.Load(),
		ServerErrors:  r.ServerErrors.Load(),
		OrdersCreated: r.OrdersCreated.Load(),
	}
}
