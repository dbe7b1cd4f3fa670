package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllSubmittedTasks(t *testing.T) {
	p := New(4)
	p.Start()

	const n = 100
	var counter int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		p.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
	}
	wg.Wait()
	p.Stop()

	if counter != n {
		t.Errorf("expected %d tasks to run, got %d", n, counter)
	}
}

func TestPoolDefaultsWorkersWhenNonPositive(t *testing.T) {
	p := New(0)
	if p.workers <= 0 {
		t.Errorf("expected a non-positive request to default to a positive worker count, got %d", p.workers)
	}
}

func TestPoolStopDrainsQueue(t *testing.T) {
	p := New(2)
	p.Start()

	var ran int32
	for i := 0; i < 10; i++ {
		p.Submit(func() { atomic.AddInt32(&ran, 1) })
	}
	p.Stop()

	if ran != 10 {
		t.Errorf("expected Stop to wait for all queued tasks to finish, got %d", ran)
	}
}
