// Package ui is the console front end: entity tables, forms, analytics
// charts and the command loop that drives them. Rendering happens on the
// loop goroutine only; backend calls run elsewhere through a Dispatcher.
package ui

import (
	"context"
	"sync"
	"time"
)

// Completion is the outcome of a dispatched call, delivered to the loop.
type Completion struct {
	Label string
	Value interface{}
	Err   error

	then   func(value interface{}, err error)
	settle func()
}

// Apply runs the completion callback. Call it from the loop goroutine.
func (c Completion) Apply() {
	if c.settle != nil {
		c.settle()
	}
	if c.then != nil {
		c.then(c.Value, c.Err)
	}
}

// Dispatcher runs backend calls off the loop goroutine. Every call gets its
// own deadline; Cancel aborts everything in flight.
type Dispatcher struct {
	timeout time.Duration
	done    chan Completion
	closed  chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	mu          sync.Mutex
	seq         uint64
	inFlight    map[uint64]context.CancelFunc
	outstanding int
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		timeout:  timeout,
		done:     make(chan Completion, 16),
		closed:   make(chan struct{}),
		inFlight: make(map[uint64]context.CancelFunc),
	}
}

// Go starts call on a new goroutine. then receives the result once the loop
// reads the completion from Completions and applies it.
func (d *Dispatcher) Go(label string, call func(ctx context.Context) (interface{}, error), then func(interface{}, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)

	d.mu.Lock()
	d.seq++
	id := d.seq
	d.inFlight[id] = cancel
	d.outstanding++
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		value, err := call(ctx)
		d.mu.Lock()
		delete(d.inFlight, id)
		d.mu.Unlock()
		cancel()
		select {
		case d.done <- Completion{Label: label, Value: value, Err: err, then: then, settle: d.settle}:
		case <-d.closed:
		}
	}()
}

// Completions delivers finished calls in completion order.
func (d *Dispatcher) Completions() <-chan Completion { return d.done }

// Pending is the number of calls whose completion has not been applied.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outstanding
}

func (d *Dispatcher) settle() {
	d.mu.Lock()
	d.outstanding--
	d.mu.Unlock()
}

// Cancel aborts every in-flight call and returns how many there were. The
// aborted calls still complete, with a context error.
func (d *Dispatcher) Cancel() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, cancel := range d.inFlight {
		cancel()
	}
	return len(d.inFlight)
}

// Close cancels everything in flight and waits for the call goroutines to
// exit. Completions not yet read are discarded.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.Cancel()
		close(d.closed)
	})
	d.wg.Wait()
}
