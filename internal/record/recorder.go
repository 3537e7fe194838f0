// Package record writes simulation frames to disk off the simulation
// goroutine.
package record

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"go.uber.org/zap"

	"github.com/quillaja/gravbox/internal/physics"
)

// Frame is a copy of the body collection after one tick. Bodies keep their
// spawn order, which doubles as their id.
type Frame struct {
	Index  int
	Bodies []physics.Body
	Colors []color.RGBA // optional, parallel to Bodies
}

// Sink consumes frames in order. A sink is used by one goroutine at a time.
type Sink interface {
	WriteFrame(f *Frame) error
	Close() error
}

// Recorder fans frames out to its sinks, each served by its own goroutine
// over a bounded queue. Record blocks when a sink falls a full queue behind.
type Recorder struct {
	log     *zap.Logger
	workers []*worker
	wg      sync.WaitGroup
	closed  bool
}

type worker struct {
	name   string
	sink   Sink
	ch     chan *Frame
	failed int
	err    error // first write error
}

// NewRecorder starts one worker per sink. Names are used in log output.
func NewRecorder(log *zap.Logger, queue int, sinks map[string]Sink) *Recorder {
	r := &Recorder{log: log}
	for name, s := range sinks {
		w := &worker{name: name, sink: s, ch: make(chan *Frame, queue)}
		r.workers = append(r.workers, w)
		r.wg.Add(1)
		go r.run(w)
	}
	return r
}

func (r *Recorder) run(w *worker) {
	defer r.wg.Done()
	for f := range w.ch {
		if err := w.sink.WriteFrame(f); err != nil {
			w.failed++
			if w.err == nil {
				w.err = err
				r.log.Warn("frame write failed", zap.String("sink", w.name), zap.Int("frame", f.Index), zap.Error(err))
			}
		}
	}
}

// Record queues f for every sink. f must not be modified afterwards.
func (r *Recorder) Record(f *Frame) {
	if r.closed {
		return
	}
	for _, w := range r.workers {
		w.ch <- f
	}
}

// Close drains the queues, closes the sinks and reports every failure.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for _, w := range r.workers {
		close(w.ch)
	}
	r.wg.Wait()

	var errs []error
	for _, w := range r.workers {
		if w.err != nil {
			errs = append(errs, fmt.Errorf("%s: %d frames failed, first: %w", w.name, w.failed, w.err))
		}
		if err := w.sink.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", w.name, err))
		}
	}
	return errors.Join(errs...)
}

// Len returns the number of sinks.
func (r *Recorder) Len() int { return len(r.workers) }
