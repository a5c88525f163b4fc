/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package scheduler runs named periodic tasks on independent intervals. It
// replaces process-wide timers with an explicit object whose tasks can be
// invoked one tick at a time in tests.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/fleetmon/pkg/logger"
)

var ErrUnknownTask = errors.New("unknown task")

// TaskFunc is one unit of periodic work. Errors are logged, never fatal.
type TaskFunc func(ctx context.Context) error

type task struct {
	name     string
	interval time.Duration
	fn       TaskFunc
	running  atomic.Bool
}

// Scheduler owns a fixed set of periodic tasks. Tasks interact only through
// the store, so no application-level lock is shared between them; the only
// guarantee enforced here is that two runs of the same task never overlap.
type Scheduler struct {
	clock  Clock
	logger logger.Logger
	tasks  []*task
}

// New creates a Scheduler on the real clock.
func New(log logger.Logger) *Scheduler {
	return NewWithClock(realClock{}, log)
}

// NewWithClock creates a Scheduler with an injected clock for tests.
func NewWithClock(clock Clock, log logger.Logger) *Scheduler {
	return &Scheduler{
		clock:  clock,
		logger: log,
	}
}

// Add registers a named periodic task. Add must be called before Run.
func (s *Scheduler) Add(name string, interval time.Duration, fn TaskFunc) {
	s.tasks = append(s.tasks, &task{
		name:     name,
		interval: interval,
		fn:       fn,
	})
}

// Run drives every registered task until ctx is canceled. Each task fires
// once immediately, then on its interval.
func (s *Scheduler) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.tasks {
		g.Go(func() error {
			return s.runLoop(gctx, t)
		})
	}

	return g.Wait()
}

func (s *Scheduler) runLoop(ctx context.Context, t *task) error {
	s.logger.Info().
		Str("task", t.name).
		Str("interval", t.interval.String()).
		Msg("starting periodic task")

	s.fire(ctx, t)

	ticker := s.clock.Ticker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("task", t.name).Msg("periodic task stopping")
			return nil
		case <-ticker.Chan():
			s.fire(ctx, t)
		}
	}
}

// fire runs one tick of a task, skipping if the previous tick is still in
// flight.
func (s *Scheduler) fire(ctx context.Context, t *task) {
	if !t.running.CompareAndSwap(false, true) {
		s.logger.Warn().Str("task", t.name).Msg("previous tick still running, skipping")
		return
	}
	defer t.running.Store(false)

	started := s.clock.Now()

	if err := t.fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error().
			Err(err).
			Str("task", t.name).
			Msg("periodic task tick failed")

		return
	}

	s.logger.Debug().
		Str("task", t.name).
		Dur("elapsed", s.clock.Now().Sub(started)).
		Msg("periodic task tick completed")
}

// TickNow runs a single tick of one task by name, for manual invocation in
// tests and tooling.
func (s *Scheduler) TickNow(ctx context.Context, name string) error {
	for _, t := range s.tasks {
		if t.name == name {
			if !t.running.CompareAndSwap(false, true) {
				return nil
			}
			defer t.running.Store(false)

			return t.fn(ctx)
		}
	}

	return fmt.Errorf("%w: %s", ErrUnknownTask, name)
}
