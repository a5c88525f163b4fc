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

package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/logger"
)

type fakeTicker struct {
	ch chan time.Time
}

func (f *fakeTicker) Chan() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *fakeClock) Now() time.Time {
	return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
}

func (f *fakeClock) Ticker(time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{ch: make(chan time.Time, 1)}
	f.tickers = append(f.tickers, t)

	return t
}

func (f *fakeClock) tickerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.tickers)
}

func (f *fakeClock) tick() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tickers {
		t.ch <- time.Time{}
	}
}

func TestSchedulerRunFiresImmediatelyAndOnTicks(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock, logger.NewTestLogger())

	runs := make(chan struct{}, 8)
	s.Add("tick-counter", time.Minute, func(context.Context) error {
		runs <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// First fire happens before the ticker starts.
	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("task did not fire on startup")
	}

	require.Eventually(t, func() bool {
		return clock.tickerCount() == 1
	}, time.Second, time.Millisecond)

	clock.tick()

	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("task did not fire on tick")
	}

	cancel()

	require.NoError(t, <-done)
}

func TestSchedulerRunTaskErrorIsNotFatal(t *testing.T) {
	clock := &fakeClock{}
	s := NewWithClock(clock, logger.NewTestLogger())

	var calls atomic.Int64

	s.Add("flaky", time.Minute, func(context.Context) error {
		calls.Add(1)
		return errors.New("tick failed")
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		return calls.Load() >= 1 && clock.tickerCount() == 1
	}, time.Second, time.Millisecond)

	clock.tick()

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()

	require.NoError(t, <-done)
}

func TestSchedulerTickNow(t *testing.T) {
	s := NewWithClock(&fakeClock{}, logger.NewTestLogger())

	var calls atomic.Int64

	s.Add("manual", time.Hour, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, s.TickNow(context.Background(), "manual"))
	assert.Equal(t, int64(1), calls.Load())

	err := s.TickNow(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestSchedulerTickNowSkipsWhileRunning(t *testing.T) {
	s := NewWithClock(&fakeClock{}, logger.NewTestLogger())

	var calls atomic.Int64

	started := make(chan struct{})
	release := make(chan struct{})

	s.Add("slow", time.Hour, func(context.Context) error {
		calls.Add(1)
		close(started)
		<-release

		return nil
	})

	done := make(chan error, 1)
	go func() { done <- s.TickNow(context.Background(), "slow") }()

	<-started

	// Overlapping invocation is dropped, not queued.
	require.NoError(t, s.TickNow(context.Background(), "slow"))
	assert.Equal(t, int64(1), calls.Load())

	close(release)
	require.NoError(t, <-done)
}
