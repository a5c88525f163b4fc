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

package retention

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/health"
	"github.com/carverauto/fleetmon/pkg/logger"
)

// Rollup compresses the previous calendar month of network samples into one
// NetworkPeriodSummary per device. Raw samples are deleted only after the
// summary write succeeded, so a crash between the two leaves data that the
// next run re-reduces to the same summary.
type Rollup struct {
	db     db.Service
	logger logger.Logger
	now    func() time.Time

	mu         sync.Mutex
	lastPeriod time.Time
}

// NewRollup creates the monthly rollup job.
func NewRollup(database db.Service, log logger.Logger) *Rollup {
	return &Rollup{
		db:     database,
		logger: log,
		now:    time.Now,
	}
}

// Tick is the scheduler entrypoint. It fires the rollup on the first day of
// each month and is a no-op the rest of the time; an in-memory guard keeps
// repeated ticks within the boundary day from re-running the job. The guard
// is recorded only after a successful run, so a failed run is retried on the
// next tick of the boundary day.
func (r *Rollup) Tick(ctx context.Context) error {
	now := r.now()
	if now.Day() != 1 {
		return nil
	}

	period := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	r.mu.Lock()
	done := r.lastPeriod.Equal(period)
	r.mu.Unlock()

	if done {
		return nil
	}

	if err := r.Run(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	r.lastPeriod = period
	r.mu.Unlock()

	return nil
}

// Run rolls up the previous calendar month for every device. Per-device
// failures are logged and skipped so one bad device never blocks the fleet.
func (r *Rollup) Run(ctx context.Context) error {
	start, end := previousMonthRange(r.now())

	devices, err := r.db.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	var failed int

	for _, device := range devices {
		if err := r.rollupDevice(ctx, device.DeviceID, start, end); err != nil {
			failed++

			r.logger.Error().
				Err(err).
				Str("device_id", device.DeviceID).
				Msg("network rollup failed for device")
		}
	}

	r.logger.Info().
		Int("devices", len(devices)).
		Int("failed", failed).
		Time("period_start", start).
		Time("period_end", end).
		Msg("monthly network rollup completed")

	return nil
}

func (r *Rollup) rollupDevice(ctx context.Context, deviceID string, start, end time.Time) error {
	samples, err := r.db.GetNetworkSamples(ctx, deviceID, start, end)
	if err != nil {
		return fmt.Errorf("read network samples: %w", err)
	}

	// Zero samples still record an all-zero summary so consumers can tell
	// "no traffic" from "never rolled up".
	summary := health.SummarizeWindow(samples, start, end)

	if err := r.db.SetNetworkSummary(ctx, deviceID, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if summary.DataPoints == 0 {
		return nil
	}

	deleted, err := r.db.DeleteNetworkSamplesInRange(ctx, deviceID, start, end)
	if err != nil {
		// Summary is in place; leftover raw samples are re-reduced to the
		// same totals on the next run.
		return fmt.Errorf("delete rolled-up samples: %w", err)
	}

	r.logger.Debug().
		Str("device_id", deviceID).
		Int("data_points", summary.DataPoints).
		Int64("deleted", deleted).
		Msg("device network rollup stored")

	return nil
}

// previousMonthRange returns the inclusive bounds of the previous calendar
// month relative to now.
func previousMonthRange(now time.Time) (start, end time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start = monthStart.AddDate(0, -1, 0)
	end = monthStart.Add(-time.Nanosecond)

	return start, end
}
