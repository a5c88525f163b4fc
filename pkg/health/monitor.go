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

package health

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// MonitorConfig tunes one classification tick.
type MonitorConfig struct {
	Classifier   ClassifierConfig
	Workers      int
	QueryTimeout time.Duration
}

// Monitor evaluates every device's health on each scheduler tick. It is the
// sole writer of device status and the only component that sets the alert
// pending flag.
type Monitor struct {
	db     db.Service
	config MonitorConfig
	logger logger.Logger
	now    func() time.Time
}

// NewMonitor creates a Monitor over the given store.
func NewMonitor(database db.Service, config MonitorConfig, log logger.Logger) *Monitor {
	if config.Workers <= 0 {
		config.Workers = 8
	}

	if config.QueryTimeout <= 0 {
		config.QueryTimeout = 10 * time.Second
	}

	return &Monitor{
		db:     database,
		config: config,
		logger: log,
		now:    time.Now,
	}
}

// Tick classifies every device once. Devices are evaluated concurrently with
// a bounded worker pool; a failure on one device is logged and skipped
// without aborting the rest.
func (m *Monitor) Tick(ctx context.Context) error {
	devices, err := m.db.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}

	if len(devices) == 0 {
		return nil
	}

	var processed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.config.Workers)

	for _, device := range devices {
		g.Go(func() error {
			if err := m.evaluate(gctx, device); err != nil {
				failed.Add(1)
				m.logger.Warn().
					Err(err).
					Str("device_id", device.DeviceID).
					Msg("skipping device for this tick")

				return nil
			}

			processed.Add(1)

			return nil
		})
	}

	// Worker funcs never return errors; Wait only surfaces ctx cancellation.
	if err := g.Wait(); err != nil {
		return err
	}

	m.logger.Info().
		Int64("processed", processed.Load()).
		Int64("failed", failed.Load()).
		Msg("device status updated")

	return nil
}

// evaluate runs the classify/debounce/persist sequence for one device. The
// three metric reads are issued concurrently and joined before
// classification.
func (m *Monitor) evaluate(ctx context.Context, device *models.Device) error {
	rctx, cancel := context.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()

	var (
		cpu    *models.CPUSample
		memory *models.MemorySample
		disks  []*models.DiskSample
	)

	g, gctx := errgroup.WithContext(rctx)

	g.Go(func() error {
		var err error
		cpu, err = m.db.GetLatestCPUSample(gctx, device.DeviceID)

		return err
	})

	g.Go(func() error {
		var err error
		memory, err = m.db.GetLatestMemorySample(gctx, device.DeviceID)

		return err
	})

	g.Go(func() error {
		var err error
		disks, err = m.db.GetLatestDiskSamples(gctx, device.DeviceID)

		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("read samples: %w", err)
	}

	now := m.now()
	verdict := Classify(now, cpu, memory, disks, m.config.Classifier)
	pending := NextAlertPending(device.Status, verdict.Status, device.AlertPending)

	err := m.db.UpdateDeviceStatus(ctx,
		device.DeviceID, verdict.Status, pending, verdict.Snapshot, verdict.Reason, now)
	if err != nil {
		return fmt.Errorf("persist status: %w", err)
	}

	if verdict.Status != device.Status {
		m.logger.Debug().
			Str("device_id", device.DeviceID).
			Str("previous", string(device.Status)).
			Str("status", string(verdict.Status)).
			Bool("alert_pending", pending).
			Msg("device status transition")
	}

	return nil
}
