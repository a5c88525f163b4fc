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

package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// Dispatcher consumes devices flagged alert-pending, partitioned by their
// current status, and sends one batch alert per partition. The pending flag
// is cleared only after every required channel accepted the batch, so
// delivery is at-least-once and consumers must tolerate duplicates.
type Dispatcher struct {
	db       db.Service
	required []AlertService
	optional []AlertService
	logger   logger.Logger
	now      func() time.Time
}

// NewDispatcher creates a Dispatcher. Required channels gate the clearing of
// the pending flag; optional channels are best-effort.
func NewDispatcher(database db.Service, required, optional []AlertService, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		db:       database,
		required: required,
		optional: optional,
		logger:   log,
		now:      time.Now,
	}
}

// Tick dispatches both partitions. The up and down batches run concurrently
// on a plain group (no shared cancellation), so one partition failing leaves
// the other's sends unaffected.
func (d *Dispatcher) Tick(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return d.dispatchPartition(ctx, models.StatusUp, KindUp)
	})

	g.Go(func() error {
		return d.dispatchPartition(ctx, models.StatusDown, KindDown)
	})

	return g.Wait()
}

func (d *Dispatcher) dispatchPartition(
	ctx context.Context, status models.DeviceStatus, kind AlertKind) error {
	devices, err := d.db.ListAlertPendingDevices(ctx, status)
	if err != nil {
		return fmt.Errorf("list %s alert batch: %w", kind, err)
	}

	if len(devices) == 0 {
		return nil
	}

	deviceIDs := make([]string, 0, len(devices))
	names := make([]string, 0, len(devices))

	for _, device := range devices {
		deviceIDs = append(deviceIDs, device.DeviceID)

		name := device.DeviceName
		if name == "" {
			name = device.DeviceID
		}

		names = append(names, name)
	}

	alert := &StatusAlert{
		Kind:        kind,
		Title:       fmt.Sprintf("%d device(s) %s", len(names), kind),
		DeviceNames: names,
		Timestamp:   d.now().UTC(),
	}

	for _, channel := range d.required {
		if err := channel.Alert(ctx, alert); err != nil {
			// Pending stays set; the next tick retries the whole batch.
			return fmt.Errorf("%s channel: %w", channel.Name(), err)
		}
	}

	for _, channel := range d.optional {
		if err := channel.Alert(ctx, alert); err != nil {
			if errors.Is(err, ErrWebhookCooldown) || errors.Is(err, ErrWebhookDisabled) {
				d.logger.Debug().
					Str("channel", channel.Name()).
					Str("kind", string(kind)).
					Msg("optional alert channel suppressed")

				continue
			}

			d.logger.Warn().
				Err(err).
				Str("channel", channel.Name()).
				Str("kind", string(kind)).
				Msg("optional alert channel failed")
		}
	}

	if err := d.db.ClearAlertPending(ctx, deviceIDs); err != nil {
		return fmt.Errorf("clear %s alert batch: %w", kind, err)
	}

	d.logger.Info().
		Str("kind", string(kind)).
		Int("devices", len(deviceIDs)).
		Msg("status alert batch dispatched")

	return nil
}
