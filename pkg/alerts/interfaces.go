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

// Package alerts delivers batched status notifications over email, push and
// webhook channels.
package alerts

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination=mock_alerts.go -package=alerts github.com/carverauto/fleetmon/pkg/alerts AlertService

var (
	ErrWebhookCooldown  = errors.New("webhook alert rate limited by cooldown")
	ErrWebhookDisabled  = errors.New("webhook alerter is disabled")
	ErrChannelNotReady  = errors.New("alert channel not configured")
	ErrDeliveryRejected = errors.New("alert delivery rejected")
)

// AlertKind partitions batch alerts by the status edge that caused them.
type AlertKind string

const (
	KindUp   AlertKind = "up"
	KindDown AlertKind = "down"
)

// StatusAlert is one batched notification: every device that crossed the
// same edge since the last dispatch tick.
type StatusAlert struct {
	Kind        AlertKind `json:"kind"`
	Title       string    `json:"title"`
	DeviceNames []string  `json:"device_names"`
	Timestamp   time.Time `json:"timestamp"`
}

// AlertService sends one alert over one channel. Implementations must treat
// delivery as at-least-once: the dispatcher retries a batch until every
// required channel accepts it.
type AlertService interface {
	Name() string
	Alert(ctx context.Context, alert *StatusAlert) error
}
