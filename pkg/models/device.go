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

// Package models defines the shared data model for the fleetmon core.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the derived health classification of a device.
type DeviceStatus string

const (
	StatusUp       DeviceStatus = "up"
	StatusTrouble  DeviceStatus = "trouble"
	StatusCritical DeviceStatus = "critical"
	StatusDown     DeviceStatus = "down"
)

// deviceIDNamespace is the fixed UUID namespace for hardware-derived device IDs.
var deviceIDNamespace = uuid.MustParse("9a1c8f2e-4d3b-4f6a-9c21-7e5b0a8d4e10")

// DeviceIDFromHardwareID derives the stable device identifier from a hardware
// identifier. The mapping is deterministic so re-registration of the same host
// always yields the same device.
func DeviceIDFromHardwareID(hardwareID string) string {
	return uuid.NewSHA1(deviceIDNamespace, []byte(hardwareID)).String()
}

// Device represents one monitored host. Status and AlertPending are owned by
// the health monitor and alert dispatcher; ingestion never mutates them.
type Device struct {
	DeviceID              string                `json:"device_id"`
	DeviceName            string                `json:"device_name"`
	OSPlatform            string                `json:"os_platform,omitempty"`
	OSRelease             string                `json:"os_release,omitempty"`
	OSType                string                `json:"os_type,omitempty"`
	OSVersion             string                `json:"os_version,omitempty"`
	OSArchitecture        string                `json:"os_architecture,omitempty"`
	IP                    string                `json:"ip,omitempty"`
	Status                DeviceStatus          `json:"status"`
	AlertPending          bool                  `json:"alert_pending"`
	StatusReason          string                `json:"status_reason,omitempty"`
	LastStatusUpdate      time.Time             `json:"last_status_update"`
	FirstSeen             time.Time             `json:"first_seen"`
	UsageSnapshot         *UsageSnapshot        `json:"usage_snapshot,omitempty"`
	PreviousPeriodNetwork *NetworkPeriodSummary `json:"previous_period_network,omitempty"`
}

// UsageSnapshot is the last computed usage set for a device. Per-metric
// presence is kept so "no data" stays distinguishable from "0% usage".
type UsageSnapshot struct {
	CPU         Metric    `json:"cpu"`
	Memory      Metric    `json:"memory"`
	Disk        Metric    `json:"disk"`
	Max         float64   `json:"max"`
	LastUpdated time.Time `json:"last_updated"`
}

// Metric is a tagged optional usage value. Absent metrics collapse to zero
// only at the point of computing the maximum usage.
type Metric struct {
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// PresentMetric wraps a usage value that was actually observed.
func PresentMetric(value float64) Metric {
	return Metric{Value: value, Present: true}
}

// OrZero collapses an absent metric to zero.
func (m Metric) OrZero() float64 {
	if !m.Present {
		return 0
	}

	return m.Value
}
