/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package db implements the sample and device stores on Postgres/Timescale.
package db

import (
	"context"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/carverauto/fleetmon/pkg/db Service

// Service represents all store operations used by the core.
type Service interface {
	Close()
	Init(ctx context.Context) error

	// Device operations.

	UpsertDevice(ctx context.Context, device *models.Device) error
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
	ListDevices(ctx context.Context) ([]*models.Device, error)
	UpdateDeviceStatus(
		ctx context.Context,
		deviceID string,
		status models.DeviceStatus,
		alertPending bool,
		snapshot *models.UsageSnapshot,
		reason string,
		updatedAt time.Time) error
	SetNetworkSummary(ctx context.Context, deviceID string, summary *models.NetworkPeriodSummary) error
	ListAlertPendingDevices(ctx context.Context, status models.DeviceStatus) ([]*models.Device, error)
	ClearAlertPending(ctx context.Context, deviceIDs []string) error
	CountDevicesByStatus(ctx context.Context) (map[models.DeviceStatus]int, error)

	// Sample ingestion (boundary with external collectors).

	StoreCPUSamples(ctx context.Context, samples []*models.CPUSample) error
	StoreMemorySamples(ctx context.Context, samples []*models.MemorySample) error
	StoreDiskSamples(ctx context.Context, samples []*models.DiskSample) error
	StoreNetworkSamples(ctx context.Context, samples []*models.NetworkSample) error

	// Sample reads.

	GetLatestCPUSample(ctx context.Context, deviceID string) (*models.CPUSample, error)
	GetLatestMemorySample(ctx context.Context, deviceID string) (*models.MemorySample, error)
	GetLatestDiskSamples(ctx context.Context, deviceID string) ([]*models.DiskSample, error)
	GetNetworkSamples(ctx context.Context, deviceID string, start, end time.Time) ([]*models.NetworkSample, error)

	// Retention.

	DeleteSamplesBefore(ctx context.Context, kind models.SampleKind, cutoff time.Time) (int64, error)
	DeleteNetworkSamplesInRange(ctx context.Context, deviceID string, start, end time.Time) (int64, error)
}
