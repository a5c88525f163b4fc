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

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carverauto/fleetmon/pkg/models"
)

const (
	insertCPUSampleSQL = `
INSERT INTO cpu_samples (
	device_id,
	usage_percent,
	user_percent,
	sys_percent,
	idle_seconds,
	total_seconds,
	timestamp
) VALUES (
	$1,$2,$3,$4,$5,$6,$7
)`

	insertMemorySampleSQL = `
INSERT INTO memory_samples (
	device_id,
	usage_percent,
	total_bytes,
	used_bytes,
	free_bytes,
	timestamp
) VALUES (
	$1,$2,$3,$4,$5,$6
)`

	insertDiskSampleSQL = `
INSERT INTO disk_samples (
	device_id,
	filesystem,
	mount_point,
	size_bytes,
	used_bytes,
	usage_percent,
	timestamp
) VALUES (
	$1,$2,$3,$4,$5,$6,$7
)`

	insertNetworkSampleSQL = `
INSERT INTO network_samples (
	device_id,
	interface,
	bytes_received,
	bytes_sent,
	packets_received,
	packets_sent,
	errors_received,
	errors_sent,
	timestamp
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9
)`
)

func (db *DB) StoreCPUSamples(ctx context.Context, samples []*models.CPUSample) error {
	if len(samples) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, s := range samples {
		if s == nil {
			continue
		}

		batch.Queue(insertCPUSampleSQL,
			s.DeviceID, s.UsagePercent, s.UserPercent, s.SysPercent,
			s.IdleSeconds, s.TotalSeconds, s.Timestamp.UTC())
	}

	if batch.Len() == 0 {
		return nil
	}

	return db.send(ctx, batch, "cpu samples")
}

func (db *DB) StoreMemorySamples(ctx context.Context, samples []*models.MemorySample) error {
	if len(samples) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, s := range samples {
		if s == nil {
			continue
		}

		batch.Queue(insertMemorySampleSQL,
			s.DeviceID, s.UsagePercent, int64(s.TotalBytes), int64(s.UsedBytes),
			int64(s.FreeBytes), s.Timestamp.UTC())
	}

	if batch.Len() == 0 {
		return nil
	}

	return db.send(ctx, batch, "memory samples")
}

func (db *DB) StoreDiskSamples(ctx context.Context, samples []*models.DiskSample) error {
	if len(samples) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, s := range samples {
		if s == nil {
			continue
		}

		batch.Queue(insertDiskSampleSQL,
			s.DeviceID, s.Filesystem, s.MountPoint, s.SizeBytes,
			s.UsedBytes, s.UsagePercent, s.Timestamp.UTC())
	}

	if batch.Len() == 0 {
		return nil
	}

	return db.send(ctx, batch, "disk samples")
}

func (db *DB) StoreNetworkSamples(ctx context.Context, samples []*models.NetworkSample) error {
	if len(samples) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for _, s := range samples {
		if s == nil {
			continue
		}

		batch.Queue(insertNetworkSampleSQL,
			s.DeviceID, s.Interface, s.BytesReceived, s.BytesSent,
			s.PacketsReceived, s.PacketsSent, s.ErrorsReceived, s.ErrorsSent,
			s.Timestamp.UTC())
	}

	if batch.Len() == 0 {
		return nil
	}

	return db.send(ctx, batch, "network samples")
}

// GetLatestCPUSample returns the newest CPU sample for a device, or nil when
// the device has never reported. Timestamp ties break by insertion order.
func (db *DB) GetLatestCPUSample(ctx context.Context, deviceID string) (*models.CPUSample, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	const query = `
SELECT device_id, usage_percent, user_percent, sys_percent, idle_seconds, total_seconds, timestamp
FROM cpu_samples
WHERE device_id = $1
ORDER BY timestamp DESC, id DESC
LIMIT 1`

	var s models.CPUSample

	err := db.pool.QueryRow(qctx, query, deviceID).Scan(
		&s.DeviceID, &s.UsagePercent, &s.UserPercent, &s.SysPercent,
		&s.IdleSeconds, &s.TotalSeconds, &s.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: latest cpu sample: %w", ErrFailedToQuery, err)
	}

	return &s, nil
}

// GetLatestMemorySample returns the newest memory sample for a device, or nil.
func (db *DB) GetLatestMemorySample(ctx context.Context, deviceID string) (*models.MemorySample, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	const query = `
SELECT device_id, usage_percent, total_bytes, used_bytes, free_bytes, timestamp
FROM memory_samples
WHERE device_id = $1
ORDER BY timestamp DESC, id DESC
LIMIT 1`

	var (
		s                           models.MemorySample
		totalBytes, used, freeBytes int64
	)

	err := db.pool.QueryRow(qctx, query, deviceID).Scan(
		&s.DeviceID, &s.UsagePercent, &totalBytes, &used, &freeBytes, &s.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: latest memory sample: %w", ErrFailedToQuery, err)
	}

	s.TotalBytes = uint64(totalBytes)
	s.UsedBytes = uint64(used)
	s.FreeBytes = uint64(freeBytes)

	return &s, nil
}

// GetLatestDiskSamples returns the newest sample per filesystem for a device.
func (db *DB) GetLatestDiskSamples(ctx context.Context, deviceID string) ([]*models.DiskSample, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	const query = `
SELECT DISTINCT ON (filesystem)
	device_id, filesystem, mount_point, size_bytes, used_bytes, usage_percent, timestamp
FROM disk_samples
WHERE device_id = $1
ORDER BY filesystem, timestamp DESC, id DESC`

	rows, err := db.pool.Query(qctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: latest disk samples: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var samples []*models.DiskSample

	for rows.Next() {
		var s models.DiskSample

		if err := rows.Scan(&s.DeviceID, &s.Filesystem, &s.MountPoint,
			&s.SizeBytes, &s.UsedBytes, &s.UsagePercent, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: disk sample: %w", ErrFailedToScan, err)
		}

		samples = append(samples, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: disk samples: %w", ErrFailedToQuery, err)
	}

	return samples, nil
}

// GetNetworkSamples returns a device's network samples in [start, end],
// ordered by timestamp with insertion order breaking ties.
func (db *DB) GetNetworkSamples(
	ctx context.Context, deviceID string, start, end time.Time) ([]*models.NetworkSample, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	const query = `
SELECT device_id, interface, bytes_received, bytes_sent,
	packets_received, packets_sent, errors_received, errors_sent, timestamp
FROM network_samples
WHERE device_id = $1
  AND timestamp BETWEEN $2 AND $3
ORDER BY timestamp, id`

	rows, err := db.pool.Query(qctx, query, deviceID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: network samples: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var samples []*models.NetworkSample

	for rows.Next() {
		var s models.NetworkSample

		if err := rows.Scan(&s.DeviceID, &s.Interface, &s.BytesReceived, &s.BytesSent,
			&s.PacketsReceived, &s.PacketsSent, &s.ErrorsReceived, &s.ErrorsSent,
			&s.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: network sample: %w", ErrFailedToScan, err)
		}

		samples = append(samples, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: network samples: %w", ErrFailedToQuery, err)
	}

	return samples, nil
}
