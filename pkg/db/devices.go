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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/carverauto/fleetmon/pkg/models"
)

const selectDeviceColumns = `
SELECT device_id, device_name, os_platform, os_release, os_type, os_version,
	os_architecture, ip, status, alert_pending, status_reason,
	last_status_update, first_seen, usage_snapshot, previous_period_network
FROM devices`

// UpsertDevice registers a device or refreshes its identity fields. Status
// and alert_pending are never touched here; those belong to the monitor and
// the dispatcher.
func (db *DB) UpsertDevice(ctx context.Context, device *models.Device) error {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	const query = `
INSERT INTO devices (
	device_id, device_name, os_platform, os_release, os_type, os_version,
	os_architecture, ip, first_seen
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,COALESCE(NULLIF($9, '0001-01-01 00:00:00+00'::timestamptz), now())
)
ON CONFLICT (device_id) DO UPDATE SET
	device_name     = EXCLUDED.device_name,
	os_platform     = EXCLUDED.os_platform,
	os_release      = EXCLUDED.os_release,
	os_type         = EXCLUDED.os_type,
	os_version      = EXCLUDED.os_version,
	os_architecture = EXCLUDED.os_architecture,
	ip              = EXCLUDED.ip`

	_, err := db.pool.Exec(qctx, query,
		device.DeviceID, device.DeviceName, device.OSPlatform, device.OSRelease,
		device.OSType, device.OSVersion, device.OSArchitecture, device.IP,
		device.FirstSeen.UTC())
	if err != nil {
		return fmt.Errorf("%w: upsert device %s: %w", ErrFailedToInsert, device.DeviceID, err)
	}

	return nil
}

func (db *DB) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	row := db.pool.QueryRow(qctx, selectDeviceColumns+` WHERE device_id = $1`, deviceID)

	device, err := scanDevice(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
	}

	if err != nil {
		return nil, err
	}

	return device, nil
}

func (db *DB) ListDevices(ctx context.Context) ([]*models.Device, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.pool.Query(qctx, selectDeviceColumns+` ORDER BY device_id`)
	if err != nil {
		return nil, fmt.Errorf("%w: list devices: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var devices []*models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list devices: %w", ErrFailedToQuery, err)
	}

	return devices, nil
}

// updateDeviceStatusQuery keeps the stored snapshot when the new one is NULL:
// a device classified down has no usage to report, and its last-known
// snapshot must survive the outage.
const updateDeviceStatusQuery = `
UPDATE devices SET
	status             = $2,
	alert_pending      = $3,
	status_reason      = $4,
	usage_snapshot     = COALESCE($5, usage_snapshot),
	last_status_update = $6
WHERE device_id = $1`

// UpdateDeviceStatus persists the classifier's verdict for one device in a
// single statement so status, pending flag and snapshot change atomically.
func (db *DB) UpdateDeviceStatus(
	ctx context.Context,
	deviceID string,
	status models.DeviceStatus,
	alertPending bool,
	snapshot *models.UsageSnapshot,
	reason string,
	updatedAt time.Time,
) error {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	snapshotJSON, err := marshalNullable(snapshot)
	if err != nil {
		return fmt.Errorf("usage snapshot: %w", err)
	}

	tag, err := db.pool.Exec(qctx, updateDeviceStatusQuery,
		deviceID, string(status), alertPending, reason, snapshotJSON, updatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: update device status %s: %w", ErrFailedToInsert, deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
	}

	return nil
}

// SetNetworkSummary writes the rollup result onto the device.
func (db *DB) SetNetworkSummary(
	ctx context.Context, deviceID string, summary *models.NetworkPeriodSummary) error {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	summaryJSON, err := marshalNullable(summary)
	if err != nil {
		return fmt.Errorf("network summary: %w", err)
	}

	tag, err := db.pool.Exec(qctx,
		`UPDATE devices SET previous_period_network = $2 WHERE device_id = $1`,
		deviceID, summaryJSON)
	if err != nil {
		return fmt.Errorf("%w: set network summary %s: %w", ErrFailedToInsert, deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, deviceID)
	}

	return nil
}

// ListAlertPendingDevices returns devices awaiting an alert for one status
// partition.
func (db *DB) ListAlertPendingDevices(
	ctx context.Context, status models.DeviceStatus) ([]*models.Device, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.pool.Query(qctx,
		selectDeviceColumns+` WHERE alert_pending AND status = $1 ORDER BY device_name`,
		string(status))
	if err != nil {
		return nil, fmt.Errorf("%w: alert pending devices: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	var devices []*models.Device

	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, err
		}

		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: alert pending devices: %w", ErrFailedToQuery, err)
	}

	return devices, nil
}

// ClearAlertPending resets the pending flag for an acknowledged batch. The
// guard on alert_pending keeps the update idempotent under dispatcher
// retries.
func (db *DB) ClearAlertPending(ctx context.Context, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	_, err := db.pool.Exec(qctx,
		`UPDATE devices SET alert_pending = FALSE WHERE device_id = ANY($1) AND alert_pending`,
		deviceIDs)
	if err != nil {
		return fmt.Errorf("%w: clear alert pending: %w", ErrFailedToInsert, err)
	}

	return nil
}

// CountDevicesByStatus returns the fleet status summary.
func (db *DB) CountDevicesByStatus(ctx context.Context) (map[models.DeviceStatus]int, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	rows, err := db.pool.Query(qctx, `SELECT status, count(*) FROM devices GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%w: status counts: %w", ErrFailedToQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.DeviceStatus]int)

	for rows.Next() {
		var (
			status string
			count  int
		)

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: status counts: %w", ErrFailedToScan, err)
		}

		counts[models.DeviceStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: status counts: %w", ErrFailedToQuery, err)
	}

	return counts, nil
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (*models.Device, error) {
	var (
		device                    models.Device
		status                    string
		snapshotJSON, summaryJSON []byte
	)

	err := row.Scan(
		&device.DeviceID, &device.DeviceName, &device.OSPlatform, &device.OSRelease,
		&device.OSType, &device.OSVersion, &device.OSArchitecture, &device.IP,
		&status, &device.AlertPending, &device.StatusReason,
		&device.LastStatusUpdate, &device.FirstSeen, &snapshotJSON, &summaryJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("%w: device: %w", ErrFailedToScan, err)
	}

	device.Status = models.DeviceStatus(status)

	if len(snapshotJSON) > 0 {
		var snapshot models.UsageSnapshot
		if err := json.Unmarshal(snapshotJSON, &snapshot); err != nil {
			return nil, fmt.Errorf("%w: usage snapshot: %w", ErrFailedToScan, err)
		}

		device.UsageSnapshot = &snapshot
	}

	if len(summaryJSON) > 0 {
		var summary models.NetworkPeriodSummary
		if err := json.Unmarshal(summaryJSON, &summary); err != nil {
			return nil, fmt.Errorf("%w: network summary: %w", ErrFailedToScan, err)
		}

		device.PreviousPeriodNetwork = &summary
	}

	return &device, nil
}

// marshalNullable maps a nil pointer to SQL NULL instead of the JSON "null"
// literal.
func marshalNullable(v any) ([]byte, error) {
	switch val := v.(type) {
	case *models.UsageSnapshot:
		if val == nil {
			return nil, nil
		}
	case *models.NetworkPeriodSummary:
		if val == nil {
			return nil, nil
		}
	}

	return json.Marshal(v)
}
