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
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/models"
)

func TestMarshalNullable(t *testing.T) {
	t.Run("nil_snapshot_is_sql_null", func(t *testing.T) {
		var snapshot *models.UsageSnapshot

		b, err := marshalNullable(snapshot)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("nil_summary_is_sql_null", func(t *testing.T) {
		var summary *models.NetworkPeriodSummary

		b, err := marshalNullable(summary)
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("present_snapshot_marshals", func(t *testing.T) {
		snapshot := &models.UsageSnapshot{
			CPU: models.PresentMetric(33.33),
			Max: 33.33,
		}

		b, err := marshalNullable(snapshot)
		require.NoError(t, err)

		var decoded models.UsageSnapshot
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, *snapshot, decoded)
	})
}

func TestUpdateDeviceStatusQueryPreservesSnapshot(t *testing.T) {
	// A NULL snapshot parameter (device down, nothing computed) must keep the
	// stored last-known snapshot instead of erasing it.
	assert.Contains(t, updateDeviceStatusQuery, "COALESCE($5, usage_snapshot)")
}

type fakeRow struct {
	vals []any
	err  error
}

func (f *fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}

	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.vals[i].(string)
		case *bool:
			*p = f.vals[i].(bool)
		case *time.Time:
			*p = f.vals[i].(time.Time)
		case *[]byte:
			if f.vals[i] != nil {
				*p = f.vals[i].([]byte)
			}
		}
	}

	return nil
}

func deviceRowVals(t *testing.T, snapshot *models.UsageSnapshot, summary *models.NetworkPeriodSummary) []any {
	t.Helper()

	snapshotJSON, err := marshalNullable(snapshot)
	require.NoError(t, err)

	summaryJSON, err := marshalNullable(summary)
	require.NoError(t, err)

	return []any{
		"dev-1", "web-01", "ubuntu", "24.04", "linux", "6.8", "amd64", "10.0.0.5",
		"trouble", true, "",
		time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		snapshotJSON, summaryJSON,
	}
}

func TestScanDevice(t *testing.T) {
	t.Run("full_row_round_trip", func(t *testing.T) {
		snapshot := &models.UsageSnapshot{
			CPU:         models.PresentMetric(85.5),
			Memory:      models.PresentMetric(40),
			Max:         85.5,
			LastUpdated: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		}
		summary := &models.NetworkPeriodSummary{
			TotalBytesReceived: 5000,
			DataPoints:         3,
		}

		device, err := scanDevice(&fakeRow{vals: deviceRowVals(t, snapshot, summary)})
		require.NoError(t, err)

		assert.Equal(t, "dev-1", device.DeviceID)
		assert.Equal(t, "web-01", device.DeviceName)
		assert.Equal(t, models.StatusTrouble, device.Status)
		assert.True(t, device.AlertPending)
		require.NotNil(t, device.UsageSnapshot)
		assert.Equal(t, *snapshot, *device.UsageSnapshot)
		require.NotNil(t, device.PreviousPeriodNetwork)
		assert.Equal(t, *summary, *device.PreviousPeriodNetwork)
	})

	t.Run("null_jsonb_columns_stay_nil", func(t *testing.T) {
		device, err := scanDevice(&fakeRow{vals: deviceRowVals(t, nil, nil)})
		require.NoError(t, err)

		assert.Nil(t, device.UsageSnapshot)
		assert.Nil(t, device.PreviousPeriodNetwork)
	})

	t.Run("malformed_snapshot_json", func(t *testing.T) {
		vals := deviceRowVals(t, nil, nil)
		vals[13] = []byte(`{not json`)

		_, err := scanDevice(&fakeRow{vals: vals})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFailedToScan)
	})

	t.Run("no_rows_passes_through", func(t *testing.T) {
		_, err := scanDevice(&fakeRow{err: pgx.ErrNoRows})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestSelectDeviceColumnsMatchesScan(t *testing.T) {
	// scanDevice binds 15 destinations; the select list must stay in lockstep.
	columns := strings.TrimPrefix(strings.Split(selectDeviceColumns, "FROM")[0], "\nSELECT ")
	assert.Len(t, strings.Split(columns, ","), 15)
}
