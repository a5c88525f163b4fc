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
	"fmt"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
)

var sampleTables = map[models.SampleKind]string{
	models.SampleKindCPU:     "cpu_samples",
	models.SampleKindMemory:  "memory_samples",
	models.SampleKindDisk:    "disk_samples",
	models.SampleKindNetwork: "network_samples",
}

// DeleteSamplesBefore removes all samples of one kind older than cutoff and
// reports how many rows were deleted.
func (db *DB) DeleteSamplesBefore(
	ctx context.Context, kind models.SampleKind, cutoff time.Time) (int64, error) {
	table, ok := sampleTables[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSampleKind, kind)
	}

	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	// Table name comes from the fixed kind map, never from input.
	tag, err := db.pool.Exec(qctx,
		fmt.Sprintf(`DELETE FROM %s WHERE timestamp < $1`, table), cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: prune %s: %w", ErrFailedToQuery, table, err)
	}

	return tag.RowsAffected(), nil
}

// DeleteNetworkSamplesInRange removes one device's network samples covered by
// a written rollup summary.
func (db *DB) DeleteNetworkSamplesInRange(
	ctx context.Context, deviceID string, start, end time.Time) (int64, error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	tag, err := db.pool.Exec(qctx,
		`DELETE FROM network_samples WHERE device_id = $1 AND timestamp BETWEEN $2 AND $3`,
		deviceID, start.UTC(), end.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: delete network samples for %s: %w", ErrFailedToQuery, deviceID, err)
	}

	return tag.RowsAffected(), nil
}
