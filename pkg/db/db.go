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

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carverauto/fleetmon/pkg/logger"
)

// DB implements Service on a pgx connection pool.
type DB struct {
	pool         *pgxpool.Pool
	logger       logger.Logger
	queryTimeout time.Duration
}

// New wraps a pgx pool as the store Service. queryTimeout bounds every
// individual query so no store call blocks indefinitely.
func New(pool *pgxpool.Pool, log logger.Logger, queryTimeout time.Duration) *DB {
	if queryTimeout <= 0 {
		queryTimeout = 10 * time.Second
	}

	return &DB{
		pool:         pool,
		logger:       log,
		queryTimeout: queryTimeout,
	}
}

func (db *DB) Close() {
	db.pool.Close()
}

// withTimeout derives the bounded context used for a single store call.
func (db *DB) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, db.queryTimeout)
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS devices (
		device_id               TEXT PRIMARY KEY,
		device_name             TEXT NOT NULL DEFAULT '',
		os_platform             TEXT NOT NULL DEFAULT '',
		os_release              TEXT NOT NULL DEFAULT '',
		os_type                 TEXT NOT NULL DEFAULT '',
		os_version              TEXT NOT NULL DEFAULT '',
		os_architecture         TEXT NOT NULL DEFAULT '',
		ip                      TEXT NOT NULL DEFAULT '',
		status                  TEXT NOT NULL DEFAULT 'up',
		alert_pending           BOOLEAN NOT NULL DEFAULT FALSE,
		status_reason           TEXT NOT NULL DEFAULT '',
		last_status_update      TIMESTAMPTZ NOT NULL DEFAULT now(),
		first_seen              TIMESTAMPTZ NOT NULL DEFAULT now(),
		usage_snapshot          JSONB,
		previous_period_network JSONB
	)`,
	`CREATE TABLE IF NOT EXISTS cpu_samples (
		id            BIGSERIAL PRIMARY KEY,
		device_id     TEXT NOT NULL,
		usage_percent DOUBLE PRECISION NOT NULL,
		user_percent  DOUBLE PRECISION NOT NULL DEFAULT 0,
		sys_percent   DOUBLE PRECISION NOT NULL DEFAULT 0,
		idle_seconds  DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_seconds DOUBLE PRECISION NOT NULL DEFAULT 0,
		timestamp     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS cpu_samples_device_ts ON cpu_samples (device_id, timestamp DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS memory_samples (
		id            BIGSERIAL PRIMARY KEY,
		device_id     TEXT NOT NULL,
		usage_percent DOUBLE PRECISION NOT NULL,
		total_bytes   BIGINT NOT NULL DEFAULT 0,
		used_bytes    BIGINT NOT NULL DEFAULT 0,
		free_bytes    BIGINT NOT NULL DEFAULT 0,
		timestamp     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS memory_samples_device_ts ON memory_samples (device_id, timestamp DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS disk_samples (
		id            BIGSERIAL PRIMARY KEY,
		device_id     TEXT NOT NULL,
		filesystem    TEXT NOT NULL,
		mount_point   TEXT NOT NULL DEFAULT '',
		size_bytes    BIGINT NOT NULL DEFAULT 0,
		used_bytes    BIGINT NOT NULL DEFAULT 0,
		usage_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
		timestamp     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS disk_samples_device_fs_ts ON disk_samples (device_id, filesystem, timestamp DESC, id DESC)`,
	`CREATE TABLE IF NOT EXISTS network_samples (
		id               BIGSERIAL PRIMARY KEY,
		device_id        TEXT NOT NULL,
		interface        TEXT NOT NULL DEFAULT '',
		bytes_received   BIGINT NOT NULL DEFAULT 0,
		bytes_sent       BIGINT NOT NULL DEFAULT 0,
		packets_received BIGINT NOT NULL DEFAULT 0,
		packets_sent     BIGINT NOT NULL DEFAULT 0,
		errors_received  BIGINT NOT NULL DEFAULT 0,
		errors_sent      BIGINT NOT NULL DEFAULT 0,
		timestamp        TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS network_samples_device_ts ON network_samples (device_id, timestamp, id)`,
}

// Init creates the schema when it does not exist yet.
func (db *DB) Init(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		qctx, cancel := db.withTimeout(ctx)
		_, err := db.pool.Exec(qctx, stmt)

		cancel()

		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToInit, err)
		}
	}

	return nil
}

// send executes a queued batch and surfaces the first per-command error.
func (db *DB) send(ctx context.Context, batch *pgx.Batch, name string) (err error) {
	qctx, cancel := db.withTimeout(ctx)
	defer cancel()

	br := db.pool.SendBatch(qctx, batch)
	defer func() {
		if closeErr := br.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%s batch close: %w", name, closeErr)
		}
	}()

	for i := 0; i < batch.Len(); i++ {
		if _, err = br.Exec(); err != nil {
			return fmt.Errorf("%w: %s (command %d): %w", ErrFailedToInsert, name, i, err)
		}
	}

	return nil
}
