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

// Package retention prunes aged samples and rolls up network counters into
// monthly summaries.
package retention

import (
	"context"
	"errors"
	"time"

	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// Pruner deletes samples past the retention horizon. Deletion is scoped per
// sample kind and non-transactional across kinds; a kind that fails is
// logged and retried on the next run.
type Pruner struct {
	db      db.Service
	logger  logger.Logger
	horizon time.Duration
	now     func() time.Time
}

// NewPruner creates a Pruner with the given retention horizon.
func NewPruner(database db.Service, horizon time.Duration, log logger.Logger) *Pruner {
	return &Pruner{
		db:      database,
		logger:  log,
		horizon: horizon,
		now:     time.Now,
	}
}

// Run executes one pruning cycle across all sample kinds.
func (p *Pruner) Run(ctx context.Context) error {
	cutoff := p.now().Add(-p.horizon)

	var errs []error

	for _, kind := range models.AllSampleKinds() {
		deleted, err := p.db.DeleteSamplesBefore(ctx, kind, cutoff)
		if err != nil {
			p.logger.Error().
				Err(err).
				Str("kind", string(kind)).
				Msg("failed to prune samples")

			errs = append(errs, err)

			continue
		}

		if deleted > 0 {
			p.logger.Info().
				Str("kind", string(kind)).
				Int64("deleted", deleted).
				Time("cutoff", cutoff).
				Msg("pruned aged samples")
		}
	}

	return errors.Join(errs...)
}
