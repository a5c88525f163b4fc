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

// fleetmon is the health aggregation and alerting core: it classifies device
// health from raw samples, dispatches debounced status alerts, and maintains
// sample retention with monthly network rollups.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/fleetmon/pkg/alerts"
	"github.com/carverauto/fleetmon/pkg/config"
	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/health"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
	"github.com/carverauto/fleetmon/pkg/retention"
	"github.com/carverauto/fleetmon/pkg/scheduler"
)

func main() {
	configPath := flag.String("config", "/etc/fleetmon/core.json", "Path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("fatal error: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	var cfg models.CoreConfig
	if err := config.LoadFile(ctx, configPath, &cfg); err != nil {
		return err
	}

	mainLogger, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg.Database, mainLogger.WithComponent("db"))
	if err != nil {
		return err
	}

	database := db.New(pool, mainLogger.WithComponent("db"), time.Duration(cfg.QueryTimeout))
	defer database.Close()

	if err := database.Init(ctx); err != nil {
		return err
	}

	required, optional, cleanup, err := buildChannels(ctx, &cfg, mainLogger)
	if err != nil {
		return err
	}
	defer cleanup()

	monitor := health.NewMonitor(database, health.MonitorConfig{
		Classifier: health.ClassifierConfig{
			FreshnessWindow:   time.Duration(cfg.FreshnessWindow),
			CriticalThreshold: cfg.CriticalThreshold,
			TroubleThreshold:  cfg.TroubleThreshold,
		},
		Workers:      cfg.Workers,
		QueryTimeout: time.Duration(cfg.QueryTimeout),
	}, mainLogger.WithComponent("monitor"))

	dispatcher := alerts.NewDispatcher(database, required, optional,
		mainLogger.WithComponent("dispatcher"))

	pruner := retention.NewPruner(database,
		time.Duration(cfg.RetentionDays)*24*time.Hour,
		mainLogger.WithComponent("pruner"))

	rollup := retention.NewRollup(database, mainLogger.WithComponent("rollup"))

	sched := scheduler.New(mainLogger.WithComponent("scheduler"))
	sched.Add("status-classify", time.Duration(cfg.ClassifyInterval), monitor.Tick)
	sched.Add("alert-dispatch", time.Duration(cfg.DispatchInterval), dispatcher.Tick)
	sched.Add("daily-prune", time.Duration(cfg.PruneInterval), pruner.Run)
	sched.Add("monthly-rollup", time.Duration(cfg.RollupCheckInterval), rollup.Tick)

	mainLogger.Info().Msg("fleetmon core started")

	return sched.Run(ctx)
}

// buildChannels assembles the configured alert channels. Email and push are
// required for clearing the pending flag; webhooks are best-effort.
func buildChannels(
	ctx context.Context, cfg *models.CoreConfig, log logger.Logger,
) (required, optional []alerts.AlertService, cleanup func(), err error) {
	cleanup = func() {}

	if cfg.SMTP != nil {
		required = append(required,
			alerts.NewEmailChannel(cfg.SMTP, log.WithComponent("alerts-email")))
	}

	if cfg.NATS != nil && cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("fleetmon-core"))
		if err != nil {
			return nil, nil, cleanup, fmt.Errorf("failed to connect to NATS: %w", err)
		}

		js, err := jetstream.New(nc)
		if err != nil {
			nc.Close()
			return nil, nil, cleanup, fmt.Errorf("failed to create JetStream context: %w", err)
		}

		if cfg.NATS.Stream != "" {
			_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
				Name:     cfg.NATS.Stream,
				Subjects: []string{cfg.NATS.Subject},
			})
			if err != nil {
				nc.Close()
				return nil, nil, cleanup, fmt.Errorf("failed to ensure alert stream: %w", err)
			}
		}

		cleanup = nc.Close
		required = append(required, alerts.NewPushChannel(
			js, cfg.NATS.Subject, time.Duration(cfg.NATS.Timeout),
			log.WithComponent("alerts-push")))
	}

	for _, webhook := range cfg.Webhooks {
		if !webhook.Enabled {
			continue
		}

		optional = append(optional, alerts.NewWebhookChannel(webhook))
	}

	return required, optional, cleanup, nil
}
