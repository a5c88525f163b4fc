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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/carverauto/fleetmon/pkg/logger"
)

var errInvalidDuration = errors.New("invalid duration")

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("90s") or a number of nanoseconds.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// Database holds the Postgres/Timescale connection settings for the sample
// and device stores.
type Database struct {
	Host             string   `json:"host"`
	Port             int      `json:"port"`
	Database         string   `json:"database"`
	Username         string   `json:"username"`
	Password         string   `json:"password"`
	SSLMode          string   `json:"ssl_mode,omitempty"`
	ApplicationName  string   `json:"application_name,omitempty"`
	MaxConnections   int32    `json:"max_connections,omitempty"`
	MinConnections   int32    `json:"min_connections,omitempty"`
	StatementTimeout Duration `json:"statement_timeout,omitempty"`
}

// NATSConfig configures the push alert channel.
type NATSConfig struct {
	URL     string   `json:"url"`
	Stream  string   `json:"stream"`
	Subject string   `json:"subject"`
	Timeout Duration `json:"timeout,omitempty"`
}

// SMTPConfig configures the email alert channel.
type SMTPConfig struct {
	Host     string   `json:"host"`
	Port     int      `json:"port"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password,omitempty"`
}

// Header represents a custom HTTP header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// WebhookConfig represents a webhook notification configuration.
type WebhookConfig struct {
	Enabled  bool     `json:"enabled"`
	URL      string   `json:"url"`
	Cooldown Duration `json:"cooldown"`
	Headers  []Header `json:"headers,omitempty"`
}

// CoreConfig is the full configuration surface of the fleetmon core service.
type CoreConfig struct {
	FreshnessWindow     Duration        `json:"freshness_window"`
	CriticalThreshold   float64         `json:"critical_threshold"`
	TroubleThreshold    float64         `json:"trouble_threshold"`
	ClassifyInterval    Duration        `json:"classify_interval"`
	DispatchInterval    Duration        `json:"dispatch_interval"`
	PruneInterval       Duration        `json:"prune_interval"`
	RollupCheckInterval Duration        `json:"rollup_check_interval"`
	RetentionDays       int             `json:"retention_days"`
	Workers             int             `json:"workers"`
	QueryTimeout        Duration        `json:"query_timeout"`
	Database            *Database       `json:"database"`
	NATS                *NATSConfig     `json:"nats,omitempty"`
	SMTP                *SMTPConfig     `json:"smtp,omitempty"`
	Webhooks            []WebhookConfig `json:"webhooks,omitempty"`
	Logging             *logger.Config  `json:"logging,omitempty"`
}

const (
	defaultFreshnessWindow     = 130 * time.Second
	defaultCriticalThreshold   = 90.0
	defaultTroubleThreshold    = 80.0
	defaultClassifyInterval    = time.Minute
	defaultDispatchInterval    = time.Minute
	defaultPruneInterval       = 24 * time.Hour
	defaultRollupCheckInterval = time.Hour
	defaultRetentionDays       = 90
	defaultWorkers             = 8
	defaultQueryTimeout        = 10 * time.Second
)

// ApplyDefaults fills unset tunables with the reference defaults.
func (c *CoreConfig) ApplyDefaults() {
	if c.FreshnessWindow == 0 {
		c.FreshnessWindow = Duration(defaultFreshnessWindow)
	}

	if c.CriticalThreshold == 0 {
		c.CriticalThreshold = defaultCriticalThreshold
	}

	if c.TroubleThreshold == 0 {
		c.TroubleThreshold = defaultTroubleThreshold
	}

	if c.ClassifyInterval == 0 {
		c.ClassifyInterval = Duration(defaultClassifyInterval)
	}

	if c.DispatchInterval == 0 {
		c.DispatchInterval = Duration(defaultDispatchInterval)
	}

	if c.PruneInterval == 0 {
		c.PruneInterval = Duration(defaultPruneInterval)
	}

	if c.RollupCheckInterval == 0 {
		c.RollupCheckInterval = Duration(defaultRollupCheckInterval)
	}

	if c.RetentionDays == 0 {
		c.RetentionDays = defaultRetentionDays
	}

	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}

	if c.QueryTimeout == 0 {
		c.QueryTimeout = Duration(defaultQueryTimeout)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}
}
