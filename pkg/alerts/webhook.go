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

package alerts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
)

// WebhookChannel POSTs alert JSON to a configured URL, with a per-kind
// cooldown to keep a flapping fleet from hammering the receiver.
type WebhookChannel struct {
	config models.WebhookConfig
	client *http.Client

	mu       sync.Mutex
	lastSent map[AlertKind]time.Time
}

// NewWebhookChannel creates a webhook alert channel.
func NewWebhookChannel(config models.WebhookConfig) *WebhookChannel {
	return &WebhookChannel{
		config:   config,
		client:   &http.Client{Timeout: 10 * time.Second},
		lastSent: make(map[AlertKind]time.Time),
	}
}

func (*WebhookChannel) Name() string { return "webhook" }

func (w *WebhookChannel) Alert(ctx context.Context, alert *StatusAlert) error {
	if !w.config.Enabled || w.config.URL == "" {
		return ErrWebhookDisabled
	}

	if err := w.checkCooldown(alert.Kind); err != nil {
		return err
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.config.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	for _, header := range w.config.Headers {
		req.Header.Set(header.Key, header.Value)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: webhook: %w", ErrDeliveryRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: webhook returned status %d", ErrDeliveryRejected, resp.StatusCode)
	}

	return nil
}

func (w *WebhookChannel) checkCooldown(kind AlertKind) error {
	cooldown := time.Duration(w.config.Cooldown)
	if cooldown <= 0 {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if last, ok := w.lastSent[kind]; ok && time.Since(last) < cooldown {
		return ErrWebhookCooldown
	}

	w.lastSent[kind] = time.Now()

	return nil
}
