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
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/fleetmon/pkg/logger"
)

// statusEvent is the CloudEvents-shaped payload published for push
// subscribers.
type statusEvent struct {
	SpecVersion     string       `json:"specversion"`
	ID              string       `json:"id"`
	Source          string       `json:"source"`
	Type            string       `json:"type"`
	DataContentType string       `json:"datacontenttype"`
	Subject         string       `json:"subject"`
	Time            time.Time    `json:"time"`
	Data            *StatusAlert `json:"data"`
}

// PushChannel publishes alert events to a NATS JetStream subject for push
// notification consumers.
type PushChannel struct {
	js      jetstream.JetStream
	subject string
	timeout time.Duration
	logger  logger.Logger
}

// NewPushChannel creates the push alert channel on an existing JetStream
// context.
func NewPushChannel(js jetstream.JetStream, subject string, timeout time.Duration, log logger.Logger) *PushChannel {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &PushChannel{
		js:      js,
		subject: subject,
		timeout: timeout,
		logger:  log,
	}
}

func (*PushChannel) Name() string { return "push" }

func (p *PushChannel) Alert(ctx context.Context, alert *StatusAlert) error {
	if p.js == nil || p.subject == "" {
		return fmt.Errorf("%w: push", ErrChannelNotReady)
	}

	event := statusEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          "fleetmon/core",
		Type:            fmt.Sprintf("com.carverauto.fleetmon.device.%s", alert.Kind),
		DataContentType: "application/json",
		Subject:         p.subject,
		Time:            alert.Timestamp.UTC(),
		Data:            alert,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	ack, err := p.js.Publish(pctx, p.subject, eventBytes)
	if err != nil {
		return fmt.Errorf("%w: push: %w", ErrDeliveryRejected, err)
	}

	p.logger.Debug().
		Str("kind", string(alert.Kind)).
		Str("stream", ack.Stream).
		Uint64("sequence", ack.Sequence).
		Msg("status alert push published")

	return nil
}
