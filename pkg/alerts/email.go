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
	"fmt"
	"net/smtp"
	"strings"

	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

// EmailChannel sends one batch message per alert via SMTP.
type EmailChannel struct {
	config *models.SMTPConfig
	logger logger.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailChannel creates the email alert channel.
func NewEmailChannel(config *models.SMTPConfig, log logger.Logger) *EmailChannel {
	return &EmailChannel{
		config: config,
		logger: log,
		send:   smtp.SendMail,
	}
}

func (*EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Alert(ctx context.Context, alert *StatusAlert) error {
	if e.config == nil || e.config.Host == "" || len(e.config.To) == 0 {
		return fmt.Errorf("%w: email", ErrChannelNotReady)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if e.config.Username != "" {
		auth = smtp.PlainAuth("", e.config.Username, e.config.Password, e.config.Host)
	}

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	msg := buildEmailMessage(e.config.From, e.config.To, alert)

	if err := e.send(addr, auth, e.config.From, e.config.To, msg); err != nil {
		return fmt.Errorf("%w: email: %w", ErrDeliveryRejected, err)
	}

	e.logger.Info().
		Str("kind", string(alert.Kind)).
		Int("devices", len(alert.DeviceNames)).
		Msg("status alert email sent")

	return nil
}

func buildEmailMessage(from string, to []string, alert *StatusAlert) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", alert.Title)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "The following devices are %s:\r\n\r\n", alert.Kind)

	for _, name := range alert.DeviceNames {
		fmt.Fprintf(&b, "  - %s\r\n", name)
	}

	fmt.Fprintf(&b, "\r\nReported at %s\r\n", alert.Timestamp.UTC().Format("2006-01-02 15:04:05 MST"))

	return []byte(b.String())
}
