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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/models"
)

func TestWebhookChannelAlert(t *testing.T) {
	t.Run("posts_alert_json_with_headers", func(t *testing.T) {
		var received *StatusAlert
		var gotAuth string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			gotAuth = r.Header.Get("Authorization")

			var alert StatusAlert
			require.NoError(t, json.NewDecoder(r.Body).Decode(&alert))
			received = &alert

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		channel := NewWebhookChannel(models.WebhookConfig{
			Enabled: true,
			URL:     server.URL,
			Headers: []models.Header{{Key: "Authorization", Value: "Bearer token"}},
		})

		require.NoError(t, channel.Alert(context.Background(), testAlert()))

		require.NotNil(t, received)
		assert.Equal(t, KindDown, received.Kind)
		assert.Equal(t, []string{"web-01", "db-01"}, received.DeviceNames)
		assert.Equal(t, "Bearer token", gotAuth)
	})

	t.Run("disabled_channel", func(t *testing.T) {
		channel := NewWebhookChannel(models.WebhookConfig{Enabled: false, URL: "https://example.com"})

		err := channel.Alert(context.Background(), testAlert())
		assert.ErrorIs(t, err, ErrWebhookDisabled)
	})

	t.Run("non_2xx_is_delivery_rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		channel := NewWebhookChannel(models.WebhookConfig{Enabled: true, URL: server.URL})

		err := channel.Alert(context.Background(), testAlert())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDeliveryRejected)
	})

	t.Run("cooldown_suppresses_repeat_of_same_kind", func(t *testing.T) {
		var calls int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		channel := NewWebhookChannel(models.WebhookConfig{
			Enabled:  true,
			URL:      server.URL,
			Cooldown: models.Duration(time.Hour),
		})

		require.NoError(t, channel.Alert(context.Background(), testAlert()))

		err := channel.Alert(context.Background(), testAlert())
		assert.ErrorIs(t, err, ErrWebhookCooldown)
		assert.Equal(t, 1, calls)

		// A different kind has its own cooldown window.
		up := testAlert()
		up.Kind = KindUp
		require.NoError(t, channel.Alert(context.Background(), up))
		assert.Equal(t, 2, calls)
	})
}
