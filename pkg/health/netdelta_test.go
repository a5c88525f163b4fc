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

package health

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/models"
)

func TestCounterDelta(t *testing.T) {
	tests := []struct {
		name  string
		first int64
		last  int64
		want  int64
	}{
		{name: "monotonic", first: 100, last: 150, want: 50},
		{name: "no_change", first: 100, last: 100, want: 0},
		{name: "reset_falls_back_to_last", first: 150, last: 40, want: 40},
		{name: "reset_to_zero", first: 5000, last: 0, want: 0},
		{name: "from_zero", first: 0, last: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CounterDelta(tt.first, tt.last))
		})
	}
}

func netSample(ts time.Time, bytesRx, bytesTx int64) *models.NetworkSample {
	return &models.NetworkSample{
		DeviceID:        "dev-1",
		Interface:       "eth0",
		BytesReceived:   bytesRx,
		BytesSent:       bytesTx,
		PacketsReceived: bytesRx / 100,
		PacketsSent:     bytesTx / 100,
		Timestamp:       ts,
	}
}

func TestSummarizeWindow(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)

	t.Run("empty_window_is_all_zero", func(t *testing.T) {
		summary := SummarizeWindow(nil, start, end)

		assert.Zero(t, summary.TotalBytesReceived)
		assert.Zero(t, summary.TotalBytesSent)
		assert.Zero(t, summary.AvgBytesReceivedPerSec)
		assert.Zero(t, summary.AvgBytesSentPerSec)
		assert.Equal(t, 0, summary.DataPoints)
		assert.Equal(t, start, summary.PeriodStart)
		assert.Equal(t, end, summary.PeriodEnd)
	})

	t.Run("single_sample_has_zero_totals", func(t *testing.T) {
		samples := []*models.NetworkSample{netSample(start.Add(time.Hour), 1000, 500)}

		summary := SummarizeWindow(samples, start, end)

		assert.Zero(t, summary.TotalBytesReceived)
		assert.Zero(t, summary.TotalBytesSent)
		assert.Zero(t, summary.AvgBytesReceivedPerSec)
		assert.Equal(t, 1, summary.DataPoints)
	})

	t.Run("monotonic_counters", func(t *testing.T) {
		samples := []*models.NetworkSample{
			netSample(start, 1000, 500),
			netSample(start.Add(50*time.Second), 3000, 1200),
			netSample(start.Add(100*time.Second), 6000, 2500),
		}

		summary := SummarizeWindow(samples, start, end)

		assert.Equal(t, int64(5000), summary.TotalBytesReceived)
		assert.Equal(t, int64(2000), summary.TotalBytesSent)
		assert.InDelta(t, 50.0, summary.AvgBytesReceivedPerSec, 0.001)
		assert.InDelta(t, 20.0, summary.AvgBytesSentPerSec, 0.001)
		assert.Equal(t, 3, summary.DataPoints)
	})

	t.Run("counter_reset_reports_last_value", func(t *testing.T) {
		// Known-lossy fallback: traffic between the reset and the last
		// reading of the old epoch is dropped rather than reported negative.
		samples := []*models.NetworkSample{
			netSample(start, 100, 100),
			netSample(start.Add(time.Minute), 150, 150),
			netSample(start.Add(2*time.Minute), 40, 40),
		}

		summary := SummarizeWindow(samples, start, end)

		assert.Equal(t, int64(40), summary.TotalBytesReceived)
		assert.Equal(t, int64(40), summary.TotalBytesSent)
	})

	t.Run("round_trip_preserves_totals", func(t *testing.T) {
		samples := []*models.NetworkSample{
			netSample(start, 1000, 500),
			netSample(start.Add(30*time.Second), 9000, 4500),
		}

		summary := SummarizeWindow(samples, start, end)

		encoded, err := json.Marshal(summary)
		require.NoError(t, err)

		var decoded models.NetworkPeriodSummary
		require.NoError(t, json.Unmarshal(encoded, &decoded))

		assert.Equal(t, *summary, decoded)
	})
}
