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

// Package health implements the health aggregation core: counter delta
// calculation, disk usage reduction, status classification and alert
// debouncing.
package health

import (
	"math"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
)

// CounterDelta computes the usage delta of a monotonically increasing counter
// between the first and last reading of a window. When the last reading is
// below the first (counter reset), the reading at reset time is indeterminate
// relative to the previous epoch, so the last value itself is reported. That
// undercounts traffic across a reset but never yields a negative delta.
func CounterDelta(first, last int64) int64 {
	if last >= first {
		return last - first
	}

	return last
}

// SummarizeWindow reduces an ordered-by-time window of network samples for
// one device into a NetworkPeriodSummary. Windows with fewer than two samples
// produce all-zero totals and rates, with DataPoints reporting the count.
func SummarizeWindow(samples []*models.NetworkSample, start, end time.Time) *models.NetworkPeriodSummary {
	summary := &models.NetworkPeriodSummary{
		DataPoints:  len(samples),
		PeriodStart: start.UTC(),
		PeriodEnd:   end.UTC(),
	}

	if len(samples) == 0 {
		return summary
	}

	first := samples[0]
	last := samples[len(samples)-1]

	summary.TotalBytesReceived = clampNonNegative(CounterDelta(first.BytesReceived, last.BytesReceived))
	summary.TotalBytesSent = clampNonNegative(CounterDelta(first.BytesSent, last.BytesSent))
	summary.TotalPacketsReceived = clampNonNegative(CounterDelta(first.PacketsReceived, last.PacketsReceived))
	summary.TotalPacketsSent = clampNonNegative(CounterDelta(first.PacketsSent, last.PacketsSent))
	summary.TotalErrorsReceived = clampNonNegative(CounterDelta(first.ErrorsReceived, last.ErrorsReceived))
	summary.TotalErrorsSent = clampNonNegative(CounterDelta(first.ErrorsSent, last.ErrorsSent))

	duration := last.Timestamp.Sub(first.Timestamp)
	if len(samples) >= 2 && duration > 0 {
		seconds := duration.Seconds()
		summary.AvgBytesReceivedPerSec = math.Round(float64(summary.TotalBytesReceived) / seconds)
		summary.AvgBytesSentPerSec = math.Round(float64(summary.TotalBytesSent) / seconds)
	}

	return summary
}

func clampNonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}

	return v
}
