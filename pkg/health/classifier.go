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
	"math"
	"time"

	"github.com/carverauto/fleetmon/pkg/models"
)

// ClassifierConfig carries the status thresholds and freshness window.
type ClassifierConfig struct {
	FreshnessWindow   time.Duration
	CriticalThreshold float64
	TroubleThreshold  float64
}

// Classification is the classifier verdict for one device on one tick.
type Classification struct {
	Status   models.DeviceStatus
	Reason   string
	Snapshot *models.UsageSnapshot
}

const reasonNoRecentSamples = "no recent samples"

// Classify derives a device's status from its latest samples. A device whose
// newest sample is older than the freshness window is down regardless of
// usage. Otherwise the maximum of cpu, memory and overall disk usage decides
// between up, trouble and critical; thresholds are inclusive of the higher
// severity.
func Classify(
	now time.Time,
	cpu *models.CPUSample,
	memory *models.MemorySample,
	disks []*models.DiskSample,
	cfg ClassifierConfig,
) Classification {
	latest := latestTimestamp(cpu, memory, disks)

	if latest.IsZero() || now.Sub(latest) > cfg.FreshnessWindow {
		return Classification{
			Status: models.StatusDown,
			Reason: reasonNoRecentSamples,
		}
	}

	cpuUsage := models.Metric{}
	if cpu != nil {
		cpuUsage = models.PresentMetric(cpu.UsagePercent)
	}

	memoryUsage := models.Metric{}
	if memory != nil {
		memoryUsage = models.PresentMetric(memory.UsagePercent)
	}

	diskUsage := OverallDiskUsage(disks)

	maxUsage := math.Max(cpuUsage.OrZero(), math.Max(memoryUsage.OrZero(), diskUsage.OrZero()))

	var status models.DeviceStatus

	switch {
	case maxUsage >= cfg.CriticalThreshold:
		status = models.StatusCritical
	case maxUsage >= cfg.TroubleThreshold:
		status = models.StatusTrouble
	default:
		status = models.StatusUp
	}

	return Classification{
		Status: status,
		Snapshot: &models.UsageSnapshot{
			CPU:         round2Metric(cpuUsage),
			Memory:      round2Metric(memoryUsage),
			Disk:        round2Metric(diskUsage),
			Max:         round2(maxUsage),
			LastUpdated: now.UTC(),
		},
	}
}

func latestTimestamp(cpu *models.CPUSample, memory *models.MemorySample, disks []*models.DiskSample) time.Time {
	var latest time.Time

	if cpu != nil && cpu.Timestamp.After(latest) {
		latest = cpu.Timestamp
	}

	if memory != nil && memory.Timestamp.After(latest) {
		latest = memory.Timestamp
	}

	for _, disk := range disks {
		if disk != nil && disk.Timestamp.After(latest) {
			latest = disk.Timestamp
		}
	}

	return latest
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Metric(m models.Metric) models.Metric {
	if !m.Present {
		return m
	}

	return models.PresentMetric(round2(m.Value))
}
