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

import "github.com/carverauto/fleetmon/pkg/models"

// OverallDiskUsage combines the most recent per-filesystem samples of a
// device into one usage ratio. Filesystems with zero or negative size are
// excluded from both sums. With no eligible filesystem the metric is absent
// (it still contributes zero to the classification maximum).
func OverallDiskUsage(samples []*models.DiskSample) models.Metric {
	var totalUsed, totalSize int64

	for _, disk := range samples {
		if disk == nil || disk.SizeBytes <= 0 {
			continue
		}

		totalUsed += disk.UsedBytes
		totalSize += disk.SizeBytes
	}

	if totalSize <= 0 {
		return models.Metric{}
	}

	return models.PresentMetric(float64(totalUsed) / float64(totalSize) * 100)
}
