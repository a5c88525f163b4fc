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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carverauto/fleetmon/pkg/models"
)

func diskSample(fs string, size, used int64) *models.DiskSample {
	return &models.DiskSample{DeviceID: "dev-1", Filesystem: fs, SizeBytes: size, UsedBytes: used}
}

func TestOverallDiskUsage(t *testing.T) {
	t.Run("zero_size_filesystem_excluded_from_both_sums", func(t *testing.T) {
		usage := OverallDiskUsage([]*models.DiskSample{
			diskSample("/dev/sda1", 100, 80),
			diskSample("tmpfs", 0, 5),
		})

		assert.True(t, usage.Present)
		assert.InDelta(t, 80.0, usage.Value, 0.001)
	})

	t.Run("multiple_filesystems_weighted_by_size", func(t *testing.T) {
		usage := OverallDiskUsage([]*models.DiskSample{
			diskSample("/dev/sda1", 100, 50),
			diskSample("/dev/sdb1", 300, 150),
		})

		assert.True(t, usage.Present)
		assert.InDelta(t, 50.0, usage.Value, 0.001)
	})

	t.Run("no_eligible_filesystems_is_absent", func(t *testing.T) {
		usage := OverallDiskUsage([]*models.DiskSample{diskSample("tmpfs", 0, 5)})

		assert.False(t, usage.Present)
		assert.Zero(t, usage.OrZero())
	})

	t.Run("no_samples_is_absent", func(t *testing.T) {
		usage := OverallDiskUsage(nil)

		assert.False(t, usage.Present)
	})
}
