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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/fleetmon/pkg/models"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("loads_and_applies_defaults", func(t *testing.T) {
		path := writeTempConfig(t, `{
			"freshness_window": "2m",
			"database": {"host": "localhost", "port": 5432, "database": "fleetmon"}
		}`)

		var cfg models.CoreConfig
		require.NoError(t, LoadFile(context.Background(), path, &cfg))

		assert.Equal(t, 2*time.Minute, time.Duration(cfg.FreshnessWindow))
		// Unset fields come from the defaults.
		assert.Equal(t, 90.0, cfg.CriticalThreshold)
		assert.Equal(t, 90, cfg.RetentionDays)
	})

	t.Run("missing_file", func(t *testing.T) {
		var cfg models.CoreConfig
		err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"), &cfg)
		require.Error(t, err)
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := writeTempConfig(t, `{not json`)

		var cfg models.CoreConfig
		require.Error(t, LoadFile(context.Background(), path, &cfg))
	})
}
