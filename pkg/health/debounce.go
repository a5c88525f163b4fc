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

// NextAlertPending decides whether a status transition makes an alert due.
// Only two edges are alert-worthy: entering down from any other state (new
// outage) and leaving down for up (recovery). Every other transition keeps
// the pending flag as-is, so severity wobble while a device keeps failing
// never produces duplicate notifications. Severity-level alerting for
// trouble/critical is deliberately not an edge here.
func NextAlertPending(previous, next models.DeviceStatus, pending bool) bool {
	switch {
	case next == models.StatusDown && previous != models.StatusDown:
		return true
	case previous == models.StatusDown && next == models.StatusUp:
		return true
	default:
		return pending
	}
}
