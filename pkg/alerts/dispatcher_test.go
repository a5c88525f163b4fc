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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/fleetmon/pkg/db"
	"github.com/carverauto/fleetmon/pkg/logger"
	"github.com/carverauto/fleetmon/pkg/models"
)

var errTestChannel = errors.New("test channel error")

func newTestDispatcher(mockDB *db.MockService, required, optional []AlertService) *Dispatcher {
	d := NewDispatcher(mockDB, required, optional, logger.NewTestLogger())
	d.now = func() time.Time {
		return time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	}

	return d
}

func TestDispatcherTickNothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(nil, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(nil, nil)

	d := newTestDispatcher(mockDB, nil, nil)

	require.NoError(t, d.Tick(context.Background()))
}

func TestDispatcherTickDeliversAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []*models.Device{
		{DeviceID: "dev-1", DeviceName: "web-01", Status: models.StatusDown, AlertPending: true},
		{DeviceID: "dev-2", Status: models.StatusDown, AlertPending: true},
	}

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(nil, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(devices, nil)
	mockDB.EXPECT().ClearAlertPending(gomock.Any(), []string{"dev-1", "dev-2"}).Return(nil)

	channel := NewMockAlertService(ctrl)
	channel.EXPECT().Alert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *StatusAlert) error {
			assert.Equal(t, KindDown, alert.Kind)
			assert.Equal(t, "2 device(s) down", alert.Title)
			// Nameless devices fall back to their ID.
			assert.Equal(t, []string{"web-01", "dev-2"}, alert.DeviceNames)

			return nil
		})

	d := newTestDispatcher(mockDB, []AlertService{channel}, nil)

	require.NoError(t, d.Tick(context.Background()))
}

func TestDispatcherTickRequiredFailureKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []*models.Device{
		{DeviceID: "dev-1", DeviceName: "web-01", Status: models.StatusDown, AlertPending: true},
	}

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(nil, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(devices, nil)
	// No ClearAlertPending: the batch is retried on the next tick.

	channel := NewMockAlertService(ctrl)
	channel.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(errTestChannel)
	channel.EXPECT().Name().Return("email").AnyTimes()

	d := newTestDispatcher(mockDB, []AlertService{channel}, nil)

	err := d.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestChannel)
}

func TestDispatcherTickPartitionFailureDoesNotCancelSibling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upDevices := []*models.Device{
		{DeviceID: "dev-up", DeviceName: "web-01", Status: models.StatusUp, AlertPending: true},
	}
	downDevices := []*models.Device{
		{DeviceID: "dev-down", DeviceName: "db-01", Status: models.StatusDown, AlertPending: true},
	}

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(upDevices, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(downDevices, nil)
	mockDB.EXPECT().ClearAlertPending(gomock.Any(), []string{"dev-down"}).Return(nil)

	upFailed := make(chan struct{})

	channel := NewMockAlertService(ctrl)
	channel.EXPECT().Alert(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(ctx context.Context, alert *StatusAlert) error {
			if alert.Kind == KindUp {
				close(upFailed)
				return errTestChannel
			}

			// The down send starts only after the up partition has already
			// failed; its context must still be live.
			<-upFailed
			assert.NoError(t, ctx.Err())

			return nil
		})
	channel.EXPECT().Name().Return("email").AnyTimes()

	d := newTestDispatcher(mockDB, []AlertService{channel}, nil)

	err := d.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestChannel)
}

func TestDispatcherTickOptionalFailureStillClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []*models.Device{
		{DeviceID: "dev-1", DeviceName: "web-01", Status: models.StatusUp, AlertPending: true},
	}

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(devices, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(nil, nil)
	mockDB.EXPECT().ClearAlertPending(gomock.Any(), []string{"dev-1"}).Return(nil)

	required := NewMockAlertService(ctrl)
	required.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(nil)

	optional := NewMockAlertService(ctrl)
	optional.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(errTestChannel)
	optional.EXPECT().Name().Return("webhook").AnyTimes()

	d := newTestDispatcher(mockDB, []AlertService{required}, []AlertService{optional})

	require.NoError(t, d.Tick(context.Background()))
}

func TestDispatcherTickWebhookCooldownSuppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	devices := []*models.Device{
		{DeviceID: "dev-1", DeviceName: "web-01", Status: models.StatusDown, AlertPending: true},
	}

	mockDB := db.NewMockService(ctrl)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusUp).Return(nil, nil)
	mockDB.EXPECT().ListAlertPendingDevices(gomock.Any(), models.StatusDown).Return(devices, nil)
	mockDB.EXPECT().ClearAlertPending(gomock.Any(), []string{"dev-1"}).Return(nil)

	optional := NewMockAlertService(ctrl)
	optional.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(ErrWebhookCooldown)
	optional.EXPECT().Name().Return("webhook").AnyTimes()

	d := newTestDispatcher(mockDB, nil, []AlertService{optional})

	require.NoError(t, d.Tick(context.Background()))
}
