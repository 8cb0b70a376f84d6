package services_test

import (
	"testing"
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionCatalog_Render(t *testing.T) {
	catalog := services.NewTransitionCatalog()
	actor := kernel.NewUUID()
	owner := kernel.NewUUID()
	entity := kernel.NewUUID()
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		transition     services.Transition
		action         string
		notification   activity.NotificationType
		notifyExpected bool
	}{
		{
			name: "advance notifies the owner",
			transition: services.Transition{Kind: services.ShipmentAdvanced, EntityType: activity.EntityShipment,
				Label: "TRK-1", Recipient: &owner, From: "DRAFT", To: "RECEIVED"},
			action:         "advanced shipment TRK-1 to RECEIVED",
			notification:   activity.NotificationShipmentStatus,
			notifyExpected: true,
		},
		{
			name: "override notifies the owner",
			transition: services.Transition{Kind: services.ShipmentStatusSet, EntityType: activity.EntityShipment,
				Label: "TRK-1", Recipient: &owner, From: "PREPPING", To: "DELIVERED"},
			action:         "set shipment TRK-1 status to DELIVERED",
			notification:   activity.NotificationShipmentStatus,
			notifyExpected: true,
		},
		{
			name: "pre-assigned task notifies the assignee",
			transition: services.Transition{Kind: services.TaskCreated, EntityType: activity.EntityTask,
				Label: "Label bottles", Recipient: &owner},
			action:         "created task Label bottles",
			notification:   activity.NotificationTaskAssigned,
			notifyExpected: true,
		},
		{
			name: "unassigned task has no notification",
			transition: services.Transition{Kind: services.TaskCreated, EntityType: activity.EntityTask,
				Label: "Label bottles"},
			action: "created task Label bottles",
		},
		{
			name: "claim only logs",
			transition: services.Transition{Kind: services.TaskClaimed, EntityType: activity.EntityTask,
				Label: "Label bottles", Recipient: &owner},
			action: "claimed task Label bottles",
		},
		{
			name: "cancel notifies the previous assignee",
			transition: services.Transition{Kind: services.TaskCancelled, EntityType: activity.EntityTask,
				Label: "Label bottles", Recipient: &owner},
			action:         "cancelled task Label bottles",
			notification:   activity.NotificationTaskCancelled,
			notifyExpected: true,
		},
		{
			name: "station update only logs",
			transition: services.Transition{Kind: services.StationUpdated, EntityType: activity.EntityStation,
				Label: "Prep 1"},
			action: "updated station Prep 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.transition.EntityID = entity
			tc.transition.ActorID = actor
			tc.transition.At = at

			effects, err := catalog.Render(tc.transition)

			require.NoError(t, err)
			assert.Equal(t, tc.action, effects.Entry.Action())
			assert.True(t, effects.Entry.ActorID().IsEqual(actor))
			assert.True(t, effects.Entry.EntityID().IsEqual(entity))
			assert.Equal(t, at, effects.Entry.CreatedAt())

			if !tc.notifyExpected {
				assert.Nil(t, effects.Notification)
				return
			}
			require.NotNil(t, effects.Notification)
			assert.Equal(t, tc.notification, effects.Notification.Type())
			assert.True(t, effects.Notification.UserID().IsEqual(owner))
		})
	}

	t.Run("should reject mismatched entity types", func(t *testing.T) {
		_, err := catalog.Render(services.Transition{Kind: services.TaskClaimed, EntityType: activity.EntityShipment,
			EntityID: entity, ActorID: actor})

		require.Error(t, err)
	})

	t.Run("should include the target status in shipment messages", func(t *testing.T) {
		effects, err := catalog.Render(services.Transition{Kind: services.ShipmentAdvanced,
			EntityType: activity.EntityShipment, EntityID: entity, ActorID: actor, Recipient: &owner,
			Label: "TRK-9", To: "INSPECTING", At: at})

		require.NoError(t, err)
		assert.Equal(t, "Shipment TRK-9 is now INSPECTING", effects.Notification.Message())
	})
}
