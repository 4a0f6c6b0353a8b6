package usecase

import (
	"fmt"
	"time"

	"vexadrive/internal/domain/entities"
)

// NotificationPolicy computes the notification fan-out for lifecycle events.
//
// It is a pure policy: every method takes the post-mutation state as input
// and returns the records to persist, without touching any collaborator.
// The use case is responsible for delivery and for swallowing delivery
// failures (notifications are a best-effort side channel).
//
// Suppression rule: a "change" to the same value emits nothing. The status
// methods receive both old and new values so the policy itself owns that
// decision; the ETA comparison happens in the use case because the prior
// value lives on the aggregate.

type NotificationPolicy struct{}

// RequestCreated fans out to the creating customer plus every admin user.
func (NotificationPolicy) RequestCreated(r entities.ServiceRequest, v entities.Vehicle, owner entities.User, admins []entities.User, now time.Time) []entities.Notification {
	out := []entities.Notification{
		{
			ServiceRequestID: r.ID,
			UserID:           r.CustomerUserID,
			Title:            "Service Request Created",
			Message:          fmt.Sprintf("Your request for vehicle %s (%s) has been created.", v.Model, v.NumberPlate),
			CreatedAt:        now,
		},
	}

	ownerName := owner.Name
	if ownerName == "" {
		ownerName = "Unknown"
	}
	for _, admin := range admins {
		out = append(out, entities.Notification{
			ServiceRequestID: r.ID,
			UserID:           admin.ID,
			Title:            fmt.Sprintf("%s (%s) raised a new request", ownerName, owner.Email),
			Message:          fmt.Sprintf("Request %d for vehicle %s (%s) was raised by %s (%s)", r.ID, v.Model, v.NumberPlate, ownerName, owner.Email),
			CreatedAt:        now,
		})
	}
	return out
}

// StatusChanged notifies the owning customer. A no-op transition emits nothing.
func (NotificationPolicy) StatusChanged(r entities.ServiceRequest, previous entities.ServiceStatus, now time.Time) []entities.Notification {
	if previous == r.Status {
		return nil
	}
	return []entities.Notification{{
		ServiceRequestID: r.ID,
		UserID:           r.CustomerUserID,
		Title:            "Service Status Updated",
		Message:          fmt.Sprintf("Your request status is now %s", r.Status),
		CreatedAt:        now,
	}}
}

// EstimatedDeliveryChanged notifies the owning customer of the new date.
func (NotificationPolicy) EstimatedDeliveryChanged(r entities.ServiceRequest, etd time.Time, now time.Time) []entities.Notification {
	return []entities.Notification{{
		ServiceRequestID: r.ID,
		UserID:           r.CustomerUserID,
		Title:            "Estimated Delivery Updated",
		Message:          fmt.Sprintf("Your vehicle will be ready by %s", etd.Format("2006-01-02")),
		CreatedAt:        now,
	}}
}

// BillUploaded notifies the owning customer that the bill is available.
func (NotificationPolicy) BillUploaded(r entities.ServiceRequest, now time.Time) []entities.Notification {
	return []entities.Notification{{
		ServiceRequestID: r.ID,
		UserID:           r.CustomerUserID,
		Title:            "Bill Uploaded",
		Message:          "Bill uploaded successfully",
		CreatedAt:        now,
	}}
}
