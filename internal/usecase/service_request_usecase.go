package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrInvalidVehicle      = errors.New("invalid vehicle: customers can only raise requests for their own vehicles")
	ErrInvalidRequestInput = errors.New("invalid service request input")
	ErrBillAlreadyExists   = errors.New("bill already exists for this service request")
	ErrBillNotFound        = errors.New("bill not found")
	ErrEmptyBillFile       = errors.New("bill file is empty")
	ErrInvalidBillAmount   = errors.New("bill amount must be positive")
)

// IllegalTransitionError rejects a status change the transition table does
// not allow. Current and AllowedNext give the caller enough context to
// correct the request (e.g. for UI hinting).
type IllegalTransitionError struct {
	Current     entities.ServiceStatus
	AllowedNext []entities.ServiceStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %s (allowed next: %v)", e.Current, e.AllowedNext)
}

// IServiceRequestUseCase is the lifecycle engine for service requests.
//
// Every mutation sequences: load, validate against the transition table,
// persist, then fan out notifications from the post-mutation state.
// Persistence failures propagate; notification failures are logged and
// swallowed so the write path stays available when the side channel degrades.

// RequestSearchFilter narrows the admin request listing. Blank fields match
// everything; text fields match case-insensitive substrings.
type RequestSearchFilter struct {
	VehicleType   string
	PlateNumber   string
	CustomerEmail string
}

// RequestSearchResult pairs a matched request with the vehicle and owner it
// was matched through, so the admin listing can render them without extra
// round trips.
type RequestSearchResult struct {
	Request entities.ServiceRequest
	Vehicle entities.Vehicle
	Owner   entities.User
}

type IServiceRequestUseCase interface {
	Create(ctx context.Context, customerUserID string, vehicleID int64, problemDescription, serviceAddress string, serviceDate time.Time) (entities.ServiceRequest, error)
	TransitionStatus(ctx context.Context, id int64, next entities.ServiceStatus) (entities.ServiceRequest, error)
	SetEstimatedDelivery(ctx context.Context, id int64, etd time.Time) (entities.ServiceRequest, error)
	AttachBill(ctx context.Context, id int64, fileName, contentType string, amount float64, data []byte) (entities.Bill, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error)
	GetBill(ctx context.Context, id int64) (entities.Bill, error)
	DownloadBill(ctx context.Context, id int64) (entities.Bill, []byte, error)
	ListByCustomer(ctx context.Context, customerUserID string) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	Search(ctx context.Context, filter RequestSearchFilter) ([]RequestSearchResult, error)
	ListCustomers(ctx context.Context) ([]entities.User, error)
}

type ServiceRequestUseCase struct {
	requests      interfaces.IServiceRequestRepository
	notifications interfaces.INotificationRepository
	bills         interfaces.IBillRepository
	vehicles      interfaces.IVehicleRepository
	identity      interfaces.IIdentityProvider
	storage       interfaces.IFileStorage
	policy        NotificationPolicy
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	requests interfaces.IServiceRequestRepository,
	notifications interfaces.INotificationRepository,
	bills interfaces.IBillRepository,
	vehicles interfaces.IVehicleRepository,
	identity interfaces.IIdentityProvider,
	storage interfaces.IFileStorage,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requests:      requests,
		notifications: notifications,
		bills:         bills,
		vehicles:      vehicles,
		identity:      identity,
		storage:       storage,
	}
}

var lastID atomic.Int64

// newID returns a time-ordered unique id. Forces monotonicity so ids minted
// within the same clock reading never collide.
func newID() int64 {
	for {
		now := time.Now().UTC().UnixNano()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return now
		}
	}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, customerUserID string, vehicleID int64, problemDescription, serviceAddress string, serviceDate time.Time) (entities.ServiceRequest, error) {
	customerUserID = strings.TrimSpace(customerUserID)
	problemDescription = strings.TrimSpace(problemDescription)
	serviceAddress = strings.TrimSpace(serviceAddress)
	if customerUserID == "" || problemDescription == "" || serviceAddress == "" || vehicleID <= 0 {
		return entities.ServiceRequest{}, ErrInvalidRequestInput
	}

	// Ownership check happens at creation time only; a later vehicle
	// reassignment does not re-validate existing requests.
	vehicle, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if vehicle.ID == 0 || vehicle.CustomerUserID != customerUserID {
		log.Printf("[request][usecase] ownership check failed customer=%s vehicle=%d", customerUserID, vehicleID)
		return entities.ServiceRequest{}, ErrInvalidVehicle
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:                 newID(),
		CustomerUserID:     customerUserID,
		VehicleID:          vehicleID,
		ProblemDescription: problemDescription,
		ServiceAddress:     serviceAddress,
		ServiceDate:        serviceDate,
		Status:             entities.StatusRequestCreated,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] create failed customer=%s err=%v", customerUserID, err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] create success id=%d customer=%s vehicle=%d", created.ID, customerUserID, vehicleID)

	u.fanOutCreated(ctx, created, vehicle)
	return created, nil
}

// fanOutCreated resolves the owner and admin identities and emits the
// creation notifications. Failures anywhere in here are swallowed so request
// creation still succeeds when the notification subsystem degrades.
func (u *ServiceRequestUseCase) fanOutCreated(ctx context.Context, r entities.ServiceRequest, v entities.Vehicle) {
	owner, err := u.identity.GetUserByID(ctx, r.CustomerUserID)
	if err != nil {
		log.Printf("[request][fanout] owner lookup failed request=%d err=%v", r.ID, err)
	}
	admins, err := u.identity.ListUsersInRole(ctx, entities.RoleAdmin)
	if err != nil {
		log.Printf("[request][fanout] admin lookup failed request=%d err=%v", r.ID, err)
	}
	u.deliver(ctx, u.policy.RequestCreated(r, v, owner, admins, time.Now().UTC()))
}

// deliver persists fan-out records best-effort; a failed recipient does not
// roll back the ones already written.
func (u *ServiceRequestUseCase) deliver(ctx context.Context, notifs []entities.Notification) {
	for _, n := range notifs {
		n.ID = newID()
		if _, err := u.notifications.Create(ctx, n); err != nil {
			log.Printf("[request][fanout] notification create failed request=%d recipient=%s err=%v", n.ServiceRequestID, n.UserID, err)
		}
	}
}

func (u *ServiceRequestUseCase) TransitionStatus(ctx context.Context, id int64, next entities.ServiceStatus) (entities.ServiceRequest, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == 0 {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	if !entities.CanTransition(r.Status, next) {
		return entities.ServiceRequest{}, &IllegalTransitionError{Current: r.Status, AllowedNext: entities.AllowedNext(r.Status)}
	}
	if r.Status == next {
		// Idempotent no-op: no write, no notification.
		return r, nil
	}

	updated, err := u.requests.UpdateStatus(ctx, id, r.Status, next)
	if err != nil {
		log.Printf("[request][usecase] status update failed id=%d next=%s err=%v", id, next, err)
		return entities.ServiceRequest{}, err
	}
	if updated.ID == 0 {
		// A concurrent writer changed the status between our read and the
		// conditional update. Serialize after it.
		fresh, err := u.requests.GetByID(ctx, id)
		if err != nil {
			return entities.ServiceRequest{}, err
		}
		if fresh.ID == 0 {
			return entities.ServiceRequest{}, ErrRequestNotFound
		}
		if fresh.Status == next {
			return fresh, nil
		}
		return entities.ServiceRequest{}, &IllegalTransitionError{Current: fresh.Status, AllowedNext: entities.AllowedNext(fresh.Status)}
	}
	log.Printf("[request][usecase] status updated id=%d %s->%s", id, r.Status, updated.Status)

	u.deliver(ctx, u.policy.StatusChanged(updated, r.Status, time.Now().UTC()))
	return updated, nil
}

func (u *ServiceRequestUseCase) SetEstimatedDelivery(ctx context.Context, id int64, etd time.Time) (entities.ServiceRequest, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == 0 {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	changed := r.EstimatedDeliveryDate == nil || !r.EstimatedDeliveryDate.Equal(etd)

	updated, err := u.requests.UpdateEstimatedDelivery(ctx, id, etd)
	if err != nil {
		log.Printf("[request][usecase] etd update failed id=%d err=%v", id, err)
		return entities.ServiceRequest{}, err
	}
	if updated.ID == 0 {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	if changed {
		u.deliver(ctx, u.policy.EstimatedDeliveryChanged(updated, etd, time.Now().UTC()))
	}
	return updated, nil
}

func (u *ServiceRequestUseCase) AttachBill(ctx context.Context, id int64, fileName, contentType string, amount float64, data []byte) (entities.Bill, error) {
	if len(data) == 0 {
		return entities.Bill{}, ErrEmptyBillFile
	}
	// Payments later charge exactly this amount, so a zero bill is a defect
	// here, not at payment time.
	if amount <= 0 {
		return entities.Bill{}, ErrInvalidBillAmount
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if r.ID == 0 {
		return entities.Bill{}, ErrRequestNotFound
	}

	existing, err := u.bills.GetByServiceRequest(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if existing.BillID != 0 {
		return entities.Bill{}, ErrBillAlreadyExists
	}

	key, err := u.storage.Save(ctx, fileName, contentType, data)
	if err != nil {
		log.Printf("[bill][usecase] file save failed request=%d err=%v", id, err)
		return entities.Bill{}, err
	}

	bill := entities.Bill{
		BillID:           newID(),
		ServiceRequestID: id,
		FileName:         fileName,
		ContentType:      contentType,
		StorageKey:       key,
		Amount:           amount,
		UploadedAt:       time.Now().UTC(),
	}
	created, err := u.bills.Create(ctx, bill)
	if err != nil {
		return entities.Bill{}, err
	}
	if created.BillID == 0 {
		// Lost the race against a concurrent attach; the conditional put is
		// the enforcement boundary. Clean up the orphaned file best-effort.
		if derr := u.storage.Delete(ctx, key); derr != nil {
			log.Printf("[bill][usecase] orphan file cleanup failed key=%s err=%v", key, derr)
		}
		return entities.Bill{}, ErrBillAlreadyExists
	}
	log.Printf("[bill][usecase] bill attached request=%d bill=%d", id, created.BillID)

	u.deliver(ctx, u.policy.BillUploaded(r, time.Now().UTC()))
	return created, nil
}

func (u *ServiceRequestUseCase) Delete(ctx context.Context, id int64) error {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.ID == 0 {
		return ErrRequestNotFound
	}

	// Storage cleanup is not the consistency boundary: a failed file delete
	// must not block removing the database records.
	bill, err := u.bills.GetByServiceRequest(ctx, id)
	if err != nil {
		return err
	}
	if bill.BillID != 0 && bill.StorageKey != "" {
		if derr := u.storage.Delete(ctx, bill.StorageKey); derr != nil {
			log.Printf("[request][usecase] bill file delete failed request=%d key=%s err=%v", id, bill.StorageKey, derr)
		}
	}

	if err := u.notifications.DeleteByServiceRequest(ctx, id); err != nil {
		return err
	}
	if err := u.bills.DeleteByServiceRequest(ctx, id); err != nil {
		return err
	}
	if err := u.requests.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[request][usecase] deleted id=%d", id)
	return nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error) {
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == 0 {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ServiceRequestUseCase) GetBill(ctx context.Context, id int64) (entities.Bill, error) {
	bill, err := u.bills.GetByServiceRequest(ctx, id)
	if err != nil {
		return entities.Bill{}, err
	}
	if bill.BillID == 0 {
		return entities.Bill{}, ErrBillNotFound
	}
	return bill, nil
}

func (u *ServiceRequestUseCase) DownloadBill(ctx context.Context, id int64) (entities.Bill, []byte, error) {
	bill, err := u.GetBill(ctx, id)
	if err != nil {
		return entities.Bill{}, nil, err
	}
	data, contentType, err := u.storage.Get(ctx, bill.StorageKey)
	if err != nil {
		log.Printf("[bill][usecase] file fetch failed request=%d key=%s err=%v", id, bill.StorageKey, err)
		return entities.Bill{}, nil, err
	}
	if contentType != "" {
		bill.ContentType = contentType
	}
	return bill, data, nil
}

func (u *ServiceRequestUseCase) ListByCustomer(ctx context.Context, customerUserID string) ([]entities.ServiceRequest, error) {
	customerUserID = strings.TrimSpace(customerUserID)
	if customerUserID == "" {
		return nil, ErrInvalidRequestInput
	}
	return u.requests.ListByCustomer(ctx, customerUserID)
}

func (u *ServiceRequestUseCase) ListAll(ctx context.Context) ([]entities.ServiceRequest, error) {
	return u.requests.ListAll(ctx)
}

// Search filters all requests by vehicle attributes and owner email, resolving
// each distinct vehicle and owner once. Owner enrichment is best-effort: a
// failed profile lookup leaves the owner fields blank instead of failing the
// whole search.
func (u *ServiceRequestUseCase) Search(ctx context.Context, filter RequestSearchFilter) ([]RequestSearchResult, error) {
	requests, err := u.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matchedOwners map[string]bool
	if email := strings.ToLower(strings.TrimSpace(filter.CustomerEmail)); email != "" {
		customers, err := u.identity.ListUsersInRole(ctx, entities.RoleCustomer)
		if err != nil {
			return nil, err
		}
		matchedOwners = make(map[string]bool, len(customers))
		for _, c := range customers {
			if strings.Contains(strings.ToLower(c.Email), email) {
				matchedOwners[c.ID] = true
			}
		}
	}

	vehicleType := strings.ToLower(strings.TrimSpace(filter.VehicleType))
	plate := strings.ToLower(strings.TrimSpace(filter.PlateNumber))

	vehicles := map[int64]entities.Vehicle{}
	owners := map[string]entities.User{}
	results := make([]RequestSearchResult, 0, len(requests))
	for _, r := range requests {
		if matchedOwners != nil && !matchedOwners[r.CustomerUserID] {
			continue
		}

		v, ok := vehicles[r.VehicleID]
		if !ok {
			v, err = u.vehicles.GetByID(ctx, r.VehicleID)
			if err != nil {
				return nil, err
			}
			vehicles[r.VehicleID] = v
		}
		if vehicleType != "" && !strings.Contains(strings.ToLower(v.Type), vehicleType) {
			continue
		}
		if plate != "" && !strings.Contains(strings.ToLower(v.NumberPlate), plate) {
			continue
		}

		owner, ok := owners[r.CustomerUserID]
		if !ok {
			owner, err = u.identity.GetUserByID(ctx, r.CustomerUserID)
			if err != nil {
				log.Printf("[request][usecase] search owner lookup failed request=%d customer=%s err=%v", r.ID, r.CustomerUserID, err)
				owner = entities.User{}
			}
			owners[r.CustomerUserID] = owner
		}

		results = append(results, RequestSearchResult{Request: r, Vehicle: v, Owner: owner})
	}
	return results, nil
}

func (u *ServiceRequestUseCase) ListCustomers(ctx context.Context) ([]entities.User, error) {
	return u.identity.ListUsersInRole(ctx, entities.RoleCustomer)
}
