package booking

import (
	"context"
	"fmt"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// Workflow ID
const (
	WorkflowID workflow.WorkflowID = "booking"
)

// Steps
const (
	StepService      = 1
	StepDevice       = 2
	StepSchedule     = 3
	StepContact      = 4
	StepConfirmation = 5

	TotalSteps = StepConfirmation
)

// Form field keys
const (
	KeyService  = "service"
	KeyPriority = "priority"
	KeyBrand    = "device_brand"
	KeyModel    = "device_model"
	KeyIssue    = "issue"
	KeyDate     = "date"
	KeyTimeSlot = "time_slot"
)

// ServiceCatalog resolves a selected repair service.
type ServiceCatalog interface {
	Service(ctx context.Context, id string) (entity.RepairService, bool)
}

// API is the booking side of the external booking/sale service.
type API interface {
	CreateBooking(ctx context.Context, req entity.BookingRequest) (*entity.Receipt, error)
}

// NewDefinition builds the repair booking workflow:
// service → device → schedule → contact → confirmation.
func NewDefinition(api API, services ServiceCatalog, estimateCacheSize int) (*workflow.Definition, error) {
	estimator, err := NewEstimator(services, estimateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("booking estimator: %w", err)
	}

	return &workflow.Definition{
		ID:    WorkflowID,
		Steps: TotalSteps,
		StepFields: map[int][]string{
			StepService:  {KeyService, KeyPriority},
			StepDevice:   {KeyBrand, KeyModel, KeyIssue},
			StepSchedule: {KeyDate, KeyTimeSlot},
			StepContact:  {workflow.KeyName, workflow.KeyEmail, workflow.KeyPhone},
		},
		Gate:      Gate(),
		Estimator: estimator,
		Creator:   NewCreator(api, estimator),
		EchoFields: []string{
			KeyService, KeyPriority, KeyBrand, KeyModel,
			KeyDate, KeyTimeSlot, workflow.KeyName, workflow.KeyEmail,
		},
	}, nil
}
