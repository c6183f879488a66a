package selldevice

import (
	"context"
	"fmt"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// Workflow ID
const (
	WorkflowID workflow.WorkflowID = "sell_device"
)

// Steps
const (
	StepDevice       = 1
	StepCondition    = 2
	StepContact      = 3
	StepConfirmation = 4

	TotalSteps = StepConfirmation
)

// Form field keys
const (
	KeyDeviceType = "device_type"
	KeyBrand      = "device_brand"
	KeyModel      = "device_model"
	KeyCondition  = "condition"
	KeyStorage    = "storage"
	KeyBattery    = "battery_health"
)

// API is the sale side of the external booking/sale service.
type API interface {
	CreateSaleQuote(ctx context.Context, req entity.SaleQuoteRequest) (*entity.Receipt, error)
}

// NewDefinition builds the sell-device workflow:
// device → condition → contact → confirmation.
func NewDefinition(api API, estimateCacheSize int) (*workflow.Definition, error) {
	estimator, err := NewEstimator(estimateCacheSize)
	if err != nil {
		return nil, fmt.Errorf("sell-device estimator: %w", err)
	}

	return &workflow.Definition{
		ID:    WorkflowID,
		Steps: TotalSteps,
		StepFields: map[int][]string{
			StepDevice:    {KeyDeviceType, KeyBrand, KeyModel},
			StepCondition: {KeyCondition, KeyStorage, KeyBattery},
			StepContact:   {workflow.KeyName, workflow.KeyEmail, workflow.KeyPhone},
		},
		Gate:      Gate(),
		Estimator: estimator,
		Creator:   NewCreator(api, estimator),
		EchoFields: []string{
			KeyDeviceType, KeyBrand, KeyModel, KeyCondition,
			workflow.KeyName, workflow.KeyEmail,
		},
	}, nil
}
