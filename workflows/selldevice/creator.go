package selldevice

import (
	"context"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// Creator turns a sell-device form into a create-sale-quote call carrying
// the locally computed estimate.
type Creator struct {
	api       API
	estimator workflow.Estimator
}

func NewCreator(api API, estimator workflow.Estimator) *Creator {
	return &Creator{api: api, estimator: estimator}
}

func (c *Creator) Create(ctx context.Context, form *workflow.FormState) (*entity.Receipt, error) {
	return c.api.CreateSaleQuote(ctx, Request(form, c.estimator.Estimate(form)))
}

// Request builds the payload of a sell-device form.
func Request(form *workflow.FormState, estimate entity.PriceEstimate) entity.SaleQuoteRequest {
	return entity.SaleQuoteRequest{
		DeviceType:    entity.DeviceType(form.GetString(KeyDeviceType)),
		DeviceBrand:   form.GetString(KeyBrand),
		DeviceModel:   form.GetString(KeyModel),
		Condition:     entity.Condition(form.GetString(KeyCondition)),
		Storage:       form.GetString(KeyStorage),
		BatteryHealth: form.GetString(KeyBattery),
		Contact: entity.Contact{
			Name:  form.GetString(workflow.KeyName),
			Email: form.GetString(workflow.KeyEmail),
			Phone: form.GetString(workflow.KeyPhone),
		},
		Estimate: estimate,
	}
}
