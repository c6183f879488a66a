package booking

import (
	"context"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// Creator turns a booking form into a create-booking call.
type Creator struct {
	api       API
	estimator workflow.Estimator
}

func NewCreator(api API, estimator workflow.Estimator) *Creator {
	return &Creator{api: api, estimator: estimator}
}

func (c *Creator) Create(ctx context.Context, form *workflow.FormState) (*entity.Receipt, error) {
	return c.api.CreateBooking(ctx, Request(form, c.estimator.Estimate(form)))
}

// Request builds the payload of a booking form.
func Request(form *workflow.FormState, estimate entity.PriceEstimate) entity.BookingRequest {
	priority := entity.PriorityTier(form.GetString(KeyPriority))
	if !priority.Valid() {
		priority = entity.PriorityStandard
	}
	return entity.BookingRequest{
		ServiceID:   form.GetString(KeyService),
		Priority:    priority,
		DeviceBrand: form.GetString(KeyBrand),
		DeviceModel: form.GetString(KeyModel),
		Issue:       form.GetString(KeyIssue),
		Date:        form.GetString(KeyDate),
		TimeSlotID:  form.GetString(KeyTimeSlot),
		Contact: entity.Contact{
			Name:  form.GetString(workflow.KeyName),
			Email: form.GetString(workflow.KeyEmail),
			Phone: form.GetString(workflow.KeyPhone),
		},
		Estimate: estimate,
	}
}
