package booking

import (
	"context"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// selection holds every input of a booking estimate.
type selection struct {
	found    bool
	priceMin float64
	priceMax float64
	priority entity.PriorityTier
}

// NewEstimator prices a booking as the selected service's range with the
// priority fee added to both bounds. No service selected gives a zero range.
func NewEstimator(services ServiceCatalog, cacheSize int) (workflow.Estimator, error) {
	m, err := workflow.NewMemoEstimator(cacheSize,
		func(form *workflow.FormState) selection {
			priority := entity.PriorityTier(form.GetString(KeyPriority))
			if !priority.Valid() {
				priority = entity.PriorityStandard
			}
			id := form.GetString(KeyService)
			if id == "" || services == nil {
				return selection{priority: priority}
			}
			svc, ok := services.Service(context.Background(), id)
			if !ok {
				return selection{priority: priority}
			}
			return selection{found: true, priceMin: svc.PriceMin, priceMax: svc.PriceMax, priority: priority}
		},
		price,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func price(sel selection) entity.PriceEstimate {
	if !sel.found {
		return entity.PriceEstimate{}
	}
	fee := sel.priority.Fee()
	return entity.PriceEstimate{
		Low:  sel.priceMin + fee,
		High: sel.priceMax + fee,
	}
}
