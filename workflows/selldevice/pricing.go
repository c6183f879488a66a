package selldevice

import (
	"math"

	"RepairDesk/entity"
	"RepairDesk/workflow"
)

// quoteSpread is the width of the displayed offer range.
const quoteSpread = 50

type selection struct {
	deviceType entity.DeviceType
	condition  entity.Condition
}

// NewEstimator prices a trade-in as base price × condition multiplier,
// rounded, with the range [x, x+50]. Incomplete selections give a zero range.
func NewEstimator(cacheSize int) (workflow.Estimator, error) {
	m, err := workflow.NewMemoEstimator(cacheSize,
		func(form *workflow.FormState) selection {
			return selection{
				deviceType: entity.DeviceType(form.GetString(KeyDeviceType)),
				condition:  entity.Condition(form.GetString(KeyCondition)),
			}
		},
		price,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func price(sel selection) entity.PriceEstimate {
	base, ok := sel.deviceType.BasePrice()
	if !ok {
		return entity.PriceEstimate{}
	}
	multiplier, ok := sel.condition.Multiplier()
	if !ok {
		return entity.PriceEstimate{}
	}
	low := math.Round(base * multiplier)
	return entity.PriceEstimate{Low: low, High: low + quoteSpread}
}
