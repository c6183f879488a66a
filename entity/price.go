package entity

// PriceEstimate is a price range in whole currency units.
type PriceEstimate struct {
	Low  float64 `json:"low" bson:"low"`
	High float64 `json:"high" bson:"high"`
}

func (p PriceEstimate) IsZero() bool {
	return p.Low == 0 && p.High == 0
}
