package workflow

import (
	"context"

	"RepairDesk/entity"
)

// WorkflowID is a unique identifier for a workflow type.
type WorkflowID string

// Rule reports whether the data of one step is complete enough to leave it.
// Rules must be pure and must not panic on missing data.
type Rule func(form *FormState) bool

// Estimator derives a price range from the current selection fields.
type Estimator interface {
	Estimate(form *FormState) entity.PriceEstimate
}

// EstimatorFunc adapts a plain function to Estimator.
type EstimatorFunc func(form *FormState) entity.PriceEstimate

func (f EstimatorFunc) Estimate(form *FormState) entity.PriceEstimate {
	return f(form)
}

// Creator sends a finished form to the external booking/sale service.
// It receives a snapshot taken when Submit was called, never the live form.
type Creator interface {
	Create(ctx context.Context, form *FormState) (*entity.Receipt, error)
}

// CreatorFunc adapts a plain function to Creator.
type CreatorFunc func(ctx context.Context, form *FormState) (*entity.Receipt, error)

func (f CreatorFunc) Create(ctx context.Context, form *FormState) (*entity.Receipt, error) {
	return f(ctx, form)
}

// SessionStorage keeps live sessions between requests of the hosting layer.
type SessionStorage interface {
	// Save stores a session under its ID.
	Save(session *Session)

	// Load returns the session or false when it is unknown or expired.
	Load(id string) (*Session, bool)

	// Delete discards the session.
	Delete(id string)
}
