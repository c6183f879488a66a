package booking

import "RepairDesk/workflow"

type serviceFields struct {
	Service string `validate:"required"`
}

type deviceFields struct {
	Brand string `validate:"min=2"`
	Model string `validate:"min=2"`
	Issue string `validate:"min=10"`
}

type scheduleFields struct {
	Date     string `validate:"required"`
	TimeSlot string `validate:"required"`
}

// Gate returns the booking step rules. The confirmation step is not gated.
func Gate() workflow.Gate {
	return workflow.NewGate(map[int]workflow.Rule{
		StepService: workflow.StructRule(func(form *workflow.FormState) any {
			return serviceFields{Service: form.GetString(KeyService)}
		}),
		StepDevice: workflow.StructRule(func(form *workflow.FormState) any {
			return deviceFields{
				Brand: form.GetString(KeyBrand),
				Model: form.GetString(KeyModel),
				Issue: form.GetString(KeyIssue),
			}
		}),
		StepSchedule: workflow.StructRule(func(form *workflow.FormState) any {
			return scheduleFields{
				Date:     form.GetString(KeyDate),
				TimeSlot: form.GetString(KeyTimeSlot),
			}
		}),
		StepContact: workflow.ContactRule(),
	})
}
