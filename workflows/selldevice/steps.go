package selldevice

import "RepairDesk/workflow"

type deviceFields struct {
	DeviceType string `validate:"required,oneof=phone laptop tablet other"`
	Brand      string `validate:"min=2"`
	Model      string `validate:"min=2"`
}

type conditionFields struct {
	Condition string `validate:"required,oneof=excellent good fair poor"`
}

// Gate returns the sell-device step rules. Storage and battery health are optional.
func Gate() workflow.Gate {
	return workflow.NewGate(map[int]workflow.Rule{
		StepDevice: workflow.StructRule(func(form *workflow.FormState) any {
			return deviceFields{
				DeviceType: form.GetString(KeyDeviceType),
				Brand:      form.GetString(KeyBrand),
				Model:      form.GetString(KeyModel),
			}
		}),
		StepCondition: workflow.StructRule(func(form *workflow.FormState) any {
			return conditionFields{Condition: form.GetString(KeyCondition)}
		}),
		StepContact: workflow.ContactRule(),
	})
}
