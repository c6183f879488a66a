package workflow

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// basicEmail accepts the loose local@domain.tld shape used by the forms.
var basicEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return basicEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Gate holds one rule per gated step. Steps without a rule pass.
type Gate struct {
	rules map[int]Rule
}

// NewGate builds a gate from a step → rule table.
func NewGate(rules map[int]Rule) Gate {
	g := Gate{rules: make(map[int]Rule, len(rules))}
	for step, rule := range rules {
		g.rules[step] = rule
	}
	return g
}

// Passes reports whether the form satisfies the rule of the step.
func (g Gate) Passes(step int, form *FormState) bool {
	rule, ok := g.rules[step]
	if !ok || rule == nil {
		return true
	}
	return rule(form)
}

// StructRule validates the struct returned by project against its
// `validate` tags. project must return a struct value or pointer.
func StructRule(project func(form *FormState) any) Rule {
	return func(form *FormState) bool {
		return validate.Struct(project(form)) == nil
	}
}

type contactFields struct {
	Name  string `validate:"min=2"`
	Email string `validate:"basic_email"`
	Phone string `validate:"min=10"`
}

// ContactRule is the rule of every contact step: name of two characters
// or more, an email of local@domain.tld shape and a phone of ten characters or more.
func ContactRule() Rule {
	return StructRule(func(form *FormState) any {
		return contactFields{
			Name:  form.GetString(KeyName),
			Email: form.GetString(KeyEmail),
			Phone: form.GetString(KeyPhone),
		}
	})
}
