package entity

import "strings"

type Contact struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"required"`
	Phone string `json:"phone" bson:"phone" validate:"required"`
}

// Profile is the authenticated customer data used to pre-fill contact fields.
type Profile struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

func (c Contact) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(c.Name), " ")
	return first
}
