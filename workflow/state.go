package workflow

import (
	"encoding/json"
	"strconv"
	"sync"

	"RepairDesk/entity"
)

// Contact field keys shared by every workflow.
const (
	KeyName  = "name"
	KeyEmail = "email"
	KeyPhone = "phone"
)

// FormState is the record edited across the steps of one workflow.
// All getters are nil-safe and return zero values for missing fields.
type FormState struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewFormState creates an empty form.
func NewFormState() *FormState {
	return &FormState{data: make(map[string]any)}
}

// Seed pre-fills contact fields from a profile, leaving typed values untouched.
func (s *FormState) Seed(p *entity.Profile) {
	if p == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := map[string]string{KeyName: p.Name, KeyEmail: p.Email, KeyPhone: p.Phone}
	for k, v := range seed {
		if v == "" {
			continue
		}
		if cur, ok := s.data[k].(string); ok && cur != "" {
			continue
		}
		s.data[k] = v
	}
}

// GetString retrieves a value from the form as text. Numbers decoded from
// JSON are formatted without exponent; other non-string values read as "".
func (s *FormState) GetString(key string) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch v := s.data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

// Set stores a value in the form.
func (s *FormState) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]any)
	}
	s.data[key] = value
}

// MergeData merges additional fields into the form.
func (s *FormState) MergeData(data map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]any)
	}
	for k, v := range data {
		s.data[k] = v
	}
}

// Fields returns a copy of the named fields, or of all fields when none are named.
func (s *FormState) Fields(keys ...string) map[string]any {
	out := make(map[string]any)
	if s == nil {
		return out
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(keys) == 0 {
		for k, v := range s.data {
			out[k] = v
		}
		return out
	}
	for _, k := range keys {
		if v, ok := s.data[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Snapshot copies the form. Later edits of the original do not reach the copy.
func (s *FormState) Snapshot() *FormState {
	return &FormState{data: s.Fields()}
}
