package entity

// StaffAuth identifies an authenticated staff request.
type StaffAuth struct {
	Username string `json:"username"`
}
