package core

import (
	"RepairDesk/entity"
	"crypto/subtle"
	"fmt"
)

const adminUsername = "admin"

// AuthenticateByToken accepts the configured listen key as the admin, or
// any staff key stored in the repository.
func (c *Core) AuthenticateByToken(token string) (*entity.StaffAuth, error) {
	if token == "" {
		return nil, fmt.Errorf("empty token")
	}
	if c.authKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) == 1 {
		return &entity.StaffAuth{Username: adminUsername}, nil
	}
	username, err := c.repo.CheckApiKey(token)
	if err != nil {
		return nil, err
	}
	return &entity.StaffAuth{Username: username}, nil
}

// ValidateToken is AuthenticateByToken for the websocket upgrade.
func (c *Core) ValidateToken(token string) (string, error) {
	staff, err := c.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return staff.Username, nil
}

func (c *Core) GenerateApiKey(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("%w: username is empty", ErrInvalidRequest)
	}
	apiKey, err := c.repo.GenerateApiKey(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}
	return apiKey, nil
}
