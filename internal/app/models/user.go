package models

import (
	"time"

	"github.com/goccy/go-json"
)

// User is the identity the provider resolves a bearer token to. A user
// decoded from a provider answer keeps that answer in Raw and encodes back
// to it unchanged, so fields the gateway does not model still reach clients.
type User struct {
	ID               string                 `json:"id"`
	Aud              string                 `json:"aud,omitempty"`
	Role             string                 `json:"role,omitempty"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone,omitempty"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at,omitempty"`
	LastSignInAt     *time.Time             `json:"last_sign_in_at,omitempty"`
	CreatedAt        *time.Time             `json:"created_at,omitempty"`
	UpdatedAt        *time.Time             `json:"updated_at,omitempty"`
	AppMetadata      map[string]interface{} `json:"app_metadata,omitempty"`
	UserMetadata     map[string]interface{} `json:"user_metadata,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type userFields User

func (u *User) UnmarshalJSON(data []byte) error {
	var fields userFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*u = User(fields)
	u.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	if len(u.Raw) > 0 {
		return u.Raw, nil
	}
	return json.Marshal(userFields(u))
}
