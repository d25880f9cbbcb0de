package models

import "github.com/goccy/go-json"

// Session is the token grant answer of the provider. Like User it encodes
// back to the provider's own payload when it was decoded from one.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`

	Raw json.RawMessage `json:"-"`
}

type sessionFields Session

func (s *Session) UnmarshalJSON(data []byte) error {
	var fields sessionFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = Session(fields)
	s.Raw = append(json.RawMessage(nil), data...)
	return nil
}

func (s Session) MarshalJSON() ([]byte, error) {
	if len(s.Raw) > 0 {
		return s.Raw, nil
	}
	return json.Marshal(sessionFields(s))
}
