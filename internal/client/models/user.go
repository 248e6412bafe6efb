// Package models defines the client-side data types of the TaskManager CLI:
// the user profile returned by the remote authority and the session record
// persisted between runs.
package models

import "encoding/json"

// UserProfile is the payload the authority returns for an authenticated user.
// The client treats it as mostly opaque: extra JSON fields are ignored, and
// nothing beyond presence is validated here.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MarshalProfile serializes a profile for durable storage.
func MarshalProfile(u *UserProfile) ([]byte, error) {
	return json.Marshal(u)
}

// UnmarshalProfile restores a profile from its stored form.
func UnmarshalProfile(data []byte) (*UserProfile, error) {
	var u UserProfile
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
