package models

// Session is the authenticated-state record: an opaque bearer token and the
// profile it belongs to. A session is either fully present (both fields set)
// or absent; no partial state is ever handed to the rest of the application.
type Session struct {
	Token string
	User  UserProfile
}
