package domain

import "time"

// User is the authenticated account profile. Exactly one user is held
// client-side at a time, or none when signed out. Only the auth store
// mutates it.
type User struct {
	// ID is the unique account identifier.
	ID string

	// Email is the sign-in address.
	Email string

	// DisplayName is the optional display name shown in the UI.
	DisplayName string

	// AvatarURL is the optional profile image location.
	AvatarURL string

	// CreatedAt is when the account was created.
	CreatedAt time.Time

	// NotificationTime is the preferred daily alert time in "HH:MM".
	NotificationTime string

	// Theme is the preferred theme name.
	Theme string

	// FontSize is the preferred font size name.
	FontSize string
}

// ProfileUpdate carries the fields of a profile update. Nil fields are
// left unchanged by the merge.
type ProfileUpdate struct {
	DisplayName      *string
	AvatarURL        *string
	NotificationTime *string
	Theme            *string
	FontSize         *string
}

// Apply merges the update into a copy of u and returns it.
func (p ProfileUpdate) Apply(u User) User {
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.NotificationTime != nil {
		u.NotificationTime = *p.NotificationTime
	}
	if p.Theme != nil {
		u.Theme = *p.Theme
	}
	if p.FontSize != nil {
		u.FontSize = *p.FontSize
	}

	return u
}

// Session correlates to the current authenticated user. It is non-nil
// exactly when a user is signed in.
type Session struct {
	// UserID is the account the session belongs to.
	UserID string

	// AccessToken is the opaque bearer token for backend calls.
	// Empty in demo mode, where the session is fabricated locally.
	AccessToken string

	// RefreshToken renews the access token when it expires.
	RefreshToken string

	// ExpiresAt is when the access token stops being valid.
	ExpiresAt time.Time
}
