// Package models defines server-side data models persisted in the database.
package models

import (
	"fmt"
	"time"
)

// User is one registered person. It is a value: the With* methods return
// modified copies that keep the same ID, the receiver is never changed.
type User struct {
	ID               string
	Name             string
	Email            string
	RegistrationDate time.Time
	LastLogin        time.Time

	// FaceData is the encoded face descriptor, nil until a face is enrolled.
	FaceData *string
}

// UserOption customizes a User built by NewUser.
type UserOption func(*User)

// WithFace sets the face descriptor at construction time.
func WithFace(faceData string) UserOption {
	return func(u *User) {
		u.FaceData = &faceData
	}
}

// NewUser builds a User from its required fields. FaceData stays absent
// unless WithFace is passed.
func NewUser(id, name, email string, registrationDate, lastLogin time.Time, opts ...UserOption) User {
	u := User{
		ID:               id,
		Name:             name,
		Email:            email,
		RegistrationDate: registrationDate,
		LastLogin:        lastLogin,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// Face returns the face descriptor and whether one is present.
func (u User) Face() (string, bool) {
	if u.FaceData == nil {
		return "", false
	}
	return *u.FaceData, true
}

// HasFace reports whether a face descriptor is enrolled.
func (u User) HasFace() bool {
	return u.FaceData != nil
}

// WithLastLogin returns a copy of u with LastLogin set to t.
func (u User) WithLastLogin(t time.Time) User {
	u.LastLogin = t
	return u
}

// WithFaceData returns a copy of u holding faceData.
func (u User) WithFaceData(faceData string) User {
	u.FaceData = &faceData
	return u
}

// WithoutFaceData returns a copy of u with no face descriptor.
func (u User) WithoutFaceData() User {
	u.FaceData = nil
	return u
}

// WithProfile returns a copy of u with a new name and email.
func (u User) WithProfile(name, email string) User {
	u.Name = name
	u.Email = email
	return u
}

// Equal reports whether u and other hold the same values. Timestamps are
// compared as instants and FaceData by content, not by pointer.
func (u User) Equal(other User) bool {
	if u.ID != other.ID || u.Name != other.Name || u.Email != other.Email {
		return false
	}
	if !u.RegistrationDate.Equal(other.RegistrationDate) || !u.LastLogin.Equal(other.LastLogin) {
		return false
	}
	a, okA := u.Face()
	b, okB := other.Face()
	return okA == okB && a == b
}

// String implements fmt.Stringer. The face payload itself is never printed.
func (u User) String() string {
	face := "absent"
	if u.HasFace() {
		face = "present"
	}
	return fmt.Sprintf("User(id=%s, name=%s, email=%s, registrationDate=%s, lastLogin=%s, faceData=%s)",
		u.ID, u.Name, u.Email,
		u.RegistrationDate.Format(time.RFC3339), u.LastLogin.Format(time.RFC3339), face)
}
