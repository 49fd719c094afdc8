// Package models defines client-side data models used by the registerface CLI.
package models

import (
	"fmt"
	"time"
)

// Profile is what the server reveals about a user. The face descriptor
// itself never comes back, only whether one is enrolled.
type Profile struct {
	ID               string
	Name             string
	Email            string
	RegistrationDate time.Time
	LastLogin        time.Time
	HasFace          bool
}

func (p Profile) String() string {
	face := "no"
	if p.HasFace {
		face = "yes"
	}
	return fmt.Sprintf("%s  %s <%s>  registered %s  last login %s  face enrolled: %s",
		p.ID, p.Name, p.Email,
		p.RegistrationDate.Local().Format(time.DateTime),
		p.LastLogin.Local().Format(time.DateTime),
		face)
}

// LoginResult is returned by a successful face login.
type LoginResult struct {
	Profile    Profile
	Similarity float64
}

// SnapshotUpload tells where to PUT a face snapshot and how to confirm it.
type SnapshotUpload struct {
	ID  string
	URL string
}
