package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/registerface/internal/client/client"
)

// getSimpleText and getFaceData are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getFaceData = GetFaceData

// report prints err to the user and returns it unchanged.
func report(prefix string, err error) error {
	printlnFn(fmt.Sprintf("%s: %s", prefix, err.Error()))
	return err
}

// Register prompts for id, name, email and an optional face, then creates
// the account.
func (a *App) Register(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id (digits)", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	faceData, err := getFaceData(a.reader, "Enter face (empty to skip)", a.out)
	if err != nil {
		return err
	}

	p, err := a.auth.Register(ctx, id, name, email, faceData)
	if err != nil {
		return report("Registration failed", err)
	}

	printlnFn("Registered:", p.String())
	return nil
}

// Login prompts for the user id and a face descriptor and authenticates.
//
// A successful login switches Mode to online. When the server cannot be
// reached Mode becomes offline; face matching happens on the server, so
// there is no offline login.
func (a *App) Login(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", a.out)
	if err != nil {
		return err
	}
	faceData, err := getFaceData(a.reader, "Enter face", a.out)
	if err != nil {
		return err
	}

	res, err := a.auth.Login(ctx, id, faceData)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return report("Login unsuccessful", err)
	}

	a.setMode(ModeOnline)
	printlnFn(fmt.Sprintf("Welcome, %s (similarity %.1f%%)", res.Profile.Name, res.Similarity))
	return nil
}

// Logout forgets the locally stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return report("Logout failed", err)
	}
	printlnFn("Logged out")
	return nil
}
