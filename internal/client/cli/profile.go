package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

const defaultListLimit = 20

var errUsage = errors.New("usage")

func (a *App) Profile(ctx context.Context) error {
	p, err := a.auth.Profile(ctx)
	if err != nil {
		return report("Profile", err)
	}
	printlnFn(p.String())
	return nil
}

// Update asks for a new name and email. An empty answer keeps the current
// value.
func (a *App) Update(ctx context.Context) error {
	cur, err := a.auth.Profile(ctx)
	if err != nil {
		return report("Update", err)
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Enter name [%s]", cur.Name), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Enter email [%s]", cur.Email), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = cur.Name
	}
	if email == "" {
		email = cur.Email
	}

	p, err := a.auth.UpdateProfile(ctx, name, email)
	if err != nil {
		return report("Update", err)
	}
	printlnFn("Updated:", p.String())
	return nil
}

func (a *App) Enroll(ctx context.Context) error {
	faceData, err := getFaceData(a.reader, "Enter new face", a.out)
	if err != nil {
		return err
	}
	if faceData == "" {
		printlnFn("Nothing to enroll")
		return errUsage
	}

	if _, err := a.auth.EnrollFace(ctx, faceData); err != nil {
		return report("Enroll", err)
	}
	printlnFn("Face enrolled")
	return nil
}

// Delete removes the account after the user retypes its id.
func (a *App) Delete(ctx context.Context) error {
	id := a.auth.CurrentUser()
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Type %q to delete your account", id), a.out)
	if err != nil {
		return err
	}
	if id == "" || answer != id {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx); err != nil {
		return report("Delete", err)
	}
	printlnFn("Account deleted")
	return nil
}

// List prints registered users. args are an optional limit and offset.
func (a *App) List(ctx context.Context, args []string) error {
	limit, offset := defaultListLimit, 0
	var err error
	if len(args) > 0 {
		if limit, err = strconv.Atoi(args[0]); err != nil || limit <= 0 {
			printlnFn("Usage: list [limit] [offset]")
			return errUsage
		}
	}
	if len(args) > 1 {
		if offset, err = strconv.Atoi(args[1]); err != nil || offset < 0 {
			printlnFn("Usage: list [limit] [offset]")
			return errUsage
		}
	}

	users, err := a.auth.ListUsers(ctx, limit, offset)
	if err != nil {
		return report("List", err)
	}
	if len(users) == 0 {
		printlnFn("No users")
		return nil
	}
	for _, u := range users {
		printlnFn(u.String())
	}
	return nil
}
