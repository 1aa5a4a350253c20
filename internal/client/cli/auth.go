package cli

import (
	"context"

	"github.com/mindcase/mindcase/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up form and signs in with the new account.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter username", &reg.Username},
		{"Enter email", &reg.Email},
		{"Enter first name", &reg.FirstName},
		{"Enter last name", &reg.LastName},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	reg.Password = pw

	sess, err := a.state.Session.Register(ctx, reg)
	if err != nil {
		return err
	}
	a.printf("Welcome, %s!\n", sess.DisplayName)
	return nil
}

// Login prompts for email and password.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	pw, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	sess, err := a.state.Session.Login(ctx, email, pw)
	if err != nil {
		return err
	}
	a.printf("Signed in as %s\n", sess.DisplayName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.state.Logout(ctx); err != nil {
		return err
	}
	a.printf("Signed out.\n")
	return nil
}
