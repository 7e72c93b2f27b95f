package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for name, email and password and attempts to
// create a new bidder account via the API.
//
// The password is asked for twice; a mismatch is reported locally and no
// request is made. On success the user still has to log in separately.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}

	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return nil
	}

	msg, err := a.api.Register(ctx, firstName, lastName, email, string(password))
	if err != nil {
		a.handleError(err)
		return err
	}

	if msg == "" {
		msg = "Registration successful. You can now login."
	}
	printlnFn(msg)
	return nil
}

// Login prompts the user for credentials, authenticates against the API and
// stores the returned access token for subsequent requests.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.handleError(err)
		return err
	}

	if err := a.session.SetToken(token); err != nil {
		a.log.Error(ctx, "saving token", "error", err)
		printlnFn("Could not store the session token:", err.Error())
		return err
	}

	printlnFn("Login successful.")
	return nil
}

// Logout drops the stored token and all cached browsing state.
func (a *App) Logout(ctx context.Context) error {
	a.stopRefresher()
	if err := a.session.Clear(); err != nil {
		return err
	}
	a.browser.Reset()
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}
