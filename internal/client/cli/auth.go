package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/taskmanhq/taskman-cli/internal/client/forms"
)

// getSimpleText, getExactText and getPassword are indirections so tests can
// drive the interactive commands without a terminal.
var getSimpleText = GetSimpleText
var getExactText = GetExactText
var getPassword = GetPassword

// Login collects credentials and submits them through the session
// controller. Outcome messages are delivered by the notifier; the returned
// error is for the command loop's bookkeeping only.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	form := forms.LoginForm{}
	form, _ = form.Set(forms.FieldEmail, email)
	form, _ = form.Set(forms.FieldPassword, string(password))

	return a.controller.SubmitLogin(ctx, form)
}

// Register collects the registration fields and submits them. On success
// the user still has to log in: registration issues no session.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Password (at least 6 characters)", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	form := forms.RegisterForm{}
	form, _ = form.Set(forms.FieldName, name)
	form, _ = form.Set(forms.FieldEmail, email)
	form, _ = form.Set(forms.FieldPassword, string(password))
	form, _ = form.Set(forms.FieldConfirmPassword, string(confirm))

	return a.controller.SubmitRegister(ctx, form)
}

// Logout tears the session down. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	return a.controller.Logout(ctx)
}

// Whoami prints the active session's identity.
func (a *App) Whoami(ctx context.Context) error {
	sess := a.controller.Current()
	if sess == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", sess.User.Name, sess.User.Email)
	return nil
}
