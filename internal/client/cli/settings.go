package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/taskmanhq/taskman-cli/internal/client/services"
)

// Settings prints the notification toggles.
func (a *App) Settings(ctx context.Context) error {
	snap := a.prefs.Snapshot()
	fmt.Println("Notification preferences:")
	for _, key := range a.prefs.Keys() {
		state := "off"
		if snap[key] {
			state = "on"
		}
		fmt.Printf("  %-20s %s\n", key, state)
	}
	return nil
}

// Toggle flips one notification preference.
func (a *App) Toggle(ctx context.Context, key string) error {
	v, err := a.prefs.Toggle(services.PreferenceKey(key))
	if err != nil {
		fmt.Printf("Unknown preference %q. Try 'settings' for the list.\n", key)
		return err
	}
	state := "off"
	if v {
		state = "on"
	}
	fmt.Printf("%s is now %s\n", key, state)
	return nil
}

// DeleteAccount drives the two-stage confirmation dialog for the
// irreversible account deletion. An empty confirmation line cancels; wrong
// text keeps the dialog open for another try.
func (a *App) DeleteAccount(ctx context.Context) error {
	flow := services.NewAccountDeletionFlow(a.gateway, a.controller, a.notifier, a.log)
	if err := flow.Begin(); err != nil {
		return err
	}

	fmt.Println("This action cannot be undone. It will permanently delete")
	fmt.Println("your account and remove all your data.")

	for {
		text, err := getExactText(a.reader, `Type "DELETE" to confirm (empty line cancels)`, os.Stdout)
		if err != nil {
			return err
		}
		if text == "" {
			return flow.Cancel()
		}
		if err := flow.Type(text); err != nil {
			return err
		}

		err = flow.Confirm(ctx)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, services.ErrConfirmationMismatch):
			continue // the notifier already showed the hint
		default:
			// remote failure: message already surfaced, leave the command
			return err
		}
	}
}
