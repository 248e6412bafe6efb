// Package services contains the application services of the TaskManager CLI:
// the session controller (login, registration, logout), the account-deletion
// flow and the notification-preferences panel. Services decide outcomes and
// hand their delivery to the notify and nav boundaries.
package services

import (
	"context"
	"errors"

	"github.com/taskmanhq/taskman-cli/internal/client/client"
	"github.com/taskmanhq/taskman-cli/internal/client/forms"
	"github.com/taskmanhq/taskman-cli/internal/client/models"
	"github.com/taskmanhq/taskman-cli/internal/client/nav"
	"github.com/taskmanhq/taskman-cli/internal/client/notify"
	"github.com/taskmanhq/taskman-cli/internal/client/session"
	"github.com/taskmanhq/taskman-cli/internal/logging"
)

// SubmissionState tells whether a submission is currently in flight.
// An explicit type rather than a bool so further states slot in cleanly.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateInFlight
)

func (s SubmissionState) String() string {
	if s == StateInFlight {
		return "in-flight"
	}
	return "idle"
}

// ErrAlreadySubmitting rejects a submission started while another one for the
// same controller is still in flight. Surfaces should disable their submit
// trigger while in flight; this guard is the backstop, not the mechanism.
var ErrAlreadySubmitting = errors.New("submission already in flight")

// User-facing messages. Remote failures fall back to the per-operation
// generic when the server supplies no message of its own.
const (
	msgLoginSuccess     = "Login successful!"
	msgLoginFallback    = "Invalid credentials"
	msgRegisterSuccess  = "Registration successful! Please login."
	msgRegisterFallback = "Registration failed"
	msgMissingFields    = "Please fill in all fields"
	msgPasswordMismatch = "Passwords don't match"
	msgPasswordTooShort = "Password must be at least 6 characters"
)

// SessionController orchestrates credential submission: form validation,
// the gateway call, the durable session write, and the notification and
// navigation effects. At most one submission is in flight at a time.
type SessionController struct {
	gateway   client.Client
	store     *session.Store
	notifier  notify.Notifier
	navigator nav.Navigator
	log       logging.Logger

	state   SubmissionState
	current *models.Session
}

func NewSessionController(gw client.Client, store *session.Store, n notify.Notifier, nv nav.Navigator, log logging.Logger) *SessionController {
	return &SessionController{
		gateway:   gw,
		store:     store,
		notifier:  n,
		navigator: nv,
		log:       log,
		state:     StateIdle,
	}
}

// State reports the current submission state.
func (c *SessionController) State() SubmissionState { return c.state }

// Current returns the active session, or nil when logged out.
func (c *SessionController) Current() *models.Session { return c.current }

// Restore loads the durable session record at startup and, when one is
// active, installs its token on the gateway.
func (c *SessionController) Restore(ctx context.Context) error {
	sess, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	c.current = sess
	if sess != nil {
		c.gateway.SetToken(sess.Token)
	}
	return nil
}

// SubmitLogin validates the form locally and, if it passes, exchanges the
// credentials for a session. On success the session is persisted atomically,
// a success notification is emitted and the user is sent home. On any
// failure nothing is persisted and the matching message is surfaced. The
// controller is back in StateIdle by the time SubmitLogin returns.
func (c *SessionController) SubmitLogin(ctx context.Context, form forms.LoginForm) error {
	if c.state != StateIdle {
		return ErrAlreadySubmitting
	}
	if err := form.Validate(); err != nil {
		c.notifier.Notify(notify.Error(validationMessage(err)))
		return err
	}

	c.state = StateInFlight
	defer func() { c.state = StateIdle }()

	res, err := c.gateway.Login(ctx, form.Email, form.Password)
	if err != nil {
		c.log.Error(ctx, "login failed", "error", err)
		c.notifier.Notify(notify.Error(remoteMessage(err, msgLoginFallback)))
		return err
	}

	sess := &models.Session{Token: res.Token, User: res.User}
	if err := c.store.Save(ctx, sess); err != nil {
		c.log.Error(ctx, "session save failed", "error", err)
		c.notifier.Notify(notify.Error("Could not save your session"))
		return err
	}

	c.current = sess
	c.gateway.SetToken(sess.Token)
	c.notifier.Notify(notify.Success(msgLoginSuccess))
	c.navigator.Go(nav.DestinationHome)
	return nil
}

// SubmitRegister creates an account. Registration issues no token: on
// success the user is sent to the login screen to sign in, and no session
// state is touched.
func (c *SessionController) SubmitRegister(ctx context.Context, form forms.RegisterForm) error {
	if c.state != StateIdle {
		return ErrAlreadySubmitting
	}
	if err := form.Validate(); err != nil {
		c.notifier.Notify(notify.Error(validationMessage(err)))
		return err
	}

	c.state = StateInFlight
	defer func() { c.state = StateIdle }()

	if _, err := c.gateway.Register(ctx, form.Name, form.Email, form.Password); err != nil {
		c.log.Error(ctx, "registration failed", "error", err)
		c.notifier.Notify(notify.Error(remoteMessage(err, msgRegisterFallback)))
		return err
	}

	c.notifier.Notify(notify.Success(msgRegisterSuccess))
	c.navigator.Go(nav.DestinationLogin)
	return nil
}

// Logout clears the durable record, the cached session and the gateway
// token, then navigates to the login screen. Logging out without a session
// is a no-op on the store side; the navigation still happens, once.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.current = nil
	c.gateway.SetToken("")
	c.navigator.Go(nav.DestinationLogin)
	return nil
}

// validationMessage maps the local validation taxonomy to its user-facing
// messages.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, forms.ErrPasswordMismatch):
		return msgPasswordMismatch
	case errors.Is(err, forms.ErrPasswordTooShort):
		return msgPasswordTooShort
	default:
		return msgMissingFields
	}
}

// remoteMessage picks the server-supplied message when there is one and the
// per-operation fallback otherwise.
func remoteMessage(err error, fallback string) string {
	if msg := client.Message(err); msg != "" {
		return msg
	}
	return fallback
}
