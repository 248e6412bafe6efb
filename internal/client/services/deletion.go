package services

import (
	"context"
	"errors"

	"github.com/taskmanhq/taskman-cli/internal/client/client"
	"github.com/taskmanhq/taskman-cli/internal/client/notify"
	"github.com/taskmanhq/taskman-cli/internal/logging"
)

// FlowState is the position of the account-deletion dialog.
type FlowState int

const (
	FlowClosed FlowState = iota
	FlowOpen
	FlowConfirming
	FlowDeleted
)

func (s FlowState) String() string {
	switch s {
	case FlowOpen:
		return "open"
	case FlowConfirming:
		return "confirming"
	case FlowDeleted:
		return "deleted"
	default:
		return "closed"
	}
}

// confirmPhrase must be typed, exactly, before the destructive call fires.
// Case-sensitive, no trimming.
const confirmPhrase = "DELETE"

var (
	// ErrConfirmationMismatch means the typed text was not the confirm phrase.
	ErrConfirmationMismatch = errors.New("confirmation text does not match")
	// ErrDeletionInFlight rejects any interaction while the delete call runs.
	ErrDeletionInFlight = errors.New("deletion already in progress")
	// ErrDialogNotOpen rejects Type/Confirm/Cancel before Begin.
	ErrDialogNotOpen = errors.New("deletion dialog is not open")
	// ErrFlowFinished rejects interaction after a successful deletion.
	ErrFlowFinished = errors.New("deletion flow already completed")
	// ErrNoSession means there is no account to delete.
	ErrNoSession = errors.New("no active session")
)

const (
	msgDeleteSuccess  = "Account deleted successfully"
	msgDeleteFallback = "Failed to delete account"
	msgConfirmHint    = `Please type "DELETE" to confirm`
)

// AccountDeletionFlow gates the irreversible delete-account call behind a
// typed confirmation:
//
//	Closed -> Open -> Confirming -> Deleted
//	                     \-> Open  (rollback on remote failure)
//
// The destructive call fires only from Open with the exact confirm phrase
// typed, and never while a previous attempt is still in flight.
type AccountDeletionFlow struct {
	gateway    client.Client
	controller *SessionController
	notifier   notify.Notifier
	log        logging.Logger

	state     FlowState
	typedText string
}

func NewAccountDeletionFlow(gw client.Client, ctrl *SessionController, n notify.Notifier, log logging.Logger) *AccountDeletionFlow {
	return &AccountDeletionFlow{
		gateway:    gw,
		controller: ctrl,
		notifier:   n,
		log:        log,
		state:      FlowClosed,
	}
}

// State reports where the flow currently is.
func (f *AccountDeletionFlow) State() FlowState { return f.state }

// TypedText returns the current confirmation input.
func (f *AccountDeletionFlow) TypedText() string { return f.typedText }

// Begin opens the confirmation dialog. Opening an already-open dialog is a
// no-op; the flow cannot be reopened while deleting or after deletion.
func (f *AccountDeletionFlow) Begin() error {
	switch f.state {
	case FlowConfirming:
		return ErrDeletionInFlight
	case FlowDeleted:
		return ErrFlowFinished
	}
	f.state = FlowOpen
	return nil
}

// Type records the confirmation text. Allowed only while the dialog is open.
func (f *AccountDeletionFlow) Type(text string) error {
	switch f.state {
	case FlowOpen:
		f.typedText = text
		return nil
	case FlowConfirming:
		return ErrDeletionInFlight
	case FlowDeleted:
		return ErrFlowFinished
	default:
		return ErrDialogNotOpen
	}
}

// Cancel closes the dialog and discards the typed text. There is no cancel
// while the delete call is in flight.
func (f *AccountDeletionFlow) Cancel() error {
	switch f.state {
	case FlowOpen:
		f.state = FlowClosed
		f.typedText = ""
		return nil
	case FlowConfirming:
		return ErrDeletionInFlight
	case FlowDeleted:
		return ErrFlowFinished
	default:
		return nil
	}
}

// Confirm attempts the deletion. With anything but the exact confirm phrase
// typed the dialog stays open and a hint is surfaced. Otherwise the flow
// enters Confirming, calls the gateway, and either terminates (success:
// session cleared, logout effects, one success notification) or rolls back
// to Open with the typed text preserved for a retry.
func (f *AccountDeletionFlow) Confirm(ctx context.Context) error {
	switch f.state {
	case FlowConfirming:
		return ErrDeletionInFlight
	case FlowDeleted:
		return ErrFlowFinished
	case FlowClosed:
		return ErrDialogNotOpen
	}

	if f.typedText != confirmPhrase {
		f.notifier.Notify(notify.Error(msgConfirmHint))
		return ErrConfirmationMismatch
	}

	sess := f.controller.Current()
	if sess == nil {
		f.notifier.Notify(notify.Error(msgDeleteFallback))
		return ErrNoSession
	}

	f.state = FlowConfirming
	if err := f.gateway.DeleteAccount(ctx, sess.User.ID); err != nil {
		f.state = FlowOpen // typed text survives for a retry
		f.log.Error(ctx, "account deletion failed", "user_id", sess.User.ID, "error", err)
		f.notifier.Notify(notify.Error(remoteMessage(err, msgDeleteFallback)))
		return err
	}

	f.state = FlowDeleted
	f.notifier.Notify(notify.Success(msgDeleteSuccess))
	return f.controller.Logout(ctx)
}
