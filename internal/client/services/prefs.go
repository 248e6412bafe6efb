package services

import (
	"errors"

	"github.com/taskmanhq/taskman-cli/internal/client/notify"
)

// PreferenceKey names one notification toggle.
type PreferenceKey string

const (
	PrefEmailNotifications PreferenceKey = "emailNotifications"
	PrefPushNotifications  PreferenceKey = "pushNotifications"
	PrefTaskReminders      PreferenceKey = "taskReminders"
	PrefWeeklyDigest       PreferenceKey = "weeklyDigest"
)

// ErrUnknownPreference is returned for a key the panel does not have.
var ErrUnknownPreference = errors.New("unknown preference")

const msgSettingsUpdated = "Settings updated"

// PreferencesPanel holds the in-memory notification toggles. Each toggle
// flips independently; the panel has no persistence and no remote sync.
type PreferencesPanel struct {
	notifier notify.Notifier
	prefs    map[PreferenceKey]bool
}

// NewPreferencesPanel builds a panel with the application defaults.
func NewPreferencesPanel(n notify.Notifier) *PreferencesPanel {
	return &PreferencesPanel{
		notifier: n,
		prefs: map[PreferenceKey]bool{
			PrefEmailNotifications: true,
			PrefPushNotifications:  false,
			PrefTaskReminders:      true,
			PrefWeeklyDigest:       false,
		},
	}
}

// Keys lists the toggles in display order.
func (p *PreferencesPanel) Keys() []PreferenceKey {
	return []PreferenceKey{
		PrefEmailNotifications,
		PrefPushNotifications,
		PrefTaskReminders,
		PrefWeeklyDigest,
	}
}

// Toggle inverts exactly the named toggle, emits one informational
// notification, and returns the new value.
func (p *PreferencesPanel) Toggle(key PreferenceKey) (bool, error) {
	v, ok := p.prefs[key]
	if !ok {
		return false, ErrUnknownPreference
	}
	p.prefs[key] = !v
	p.notifier.Notify(notify.Info(msgSettingsUpdated))
	return !v, nil
}

// Snapshot returns a copy of the current toggle values.
func (p *PreferencesPanel) Snapshot() map[PreferenceKey]bool {
	out := make(map[PreferenceKey]bool, len(p.prefs))
	for k, v := range p.prefs {
		out[k] = v
	}
	return out
}
