// Package notify carries the out-of-band email+SMS dispatch. The log notifier
// stands in until a provider integration lands; it satisfies the same port.
package notify

import (
	"context"

	"github.com/okwaroh/twende-logistics/internal/application/onboarding"
	"github.com/okwaroh/twende-logistics/pkg/logger"
)

var _ onboarding.Notifier = (*LogNotifier)(nil)

// LogNotifier writes notifications to the structured log instead of sending
// them. Generated passwords are never logged.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier builds the logging notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendCredentials records that login credentials were dispatched.
func (n *LogNotifier) SendCredentials(ctx context.Context, email, phone, password string) error {
	n.log.Info().
		Str("email", email).
		Str("phone", phone).
		Msg("credentials dispatched")
	return nil
}

// SendSuspensionNotice records an account suspension or reinstatement notice.
func (n *LogNotifier) SendSuspensionNotice(ctx context.Context, email string, suspended bool) error {
	n.log.Info().
		Str("email", email).
		Bool("suspended", suspended).
		Msg("suspension notice dispatched")
	return nil
}
