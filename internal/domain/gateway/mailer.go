package gateway

import "context"

// Mailer abstracts outbound transactional email. Failures on webhook paths
// are logged and swallowed by callers; delivery is best effort.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
