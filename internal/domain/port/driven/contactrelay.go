package driven

import (
	"context"

	"github.com/caffxin/studiosite/internal/domain/model"
)

// ContactRelay defines the driven port for the external email relay that
// delivers contact form submissions. Send returns nil only when the relay
// accepted the message; there is no delivery confirmation beyond that.
type ContactRelay interface {
	Send(ctx context.Context, submission model.ContactSubmission) error
}
