package auth

import (
	"context"

	"strive_server/apperr"
)

// GateSubscription validates that a caller may subscribe to roomID. When a
// room was authorized earlier in the same invocation, the requested room must
// match it exactly; a mismatch is Unauthorized even for a valid caller.
//
// The handshake deliberately produces no payload: anything returned at
// subscribe time would be misread downstream as a delivered event. Callers
// join the channel on a nil error and nothing else.
func GateSubscription(ctx context.Context, authorizedRoom, roomID string) error {
	if _, err := RequireCaller(ctx); err != nil {
		return err
	}
	if roomID == "" {
		return apperr.Validation("roomId", "required")
	}
	if authorizedRoom != "" && authorizedRoom != roomID {
		return apperr.Unauthorized("room does not match the authorized channel")
	}
	return nil
}
