package interfaces

import "time"

// IClock is the only source of "now" for pricing and session expiry.
type IClock interface {
	Now() time.Time
}
