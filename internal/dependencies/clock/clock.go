package clock

import "time"

// Clock supplies the current time. Game timestamps and summary completion
// times all come from a Clock so tests can pin them.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock. Times are in UTC so they compare equal after
// a round trip through any storage backend.
type System struct{}

// New returns the wall clock
func New() System {
	return System{}
}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}
