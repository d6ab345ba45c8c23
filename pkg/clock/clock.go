package clock

import "time"

// Clock supplies the current time. Derived fields (ages, upcoming/past
// status, last-message times) read the reference time through this interface
// so tests can pin it to a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// New returns a Clock backed by the system time in UTC.
func New() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}
