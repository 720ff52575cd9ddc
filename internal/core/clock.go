package core

import "time"

// Clock abstracts wall-clock access so handlers and the scheduler can be
// driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time in a fixed location (pt-BR deployments
// pin America/Sao_Paulo).
type SystemClock struct {
	Location *time.Location
}

func NewSystemClock(tz string) (SystemClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return SystemClock{}, err
	}
	return SystemClock{Location: loc}, nil
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
