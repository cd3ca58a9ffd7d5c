package driver

import "time"

// Clock supplies monotonic timestamps. time.Now carries a monotonic
// reading, so Sub between two of its values ignores wall-clock jumps.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
