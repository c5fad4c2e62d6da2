package registry

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds the moment an entry was registered.
type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

// now returns a span bounding the current instant.
func now() TimeSpan {
	t := time.Now()
	return timespan.BetweenTimes(t.Add(-1*epsilon), t.Add(epsilon))
}
