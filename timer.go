package futures

import (
	"time"

	"github.com/benbjohnson/clock"
)

// After returns a future that resolves once d has elapsed on c. The timer
// starts when After is called, not on the first poll. Passing a mock clock
// makes time-dependent compositions, such as Retry delays, deterministic in
// tests.
func After(c clock.Clock, d time.Duration) Future[struct{}] {
	t := c.Timer(d)
	return Go(func() struct{} {
		<-t.C
		return struct{}{}
	})
}
