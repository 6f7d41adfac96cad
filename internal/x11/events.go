package x11

import (
	"github.com/BurntSushi/xgb"
)

// Event is either a server event or an X error, never both.
type Event struct {
	Event xgb.Event
	Err   xgb.Error
}

// Events starts a reader that forwards server events one at a time. The
// returned channel is closed when the connection is closed. The reader stops
// early once done is closed.
func (c *Connection) Events(done <-chan struct{}) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		for {
			ev, err := c.XUtil.Conn().WaitForEvent()
			if ev == nil && err == nil {
				return
			}
			select {
			case ch <- Event{Event: ev, Err: err}:
			case <-done:
				return
			}
		}
	}()
	return ch
}
