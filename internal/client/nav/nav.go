// Package nav is the navigation boundary: the services layer requests a
// transition to a named destination and the surface decides what that means
// (a route change in a browser, the active screen in this CLI).
package nav

import (
	"fmt"
	"io"
	"sync"
)

// Destination names a screen the application can be sent to.
type Destination string

const (
	DestinationHome  Destination = "home"
	DestinationLogin Destination = "login"
)

// Navigator performs navigation requests.
type Navigator interface {
	Go(d Destination)
}

// ScreenNavigator tracks the current screen for the CLI and announces
// transitions on a writer.
type ScreenNavigator struct {
	mu      sync.Mutex
	out     io.Writer
	current Destination
}

func NewScreenNavigator(out io.Writer) *ScreenNavigator {
	return &ScreenNavigator{out: out, current: DestinationLogin}
}

func (s *ScreenNavigator) Go(d Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != d {
		s.current = d
		fmt.Fprintf(s.out, "-- now on the %s screen --\n", d)
	}
}

// Current returns the screen the navigator last moved to.
func (s *ScreenNavigator) Current() Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
