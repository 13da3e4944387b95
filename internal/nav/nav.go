// Package nav decouples state containers from the view layer. State
// owners emit navigation events through a Navigator instead of driving
// the view directly; the view layer decides what to do with them.
package nav

// Route identifies a navigable view.
type Route string

const (
	RouteLogin        Route = "/login"
	RouteOrderSuccess Route = "/order-success"
)

// Navigator consumes navigation events emitted by state containers.
type Navigator interface {
	Navigate(route Route)
}

// Nop discards navigation events. Used when no view layer is attached,
// e.g. behind the HTTP API where the client does its own routing.
type Nop struct{}

func (Nop) Navigate(Route) {}

// Recorder captures emitted routes in order. Intended for tests and for
// clients that poll the last requested view.
type Recorder struct {
	Routes []Route
}

func (r *Recorder) Navigate(route Route) {
	r.Routes = append(r.Routes, route)
}

// Last returns the most recently emitted route, or "" when none.
func (r *Recorder) Last() Route {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}
