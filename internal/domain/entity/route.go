package entity

// Route names a destination the client navigates to after a workflow step.
type Route string

const (
	// RouteAddressList is the address management list.
	RouteAddressList Route = "address_list"
	// RouteAddressSelect is the address picker of the order flow.
	RouteAddressSelect Route = "address_select"
	// RouteLogin is the authentication screen.
	RouteLogin Route = "login"
)

// String returns the string representation of the Route.
func (r Route) String() string {
	return string(r)
}
