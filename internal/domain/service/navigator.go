package service

import "kedai/internal/domain/entity"

// Navigator moves the host UI to another route.
type Navigator interface {
	Navigate(route entity.Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route entity.Route)

// Navigate calls f(route).
func (f NavigatorFunc) Navigate(route entity.Route) {
	f(route)
}
