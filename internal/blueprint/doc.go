// Package blueprint binds the auxiliary read-only routes of every model that
// has a controller:
//
//	GET <prefix>/<model>/count
//	GET <prefix>/<model>/associations
//	GET <prefix>/<model>/schema
//	GET <prefix>/<model>/filters
//	GET <prefix>/<model>/titles
//	GET <prefix>/<model>/{id}/<collection>/count
//
// Routes are bound once, when the router emits [lifecycle.EventRouterBefore].
// Each route runs behind the configured policy.
package blueprint
