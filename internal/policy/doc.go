// Package policy provides named request policies and the middleware that
// puts the configured one in front of blueprint routes.
//
// Policies are plain chi-style middlewares registered under a lowercase
// name. Built-ins:
//
//	isauthenticated  HS256 bearer token, subject stored in the request context
//	apikey           X-API-Key header checked against a bcrypt hash
//	allowall         always passes
//	denyall          always answers 403
package policy
