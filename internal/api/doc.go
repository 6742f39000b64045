// Package api contains the HTTP handlers of the service. Handlers decode and
// validate requests, call the application services and translate their
// errors into status codes and safe messages (see errors.go). Protected
// handlers take the verified account as an explicit parameter and are
// wrapped with middleware.AuthMiddleware.Require by the router.
package api
