// Package mocks holds function-field fakes for the store, service and
// platform interfaces, shared by the test packages.
//
// Each mock exposes one Fn field per method; a nil field returns a zero value
// or a canned default, so tests only set what they assert on:
//
//	accounts := &mocks.MockAccountService{
//		LoginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
//			return "token", user, nil
//		},
//	}
//
// Mocks recording calls (MockGenerator, MockMailer) are safe for concurrent use.
package mocks
