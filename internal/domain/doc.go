// Package domain contains the core business entities, value objects, and
// domain logic of the application: accounts, languages, enrollments and
// exercise results. It is independent of any storage or delivery mechanism.
package domain
