// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Account management (signup, login) and the enrollment ledger live here;
// the exercise engine, external proxies and reminders have their own
// subpackages. Services receive dependencies through constructor injection
// and depend only on store interfaces, never on a specific database.
package service
