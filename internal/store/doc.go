// Package store declares the persistence contracts for users, languages,
// enrollments and exercise results, plus the sentinel errors every
// implementation maps its driver errors onto.
package store
