// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validated constructors: identifiers
// (UUID) and delivery ratings (Rating). Value objects in this package carry
// no behavior beyond validation, comparison, and derivation of new values,
// which keeps aggregates free of primitive obsession.
package kernel
