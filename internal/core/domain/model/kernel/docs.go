// Package kernel contains shared value objects used across all domain
// aggregates. It currently provides the UUID identifier type that accounts,
// pickup requests, and agent profiles use as their identity.
//
// Value objects in this package are immutable, validated at construction,
// and safe for concurrent use.
package kernel
