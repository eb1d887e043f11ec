// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates. The CourierSelector holds the
// fair assignment policy: a fairness-window filter over the assignment
// ledger followed by an epsilon-greedy tie-break between recency and
// rating-weighted selection.
package services
