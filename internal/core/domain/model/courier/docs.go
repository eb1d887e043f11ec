// Package courier contains the Courier aggregate: identity, availability
// status, the running delivery rating, and the assignment statistics that the
// fair-selection policy reads (recent workload and last assignment time).
package courier
