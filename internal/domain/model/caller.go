package model

// Caller carries the query-scoped context the health engine needs about
// the requester. Authorization itself happens at the transport boundary;
// the engine only consumes the resulting claim.
type Caller struct {
	// Authorized reports whether the caller may see component details
	// on groups configured with the WHEN_AUTHORIZED policy.
	Authorized bool
}
