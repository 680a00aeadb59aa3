// Package errors provides structured errors for the talent service.
//
// Every error carries a Code, a user-facing message and optional metadata:
//
//	err := errors.NotFoundf("talent %d not found", id).WithMeta("talent_id", id)
//
// Wrapping keeps the original code so callers can branch on it further up:
//
//	if err := registry.Initial(raw); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
//	if errors.IsNotFound(err) {
//	    // unknown talent id
//	}
//
// Two codes are specific to the talent engine. CodeConfigurationHazard is
// returned when the catalog cannot serve a draw (the grade-0 pool ran dry), and
// CodeResolutionDepthExceeded when a replacement chain does not terminate,
// which points at a cycle in the catalog's replacement rules.
//
// Handlers convert errors with ToGRPCError; the code and metadata travel in an
// errdetails.ErrorInfo so FromGRPCError can restore them on the client side.
package errors
