// Package errors provides structured errors for rpg-lighting.
//
// Every error carries a Code, a user facing Message, an optional Cause and
// free form Meta. Codes survive wrapping, so a NotFound raised by the species
// repository is still a NotFound when the handler converts it to gRPC.
//
// Creating and wrapping:
//
//	err := errors.InvalidArgumentf("rounds of adaptation must be positive, got %d", rounds).
//	    WithMeta("rounds_of_adaptation", rounds)
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load species bounds")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // unknown species
//	}
//
// Validating configs and inputs:
//
//	vb := errors.NewValidationBuilder()
//	if c.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
//
// Handlers return errors.ToGRPCError(err) and clients unwrap with
// errors.FromGRPCError(err).
package errors
