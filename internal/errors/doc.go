// Package errors provides the structured error type used across rpg-sheet.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Codes map onto gRPC status codes at the transport boundary.
//
// Creating errors:
//
//	err := errors.NotFound("character not found").WithMeta("character_id", id)
//	err := errors.InvalidArgumentf("slot index %d out of range", i)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load character")
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//
// Validation issues are collected with a ValidationBuilder, or with a
// ValidationError directly when the issues are informational (the sheet
// normalizer records what it repaired without failing the load).
//
// Layer guidelines:
//   - repositories return NotFound, AlreadyExists and InvalidArgument, and
//     wrap storage failures as Internal
//   - orchestrators validate input and wrap repository errors with context
//   - handlers convert to gRPC with ToGRPCError
package errors
