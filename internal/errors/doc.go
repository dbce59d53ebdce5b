// Package errors provides structured errors for the textquest engine.
//
// Every error carries a Code, a player-facing Message, an optional Cause and
// optional metadata. Callers branch on the code instead of on error strings.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("item not found")
//	err := errors.FailedPreconditionf("not enough gold: have %d, need %d", have, need)
//
// Adding metadata:
//
//	err := errors.NotFound("item not found").
//	    WithMeta("item_id", itemID)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save game")
//	}
//
// # Error Checking
//
//	if errors.IsFailedPrecondition(err) {
//	    // tell the player and re-prompt
//	}
//
// # Layer-Specific Guidelines
//
// Entities:
//   - Return FailedPrecondition, NotFound or AlreadyExists when an operation
//     would break an inventory or equip-slot invariant
//
// Repositories:
//   - Return NotFound for a missing save and DataLoss for a save that cannot be decoded
//   - Wrap driver errors with context
//
// Orchestrators:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with game context
//
// Console handler:
//   - Print GetMessage(err) and re-prompt; never exit on a recoverable code
package errors
