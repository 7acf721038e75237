// Package errors provides structured error handling for dungeon-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for parameter checking
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("dungeon not found")
//	err := errors.InvalidArgumentf("invalid room count: %d", count)
//
// Adding metadata:
//
//	err := errors.NotFound("dungeon not found").
//	    WithMeta("dungeon_id", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to get dungeon")
//	}
//
// Validating input:
//
//	vb := errors.NewValidationBuilder()
//	if params.Seed == "" {
//	    vb.RequiredField("Seed")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
