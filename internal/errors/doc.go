// Package errors provides the coded error type used by every layer above the
// progression engine core.
//
// The engine core itself never returns errors: game-rule outcomes are no-ops
// and caller bugs panic. Repositories, the orchestrator, configuration and the
// CLI return *Error values so callers can branch on a Code.
//
// Creating errors:
//
//	err := errors.NotFound("entity not found").WithMeta("entity_id", id)
//	err := errors.InvalidArgumentf("unknown skill %q", name)
//
// Wrapping errors keeps the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load entity")
//	}
//
// Validating configuration:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("skill_cap", cfg.SkillCap, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
