// Package validator holds the field rules used by the enrollment forms and a
// small rule engine for checking request payloads.
//
// Field rules are pure functions that take a candidate value and return a
// Verdict. A failed Verdict carries a reason that is shown to the user as is:
//
//	if v := validator.Password(pw); !v.OK {
//		errs["password"] = v.Reason
//	}
//
// Number takes options for its bounds and the label used in its reasons:
//
//	validator.Number(validator.ParseNumber(s), validator.Min(1), validator.Max(100), validator.Label("최대 수강 인원"))
//
// # Rule engine
//
// Verdicts can be lifted into Rule values with FromVerdict and evaluated
// together with Apply, which aggregates failures into ValidationErrors:
//
//	err := validator.Apply(
//		validator.FromVerdict("email", validator.Email(req.Email)),
//		validator.FromVerdict("password", validator.Password(req.Password)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// verrs.First() maps each field to its first message
//	}
//
// ValidationErrors satisfies errors.Is(err, ErrValidationFailed).
package validator
