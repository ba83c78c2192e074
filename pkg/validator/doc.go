// Package validator provides small declarative validation rules.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Apply evaluates rules in order and returns every failure as a
// ValidationErrors value, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredString("message", opts.Message),
//	    validator.MaxLenString("title", opts.Title, 120),
//	    validator.MinNum("duration", ms, 0),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, field := range errs.Fields() { ... }
//	}
//
// Rules are plain values with no shared state and are safe to build from
// any goroutine.
package validator
