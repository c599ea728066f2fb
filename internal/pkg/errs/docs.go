// Package errs defines the error vocabulary shared by the domain, the use cases and
// the adapters of the order management backend.
//
// Four sentinels classify every failure that is not a store or transport error:
//   - ErrValueIsRequired: a mandatory field is missing or blank (nomeComprador)
//   - ErrValueIsInvalid: a field cannot be interpreted (a non-decimal amount)
//   - ErrValueIsOutOfRange: a number is outside its bounds (quantity below 1)
//   - ErrObjectNotFound: no order is stored under the requested id
//
// Each sentinel has a struct counterpart carrying the parameter name and an optional
// cause; Unwrap returns the sentinel, so errors.Is works through %w and errors.Join.
// IsValidation and IsNotFound are what the HTTP adapter maps to 400 and 404.
package errs
