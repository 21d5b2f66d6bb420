// Package validator provides a small composable validation core: a
// generic Validation capability that evaluates a value and yields an
// immutable pass/fail Result, two short-circuiting combinators (And, Or)
// for building compound checks, and a set of factory functions for the
// common leaf checks over strings, numbers, comparables, slices,
// pointers and well-known formats.
//
// # Architecture
//
// The primitive surface is deliberately minimal: one leaf kind
// (FromPredicate) and two combinators. Every factory in the *_rules.go
// files returns a plain Validation built from those primitives — range
// checks such as LenBetween and Between are literally And-compositions
// of their bounds. There is no hidden state anywhere, therefore the
// package is completely stateless, allocation-light, and goroutine-safe:
// a composed Validation may be evaluated concurrently on different
// values, provided the leaf predicates themselves are pure.
//
// Core building blocks:
//   - Result         – immutable valid-flag-plus-message outcome value
//   - Validation[T]  – evaluate a T, produce a Result; composes via And/Or
//   - FromPredicate  – the single leaf constructor
//   - Numeric        – generic constraint used by the numeric factories
//
// # Usage
//
//	username := validator.NotEmpty().And(validator.LenBetween(2, 12))
//
//	res := username.Evaluate("bill")
//	if !res.Valid {
//	    // res.Message holds the first failing check's reason
//	}
//
// Composition order is preserved exactly as written: And returns the
// first invalid Result unchanged and skips the second operand, Or
// returns the first valid Result and skips the second. Chains are
// associative in outcome but not in which message gets reported.
//
// # Error Handling
//
// Nothing in this package returns an error or panics; invalidity is an
// ordinary Result value. Converting a failing Result into an error at a
// call boundary is the job of the parent valid package.
//
// # Performance Considerations
//
// Evaluation costs one predicate call per leaf reached, and
// short-circuiting guarantees no leaf runs more than once per Evaluate.
// Expensive checks (e.g. network lookups) belong outside this package,
// adapted into a Validation only where the skip-on-failure ordering is
// understood.
package validator
