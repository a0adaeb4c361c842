// Package flight provides the electric-aircraft range model.
//
// The package defines the fundamental types for range evaluation:
//
//   - [ParameterVector]: the nine physical inputs of one evaluation
//   - [Evaluator]: strategy interface mapping a vector to a range in km
//   - [Breguet]: the closed-form electric Breguet-style evaluator
//   - [External]: an external simulation backend with the same contract
//
// # Example
//
//	ev := flight.NewBreguet()
//	km := ev.Evaluate(flight.DefaultNominal())
//
// All evaluators clamp their output to [0, MaxRangeKm]; a non-finite or
// negative intermediate result degrades to 0 rather than an error.
package flight
