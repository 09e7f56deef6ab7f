// Package game runs one match of the non-transitive dice game between a human
// and the computer.
//
// A Session moves through a fixed sequence of phases and never goes back:
//
//	turn order -> dice selection -> throw round 1 -> throw round 2 -> result
//
// Every value the computer contributes to the match is produced by a
// commit-reveal exchange (see package fairness): the computer publishes an
// HMAC of its value, the human answers, and only then does the computer
// disclose the value and key so the human can check the HMAC.
//
// # Basic Usage
//
//	s, err := game.NewSession(set, console,
//	    game.WithLogger(logger),
//	    game.WithRecorder(recorder))
//	outcome, err := s.Run(ctx)
//	switch {
//	case errors.Is(err, game.ErrExit):
//	    // the player typed X
//	case err != nil:
//	    // invalid input, random source failure, cancelled context
//	}
//
// # Deterministic Testing
//
// The random source is injectable. Tests pass a fairness.SeededSource or a
// scripted Source together with a scripted IO to replay a full match:
//
//	s, _ := game.NewSession(set, io, game.WithSource(fairness.NewSeededSource(42)))
//
// # Input Policy
//
// "X" exits at any prompt and "?" shows the probability table and asks again.
// Any other input that is not a number in the allowed range ends the session
// with an *InvalidSelectionError; the player is not asked again.
package game
