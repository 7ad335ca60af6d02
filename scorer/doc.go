// Package scorer defines the contract between the decoder and the
// external acoustic model (spec §4.H), plus two concrete scorers used by
// the CLI and by tests in lieu of a trained model (acoustic-model
// training and inference are explicitly out of scope, spec §1).
package scorer
