// Package decoder implements the WFST-based token-passing decoder: a
// synchronous beam search over a wfst.FST that, at each emitting step,
// consults an external scorer.Scorer for per-label log-probabilities
// conditioned on the partial hypothesis, then expands, prunes, and
// propagates token.Tokens through emitting and non-emitting arcs until
// an end condition is met. The final output is the sequence of non-zero
// output labels along the best completed path, recovered by backtrace.
//
// Overview:
//
//   - Decode maintains two state→token maps, prevToks and curToks. Each
//     step promotes curToks to prevToks, invokes the scorer once for all
//     prevToks tokens in parallel (emittingStep), expands emitting arcs
//     into a fresh curToks, then runs nonEmittingClosure over curToks to
//     a fixed point. EOS-triggered tokens move into a completion pool.
//   - Termination yields the best completed token; backtrace over arc
//     back-pointers produces the decoded output-label sequence.
//
// Complexity per utterance: O(steps × frontier × vocab) for scorer
// batching plus O(steps × frontier × avg-out-degree) for arc expansion,
// where frontier is bounded by MaxActive and steps by MaxSeqLen.
//
// Concurrency: a Decoder is single-threaded and cooperative within one
// utterance (spec §5) — no internal goroutines, no shared mutable state.
// Multiple utterances may be decoded concurrently by using independent
// Decoder instances against the same read-only wfst.FST.
package decoder
