// Package wfstdecode is a token-passing beam search decoder over a
// compiled weighted finite-state transducer (WFST).
//
// A decode run alternates two phases per emitting step: query a pluggable
// acoustic scorer (package scorer) for every active hypothesis, expand
// surviving hypotheses (package token) across the WFST's emitting arcs
// (package wfst), then close the resulting frontier over epsilon arcs.
// An adaptive beam, together with max-active/min-active bounds (package
// cutoff), keeps the frontier's size in check. Hypotheses that reach the
// scorer's end-of-sequence symbol are pooled and, once the search frontier
// empties or the step budget runs out, the cheapest pooled hypothesis is
// backtraced into an output label sequence.
//
// See package decoder for the orchestration of this loop, package config
// for loading tuning parameters from YAML, and cmd/wfstdecode for a
// command-line entry point built on top of a scripted replay scorer.
package wfstdecode
