package decoder

import "github.com/katalvlaran/wfstdecode/cutoff"

// Options configures a Decoder (spec §6).
//
//	AcousticScale – multiplier on acoustic log-probabilities. Default 30.0.
//	Beam          – base beam width in tropical cost. Default 50.0.
//	MaxActive     – upper bound on frontier size; cutoff.NoLimit disables.
//	MinActive     – lower bound on frontier size; 0 disables.
//	BeamDelta     – slack added when the adaptive beam tightens/loosens.
//	SOS           – start-of-sequence symbol id, seeded as the first prefix token.
//	EOS           – end-of-sequence symbol id triggering completion.
//	MaxSeqLen     – hard cap on emitting steps per utterance.
type Options struct {
	AcousticScale float64
	Beam          float64
	MaxActive     int
	MinActive     int
	BeamDelta     float64
	SOS           int32
	EOS           int32
	MaxSeqLen     int
}

// Option is a functional option for configuring a Decoder, mirroring
// lvlath/dijkstra's Option/DefaultOptions idiom.
type Option func(*Options)

// DefaultOptions returns the spec's documented defaults (§6).
func DefaultOptions() Options {
	return Options{
		AcousticScale: 30.0,
		Beam:          50.0,
		MaxActive:     cutoff.NoLimit,
		MinActive:     0,
		BeamDelta:     0.5,
		SOS:           0,
		EOS:           0,
		MaxSeqLen:     200,
	}
}

// WithAcousticScale sets the multiplier applied to acoustic log-probabilities.
func WithAcousticScale(scale float64) Option {
	return func(o *Options) { o.AcousticScale = scale }
}

// WithBeam sets the base beam width. Must be non-negative.
func WithBeam(beam float64) Option {
	return func(o *Options) {
		if beam < 0 {
			panic("decoder: Beam must be non-negative")
		}
		o.Beam = beam
	}
}

// WithMaxActive sets the upper bound on frontier size. Use cutoff.NoLimit
// to disable (the default).
func WithMaxActive(maxActive int) Option {
	return func(o *Options) {
		if maxActive <= 0 {
			panic("decoder: MaxActive must be positive")
		}
		o.MaxActive = maxActive
	}
}

// WithMinActive sets the lower bound on frontier size. 0 disables.
func WithMinActive(minActive int) Option {
	return func(o *Options) {
		if minActive < 0 {
			panic("decoder: MinActive must be non-negative")
		}
		o.MinActive = minActive
	}
}

// WithBeamDelta sets the slack added when the adaptive beam tightens or
// loosens.
func WithBeamDelta(delta float64) Option {
	return func(o *Options) { o.BeamDelta = delta }
}

// WithSOS sets the start-of-sequence symbol id.
func WithSOS(sos int32) Option {
	return func(o *Options) { o.SOS = sos }
}

// WithEOS sets the end-of-sequence symbol id.
func WithEOS(eos int32) Option {
	return func(o *Options) { o.EOS = eos }
}

// WithMaxSeqLen sets the hard cap on emitting steps per utterance.
func WithMaxSeqLen(maxSeqLen int) Option {
	return func(o *Options) {
		if maxSeqLen <= 0 {
			panic("decoder: MaxSeqLen must be positive")
		}
		o.MaxSeqLen = maxSeqLen
	}
}

func (o Options) cutoffConfig() cutoff.Config {
	return cutoff.Config{
		Beam:      o.Beam,
		MinActive: o.MinActive,
		MaxActive: o.MaxActive,
		BeamDelta: o.BeamDelta,
	}
}
