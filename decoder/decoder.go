package decoder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/wfstdecode/internal/obslog"
	"github.com/katalvlaran/wfstdecode/scorer"
	"github.com/katalvlaran/wfstdecode/token"
	"github.com/katalvlaran/wfstdecode/wfst"
)

// validator is implemented by wfst.FST views (notably *wfst.MutableFST)
// that can check their own structural soundness before decoding starts.
type validator interface {
	Validate() error
}

// Decoder holds all token maps and pool state for decoding one utterance
// at a time. It owns no goroutines and no locks (spec §5); reuse across
// utterances is via initDecoding, called at the start of every Decode.
type Decoder struct {
	fst    wfst.FST
	scorer scorer.Scorer
	opts   Options

	prevToks  map[wfst.State]*token.Token
	curToks   map[wfst.State]*token.Token
	completed []*token.Token
	steps     int
}

// NewDecoder constructs a Decoder over fst using sc as the acoustic
// scorer. Returns ErrNilFST / ErrNilScorer for nil arguments, and
// ErrInvalidGraph if fst self-validates (via an optional Validate()
// error method) and reports a problem.
func NewDecoder(fst wfst.FST, sc scorer.Scorer, opts ...Option) (*Decoder, error) {
	if fst == nil {
		return nil, ErrNilFST
	}
	if sc == nil {
		return nil, ErrNilScorer
	}
	if v, ok := fst.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
		}
	}
	if fst.Start() == wfst.NoState {
		return nil, ErrInvalidGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{fst: fst, scorer: sc, opts: cfg}, nil
}

// Decode runs the full decode loop for one utterance: init_decoding →
// (emit; non-emit)* → terminate (spec §4.F), then backtraces the winning
// completed token. The Decoder is reinitialized at the start of each
// call, so it may be reused across utterances even after a prior failure.
func (d *Decoder) Decode(ctx context.Context, encoderOutputs any, initialScorerState any) ([]int32, error) {
	requestID := uuid.NewString()
	d.initDecoding(initialScorerState)

	for len(d.curToks) > 0 && d.steps < d.opts.MaxSeqLen {
		select {
		case <-ctx.Done():
			obslog.Log.Warn("decode canceled", "request_id", requestID, "step", d.steps)
			return nil, fmt.Errorf("%w: %v", ErrCancelRequested, ctx.Err())
		default:
		}

		d.prevToks, d.curToks = d.curToks, make(map[wfst.State]*token.Token, len(d.curToks))

		nextCutoff, err := d.emittingStep(ctx, encoderOutputs)
		if err != nil {
			return nil, err
		}
		d.nonEmittingClosure(nextCutoff)

		obslog.Log.Debug("decode step",
			"request_id", requestID,
			"step", d.steps,
			"frontier", len(d.curToks),
			"completed", len(d.completed),
		)
	}

	if len(d.curToks) == 0 {
		obslog.Log.Warn("decode pruned to empty frontier", "request_id", requestID, "step", d.steps)
	}

	return d.backtrace(requestID)
}

// initDecoding seeds curToks with the start-state token and runs the
// initial non-emitting closure, per spec §4.F.
func (d *Decoder) initDecoding(initialScorerState any) {
	start := d.fst.Start()
	dummyArc := wfst.Arc{NextState: start}

	d.prevToks = make(map[wfst.State]*token.Token)
	d.curToks = map[wfst.State]*token.Token{
		start: token.New(dummyArc, 0, nil, []int32{d.opts.SOS}, initialScorerState),
	}
	d.completed = nil
	d.steps = 0

	d.nonEmittingClosure(wfst.Infinity)
}
