package wfst

import "sync"

// MutableFST is an in-memory, thread-safe WFST builder. It implements FST
// directly, so a MutableFST under construction can be handed straight to a
// decoder once Validate succeeds.
//
// Adapted from lvlath/core.Graph: states replace string vertex IDs, Arc
// replaces core.Edge, and AddArc/SetFinal/SetStart replace
// AddEdge/AddVertex. All mutations are protected by an internal mutex, as
// in the teacher; unlike the teacher, states are int32-keyed and the
// decoder only ever reads through the FST interface once construction is
// done.
type MutableFST struct {
	mu           sync.RWMutex
	start        State
	finalWeights map[State]float64
	arcs         map[State][]Arc
	known        map[State]struct{}
}

// NewMutableFST constructs an empty graph with no start state.
func NewMutableFST() *MutableFST {
	return &MutableFST{
		start:        NoState,
		finalWeights: make(map[State]float64),
		arcs:         make(map[State][]Arc),
		known:        make(map[State]struct{}),
	}
}

// EnsureState registers s as a known state (with no arcs and a
// non-final weight) if it is not already known. Thread-safe.
func (g *MutableFST) EnsureState(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStateLocked(s)
}

func (g *MutableFST) ensureStateLocked(s State) {
	if _, ok := g.known[s]; ok {
		return
	}
	g.known[s] = struct{}{}
	g.finalWeights[s] = Infinity
}

// SetStart marks s as the start state. Auto-registers s if unseen.
// Thread-safe.
func (g *MutableFST) SetStart(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStateLocked(s)
	g.start = s
}

// SetFinal sets the final weight of s. Auto-registers s if unseen.
// Thread-safe.
func (g *MutableFST) SetFinal(s State, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStateLocked(s)
	g.finalWeights[s] = weight
}

// AddArc appends an arc from `from`. Auto-registers both `from` and
// arc.NextState if unseen. Thread-safe.
func (g *MutableFST) AddArc(from State, arc Arc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureStateLocked(from)
	g.ensureStateLocked(arc.NextState)
	g.arcs[from] = append(g.arcs[from], arc)
}

// Start implements FST.
func (g *MutableFST) Start() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start
}

// FinalWeight implements FST.
func (g *MutableFST) FinalWeight(s State) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if w, ok := g.finalWeights[s]; ok {
		return w
	}
	return Infinity
}

// Arcs implements FST.
func (g *MutableFST) Arcs(s State) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.arcs[s]
}

// NumStates reports how many distinct states are known to the graph.
// Thread-safe.
func (g *MutableFST) NumStates() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.known)
}

// Validate reports whether the graph has a usable start state: it must be
// set (!= NoState) and registered among the graph's known states.
// Mirrors the original decoder's "assert start_state != -1" (spec §4.F),
// surfaced as an explicit error instead of a Python assert.
func (g *MutableFST) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.start == NoState {
		return ErrNoStartState
	}
	if _, ok := g.known[g.start]; !ok {
		return ErrStartUnreachable
	}
	return nil
}
