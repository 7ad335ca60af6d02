package attfsm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wfstdecode/wfst"
)

// Load parses the AT&T FSM text format from r into a fresh MutableFST.
// Acoustic cost on every parsed arc is zero; the graph cost carries the
// full parsed weight (the acoustic component is filled in by the decoder
// at expansion time, per spec §4.E).
func Load(r io.Reader) (*wfst.MutableFST, error) {
	g := wfst.NewMutableFST()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawStart := false

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch len(fields) {
		case 1, 2:
			// final state: "state [weight]"
			state, err := parseState(fields[0])
			if err != nil {
				return nil, fmt.Errorf("attfsm: line %d: %w", lineNo, err)
			}
			weight := 0.0
			if len(fields) == 2 {
				weight, err = strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("attfsm: line %d: bad final weight: %w", lineNo, err)
				}
			}
			g.SetFinal(state, weight)

		case 4, 5:
			// transition: "from to ilabel olabel [weight]"
			from, err := parseState(fields[0])
			if err != nil {
				return nil, fmt.Errorf("attfsm: line %d: %w", lineNo, err)
			}
			to, err := parseState(fields[1])
			if err != nil {
				return nil, fmt.Errorf("attfsm: line %d: %w", lineNo, err)
			}
			ilabel, err := parseLabel(fields[2])
			if err != nil {
				return nil, fmt.Errorf("attfsm: line %d: bad ilabel: %w", lineNo, err)
			}
			olabel, err := parseLabel(fields[3])
			if err != nil {
				return nil, fmt.Errorf("attfsm: line %d: bad olabel: %w", lineNo, err)
			}
			weight := 0.0
			if len(fields) == 5 {
				weight, err = strconv.ParseFloat(fields[4], 64)
				if err != nil {
					return nil, fmt.Errorf("attfsm: line %d: bad arc weight: %w", lineNo, err)
				}
			}

			if !sawStart {
				g.SetStart(from)
				sawStart = true
			} else {
				g.EnsureState(from)
			}

			g.AddArc(from, wfst.Arc{
				ILabel:    ilabel,
				OLabel:    olabel,
				Weight:    wfst.Weight{Graph: weight},
				NextState: to,
			})

		default:
			return nil, fmt.Errorf("attfsm: line %d: unexpected field count %d", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("attfsm: %w", err)
	}
	if !sawStart {
		return nil, wfst.ErrNoStartState
	}

	return g, g.Validate()
}

func parseState(s string) (wfst.State, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return wfst.NoState, fmt.Errorf("invalid state %q: %w", s, err)
	}
	return wfst.State(n), nil
}

func parseLabel(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid label %q: %w", s, err)
	}
	return int32(n), nil
}
