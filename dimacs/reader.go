package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/parcut/network"
)

// Instance is a fully parsed problem: the validated network plus the lambda
// range and rounding flag from the p line. Discarded aliases
// Network.Discarded for convenience when reporting warnings.
type Instance struct {
	Network               *network.Network
	LambdaLow             float64
	LambdaHigh            float64
	RoundNegativeCapacity bool
	Discarded             []network.Arc
}

// Read parses a problem in the input form described in the package comment.
// Errors wrap the package sentinels and name the offending line number.
func Read(r io.Reader) (*Instance, error) {
	var (
		inst         Instance
		haveProblem  bool
		haveSource   bool
		haveSink     bool
		numNodes     int
		numArcs      int
		source, sink int
		arcs         []network.Arc
		lineNo       int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line[0] {
		case 'c':
			// comment

		case 'p':
			if haveProblem {
				return nil, fmt.Errorf("%w: line %d", ErrDuplicateProblemLine, lineNo)
			}
			var roundFlag int
			if n, err := fmt.Sscanf(line, "p %d %d %f %f %d",
				&numNodes, &numArcs, &inst.LambdaLow, &inst.LambdaHigh, &roundFlag); err != nil || n != 5 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			if roundFlag != 0 && roundFlag != 1 {
				return nil, fmt.Errorf("%w: line %d: got %d", ErrBadRoundFlag, lineNo, roundFlag)
			}
			inst.RoundNegativeCapacity = roundFlag == 1
			haveProblem = true

		case 'n':
			if !haveProblem {
				return nil, fmt.Errorf("%w: line %d", ErrMissingProblemLine, lineNo)
			}
			var id int
			var kind string
			if n, err := fmt.Sscanf(line, "n %d %s", &id, &kind); err != nil || n != 2 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			if id < 0 || id >= numNodes {
				return nil, fmt.Errorf("%w: line %d: node %d with %d nodes", network.ErrNodeRange, lineNo, id, numNodes)
			}
			switch kind {
			case "s":
				if haveSource {
					return nil, fmt.Errorf("%w: line %d", ErrDuplicateSource, lineNo)
				}
				source = id
				haveSource = true
			case "t":
				if haveSink {
					return nil, fmt.Errorf("%w: line %d", ErrDuplicateSink, lineNo)
				}
				sink = id
				haveSink = true
			default:
				return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownNodeType, lineNo, kind)
			}

		case 'a':
			if !haveProblem {
				return nil, fmt.Errorf("%w: line %d", ErrMissingProblemLine, lineNo)
			}
			if !haveSource || !haveSink {
				return nil, fmt.Errorf("%w: line %d", ErrArcBeforeNodes, lineNo)
			}
			var a network.Arc
			if n, err := fmt.Sscanf(line, "a %d %d %f %f",
				&a.From, &a.To, &a.Constant, &a.Multiplier); err != nil || n != 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
			}
			if len(arcs) >= numArcs {
				return nil, fmt.Errorf("%w: line %d: more than %d", ErrArcCount, lineNo, numArcs)
			}
			arcs = append(arcs, a)

		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownIndicator, lineNo, line[:1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}

	if !haveProblem {
		return nil, ErrMissingProblemLine
	}
	if len(arcs) != numArcs {
		return nil, fmt.Errorf("%w: declared %d, got %d", ErrArcCount, numArcs, len(arcs))
	}
	if !haveSource {
		return nil, ErrSourceUnassigned
	}
	if !haveSink {
		return nil, ErrSinkUnassigned
	}

	net, err := network.New(numNodes, source, sink, arcs)
	if err != nil {
		return nil, err
	}
	inst.Network = net
	inst.Discarded = net.Discarded
	return &inst, nil
}
