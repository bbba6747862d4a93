package roadfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/triroute/core"
	"github.com/katalvlaran/triroute/solver"
)

// Sentinel errors for the text format.
var (
	// ErrSyntax indicates a line that does not match its section's grammar.
	ErrSyntax = errors.New("roadfile: syntax error")

	// ErrUnknownCity indicates a request naming a city that was not declared.
	ErrUnknownCity = errors.New("roadfile: unknown city")
)

// Section names.
const (
	sectionCities   = "CITIES"
	sectionRoads    = "ROADS"
	sectionRequests = "REQUESTS"
)

var (
	cityRe    = regexp.MustCompile(`^(\d+):\s*(.+)$`)
	roadRe    = regexp.MustCompile(`^(\d+)\s*-\s*(\d+):\s*(\d+),\s*(\d+),\s*(\d+)$`)
	requestRe = regexp.MustCompile(`^(.+?)\s*->\s*(.+?)\s*\|\s*\(\s*([^,()\s]+)\s*,\s*([^,()\s]+)\s*,\s*([^,()\s]+)\s*\)$`)
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// LineError reports a parse failure at a specific input line.
type LineError struct {
	Line int    // 1-based
	Text string // trimmed line content
	Err  error
}

// Error formats the failure as "line N: <err> (in "<text>")".
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (in %q)", e.Line, e.Err, e.Text)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *LineError) Unwrap() error { return e.Err }

// Document is a parsed input file: the frozen network and its requests in
// file order.
type Document struct {
	Graph    *core.Graph
	Requests []solver.Request
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roadfile: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the sectioned format from r.
// The returned Graph is already built.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{b: core.NewBuilder(0)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := p.line(line); err != nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("roadfile: read: %w", err)
	}

	return &Document{Graph: p.b.Build(), Requests: p.requests}, nil
}

// parser holds the state of one Parse call.
type parser struct {
	b        *core.Builder
	section  string
	started  bool
	requests []solver.Request
}

// line dispatches one trimmed, non-empty line.
func (p *parser) line(line string) error {
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		p.section = strings.TrimSpace(line[1 : len(line)-1])
		p.started = true
		return nil
	}
	if !p.started {
		return fmt.Errorf("%w: content before the first section header", ErrSyntax)
	}

	switch p.section {
	case sectionCities:
		return p.city(line)
	case sectionRoads:
		return p.road(line)
	case sectionRequests:
		return p.request(line)
	default:
		return nil
	}
}

// city parses "id: name".
func (p *parser) city(line string) error {
	m := cityRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: want \"id: name\"", ErrSyntax)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("%w: city id: %v", ErrSyntax, err)
	}
	_, err = p.b.AddNode(id, strings.TrimSpace(m[2]))

	return err
}

// road parses "id1 - id2: distance, time, cost".
func (p *parser) road(line string) error {
	m := roadRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: want \"id1 - id2: distance, time, cost\"", ErrSyntax)
	}
	var ids [2]int
	for i := range ids {
		v, err := strconv.Atoi(m[1+i])
		if err != nil {
			return fmt.Errorf("%w: road endpoint: %v", ErrSyntax, err)
		}
		ids[i] = v
	}
	var vals [3]int64
	for i := range vals {
		v, err := strconv.ParseInt(m[3+i], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: road weight: %v", ErrSyntax, err)
		}
		vals[i] = v
	}

	return p.b.AddEdge(ids[0], ids[1], core.Weights{Distance: vals[0], Time: vals[1], Cost: vals[2]})
}

// request parses "from -> to | (X,Y,Z)".
func (p *parser) request(line string) error {
	m := requestRe.FindStringSubmatch(line)
	if m == nil {
		return fmt.Errorf("%w: want \"from -> to | (X,Y,Z)\"", ErrSyntax)
	}
	prio, err := core.ParsePriority(m[3], m[4], m[5])
	if err != nil {
		return err
	}
	from, to := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	if !p.b.HasName(from) {
		return fmt.Errorf("%w: source %q", ErrUnknownCity, from)
	}
	if !p.b.HasName(to) {
		return fmt.Errorf("%w: destination %q", ErrUnknownCity, to)
	}
	p.requests = append(p.requests, solver.Request{From: from, To: to, Priority: prio})

	return nil
}
