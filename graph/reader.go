package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadKonect parses a KONECT-style adjacency text stream: one arc per
// non-comment line as three whitespace-separated integers "tail head
// weight", comment lines beginning with '%' skipped. Input vertex ids are
// 1-based and arbitrary; they are remapped to dense 0-based VertexIDs in
// first-seen order. Each input line contributes exactly one Arc (the graph
// is undirected for matching purposes; callers never need a mirrored arc).
//
// Complexity: O(lines).
func ReadKonect(r io.Reader) (*Snapshot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	ids := make(map[int]VertexID)
	nextID := VertexID(0)
	vertexOf := func(raw int) VertexID {
		if id, ok := ids[raw]; ok {
			return id
		}
		id := nextID
		ids[raw] = id
		nextID++
		return id
	}

	type pendingArc struct {
		tail, head VertexID
		weight     int64
	}
	var pending []pendingArc

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, errors.Wrapf(errMalformedLine, "line %d: expected 3 fields, got %d", lineNo, len(fields))
		}
		rawTail, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(errMalformedLine, "line %d: tail: %v", lineNo, err)
		}
		rawHead, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(errMalformedLine, "line %d: head: %v", lineNo, err)
		}
		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errMalformedLine, "line %d: weight: %v", lineNo, err)
		}
		if weight < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "line %d", lineNo)
		}
		pending = append(pending, pendingArc{tail: vertexOf(rawTail), head: vertexOf(rawHead), weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "graph: read error")
	}

	b := NewBuilder(int(nextID))
	for _, pa := range pending {
		if _, err := b.AddArc(pa.tail, pa.head, pa.weight); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

var errMalformedLine = errors.New("graph: malformed input line")
