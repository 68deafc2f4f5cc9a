package netio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ergmgo/ergmnet/netgraph"
)

// ReadPajek parses a Pajek-format network: a `*vertices N` header followed
// by either an `*arcs` section (directed ties, "i j" per line, 1-indexed)
// or an `*edges` section (undirected ties). opts configure the resulting
// Graph; directedness is inferred from whichever section header is
// present (an `*arcs` section appends WithDirected to opts), and opts are
// not checked against that header.
func ReadPajek(r io.Reader, opts ...netgraph.GraphOption) (*netgraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, err := readVerticesHeader(sc)
	if err != nil {
		return nil, err
	}

	directed, err := advanceToSection(sc)
	if err != nil {
		return nil, err
	}

	allOpts := append([]netgraph.GraphOption{}, opts...)
	if directed {
		allOpts = append(allOpts, netgraph.WithDirected())
	}
	g := netgraph.NewGraph(n, allOpts...)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if strings.HasPrefix(line, "*") {
			// a further section header; unsupported sections (e.g. a second
			// *arcs block) are simply not read further.
			break
		}
		i, j, err := parseTiePair(line, n)
		if err != nil {
			return nil, err
		}
		if directed {
			if err := g.CanToggle(i, j); err != nil {
				return nil, err
			}
			g.InsertArcUpdateList(i, j)
		} else {
			if err := g.CanToggle(i, j); err != nil {
				return nil, err
			}
			g.InsertEdgeUpdateList(i, j)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, ErrIO(err)
	}
	return g, nil
}

func readVerticesHeader(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.EqualFold(fields[0], "*vertices") {
			return 0, ErrMalformed("expected '*vertices N' header")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, ErrMalformed("vertex count must be an integer")
		}
		// Vertex label lines, if any, are skipped by advanceToSection.
		return n, nil
	}
	return 0, ErrMalformed("empty Pajek file")
}

// advanceToSection skips any vertex-label lines and returns true if the
// next section header is *arcs, false if *edges.
func advanceToSection(sc *bufio.Scanner) (bool, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "*") {
			switch {
			case strings.EqualFold(strings.Fields(line)[0], "*arcs"):
				return true, nil
			case strings.EqualFold(strings.Fields(line)[0], "*edges"):
				return false, nil
			}
			continue // a vertex-label or other section header; keep scanning
		}
		// vertex label line, e.g. `1 "name"` — ignore.
	}
	return false, ErrMalformed("missing '*arcs' or '*edges' section")
}

func parseTiePair(line string, n int) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformed("expected 'i j' tie line: " + line)
	}
	i, err1 := strconv.Atoi(fields[0])
	j, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformed("tie endpoints must be integers: " + line)
	}
	i--
	j-- // Pajek ids are 1-indexed
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, 0, netgraph.ErrOutOfRange
	}
	return i, j, nil
}

// WritePajek writes g in Pajek format: a `*vertices N` header, then either
// an `*arcs` or `*edges` section listing every tie as 1-indexed "i j".
func WritePajek(w io.Writer, g *netgraph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "*vertices %d\n", g.N()); err != nil {
		return ErrIO(err)
	}
	section := "*edges"
	if g.Directed() {
		section = "*arcs"
	}
	if _, err := fmt.Fprintln(bw, section); err != nil {
		return ErrIO(err)
	}
	for idx := 0; idx < g.FlatLen(); idx++ {
		d := g.FlatAt(idx)
		if _, err := fmt.Fprintf(bw, "%d %d\n", d.I+1, d.J+1); err != nil {
			return ErrIO(err)
		}
	}
	return ErrIO(bw.Flush())
}
