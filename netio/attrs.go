package netio

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ergmgo/ergmnet/netattr"
	"github.com/ergmgo/ergmnet/netgraph"
)

// ReadBinaryAttr reads one binary-attribute file: one row per node, each
// row "0", "1", or "NA". Appends the loaded attribute to g.Attrs.Binary
// and returns its index.
func ReadBinaryAttr(r io.Reader, name string, g *netgraph.Graph) (int, error) {
	rows, err := readRows(r, g.N())
	if err != nil {
		return 0, err
	}
	vals := make([]int8, g.N())
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			vals[i] = netattr.NABinary
			continue
		}
		n, err := strconv.Atoi(row)
		if err != nil || (n != 0 && n != 1) {
			return 0, ErrMalformed("binary attribute value must be 0, 1, or NA: " + row)
		}
		vals[i] = int8(n)
	}
	g.Attrs.Binary = append(g.Attrs.Binary, &netattr.BinaryAttr{Name: name, Values: vals})
	return len(g.Attrs.Binary) - 1, nil
}

// ReadCategoricalAttr reads one categorical-attribute file: one row per
// node, each row a non-negative integer or "NA".
func ReadCategoricalAttr(r io.Reader, name string, g *netgraph.Graph) (int, error) {
	rows, err := readRows(r, g.N())
	if err != nil {
		return 0, err
	}
	vals := make([]int, g.N())
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			vals[i] = netattr.NACategorical
			continue
		}
		n, err := strconv.Atoi(row)
		if err != nil || n < 0 {
			return 0, ErrMalformed("categorical attribute value must be a non-negative integer or NA: " + row)
		}
		vals[i] = n
	}
	g.Attrs.Categorical = append(g.Attrs.Categorical, &netattr.CategoricalAttr{Name: name, Values: vals})
	return len(g.Attrs.Categorical) - 1, nil
}

// ReadContinuousAttr reads one continuous-attribute file: one row per
// node, each row a float or "NA".
func ReadContinuousAttr(r io.Reader, name string, g *netgraph.Graph) (int, error) {
	rows, err := readRows(r, g.N())
	if err != nil {
		return 0, err
	}
	vals := make([]float64, g.N())
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			vals[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(row, 64)
		if err != nil {
			return 0, ErrMalformed("continuous attribute value must be a float or NA: " + row)
		}
		vals[i] = f
	}
	g.Attrs.Continuous = append(g.Attrs.Continuous, &netattr.ContinuousAttr{Name: name, Values: vals})
	return len(g.Attrs.Continuous) - 1, nil
}

// ReadSetAttr reads one set-attribute file: one row per node, each row a
// comma-separated list of non-negative integers, "NONE" for the empty set,
// or "NA".
func ReadSetAttr(r io.Reader, name string, g *netgraph.Graph) (int, error) {
	rows, err := readRows(r, g.N())
	if err != nil {
		return 0, err
	}
	vals := make([][]int, g.N())
	maxSeen := -1
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			vals[i] = nil
			continue
		}
		if strings.EqualFold(row, "NONE") {
			vals[i] = []int{}
			continue
		}
		parts := strings.Split(row, ",")
		set := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 {
				return 0, ErrMalformed("set attribute element must be a non-negative integer: " + p)
			}
			set = append(set, n)
			if n > maxSeen {
				maxSeen = n
			}
		}
		vals[i] = set
	}
	g.Attrs.Set = append(g.Attrs.Set, &netattr.SetAttr{Name: name, Size: maxSeen + 1, Values: vals})
	return len(g.Attrs.Set) - 1, nil
}

// ReadZones reads one zone file: one row per node, a zone number in
// [0, MaxZone] or "NA" (-1). Sets g.Overlay.MaxZone to the maximum row
// value seen and rebuilds the overlay's derived node sets.
func ReadZones(r io.Reader, g *netgraph.Graph) error {
	rows, err := readRows(r, g.N())
	if err != nil {
		return err
	}
	maxZone := 0
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			g.Overlay.Zone[i] = -1
			continue
		}
		n, err := strconv.Atoi(row)
		if err != nil || n < 0 {
			return ErrMalformed("zone value must be a non-negative integer or NA: " + row)
		}
		g.Overlay.Zone[i] = n
		if n > maxZone {
			maxZone = n
		}
	}
	g.Overlay.MaxZone = maxZone
	g.Overlay.Rebuild()
	return nil
}

// ReadTerms reads one cERGM term file, analogous to ReadZones but
// populating Overlay.Term/MaxTerm.
func ReadTerms(r io.Reader, g *netgraph.Graph) error {
	rows, err := readRows(r, g.N())
	if err != nil {
		return err
	}
	maxTerm := 0
	for i, row := range rows {
		if strings.EqualFold(row, "NA") {
			g.Overlay.Term[i] = -1
			continue
		}
		n, err := strconv.Atoi(row)
		if err != nil || n < 0 {
			return ErrMalformed("term value must be a non-negative integer or NA: " + row)
		}
		g.Overlay.Term[i] = n
		if n > maxTerm {
			maxTerm = n
		}
	}
	g.Overlay.MaxTerm = maxTerm
	g.Overlay.Rebuild()
	return nil
}

func readRows(r io.Reader, n int) ([]string, error) {
	sc := bufio.NewScanner(r)
	var rows []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, ErrIO(err)
	}
	if len(rows) != n {
		return nil, ErrAttrMismatch(n, len(rows))
	}
	return rows, nil
}
