// SPDX-License-Identifier: MIT
// Package: fibernet/network
//
// codec.go - plain-text case format.
//
// Encode writes numbers with the shortest representation that parses back to
// the same value, so Decode(Encode(c)) reproduces c exactly. Decode only
// checks syntax; call Validate for the model invariants.

package network

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxDecodeNodes bounds numNodes accepted by Decode before any allocation.
const MaxDecodeNodes = 1 << 16

// Encode writes c in the plain-text case format. Both matrices must be
// NumNodes×NumNodes (ErrBadDimensions otherwise); center IDs must be single
// tokens.
func Encode(w io.Writer, c *Case) error {
	if c == nil {
		return violation(ErrBadDimensions, -1, -1)
	}
	n := c.NumNodes
	if err := checkShape(len(c.Distances), n, func(i int) int { return len(c.Distances[i]) }); err != nil {
		return err
	}
	if err := checkShape(len(c.Capacities), n, func(i int) int { return len(c.Capacities[i]) }); err != nil {
		return err
	}
	for _, s := range c.Centers {
		if s.ID == "" || strings.ContainsAny(s.ID, " \t\r\n") {
			return fmt.Errorf("%w: center id %q is not a single token", ErrMalformed, s.ID)
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			l := c.Distances[i][j]
			if l.Present {
				bw.WriteString(strconv.FormatInt(l.Weight, 10))
			} else {
				bw.WriteString(strconv.FormatInt(NoEdge, 10))
			}
		}
		bw.WriteByte('\n')
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.FormatInt(c.Capacities[i][j], 10))
		}
		bw.WriteByte('\n')
	}

	fmt.Fprintf(bw, "%d\n", len(c.Centers))
	for _, s := range c.Centers {
		fmt.Fprintf(bw, "%s %s %s\n", s.ID, formatCoord(s.X), formatCoord(s.Y))
	}

	return bw.Flush()
}

// Decode reads a case in the plain-text format.
// Distance tokens equal to NoEdge become absent links.
func Decode(r io.Reader) (*Case, error) {
	t := &tokenizer{sc: bufio.NewScanner(r)}
	t.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	t.sc.Split(bufio.ScanWords)

	n, err := t.int("numNodes")
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > MaxDecodeNodes {
		return nil, fmt.Errorf("%w: numNodes=%d", ErrMalformed, n)
	}

	c := &Case{
		NumNodes:   int(n),
		Distances:  make(Distances, n),
		Capacities: make(Capacities, n),
	}
	for i := range c.Distances {
		c.Distances[i] = make([]Link, n)
		for j := range c.Distances[i] {
			v, err := t.cell("distance", i, j)
			if err != nil {
				return nil, err
			}
			if v != NoEdge {
				c.Distances[i][j] = Edge(v)
			}
		}
	}
	for i := range c.Capacities {
		c.Capacities[i] = make([]int64, n)
		for j := range c.Capacities[i] {
			if c.Capacities[i][j], err = t.cell("capacity", i, j); err != nil {
				return nil, err
			}
		}
	}

	m, err := t.int("numCenters")
	if err != nil {
		return nil, err
	}
	if m < 0 || m > MaxDecodeNodes {
		return nil, fmt.Errorf("%w: numCenters=%d", ErrMalformed, m)
	}
	c.Centers = make([]ServiceCenter, 0, m)
	for k := int64(0); k < m; k++ {
		what := fmt.Sprintf("center %d", k+1)
		id, err := t.word(what)
		if err != nil {
			return nil, err
		}
		x, err := t.float(what)
		if err != nil {
			return nil, err
		}
		y, err := t.float(what)
		if err != nil {
			return nil, err
		}
		c.Centers = append(c.Centers, ServiceCenter{ID: id, X: x, Y: y})
	}
	if t.sc.Scan() {
		return nil, fmt.Errorf("%w: token %d: unexpected %q after %d centers", ErrMalformed, t.pos+1, t.sc.Text(), m)
	}
	if err := t.sc.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// tokenizer pulls whitespace-separated tokens and counts them for error messages.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenizer) word(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformed, what)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokenizer) int(what string) (int64, error) {
	s, err := t.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformed, t.pos, what, s)
	}

	return v, nil
}

// cell is int for matrix entries; the label is only formatted on failure.
func (t *tokenizer) cell(kind string, i, j int) (int64, error) {
	s, err := t.word(kind)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s (%d,%d)): %q is not an integer", ErrMalformed, t.pos, kind, i, j, s)
	}

	return v, nil
}

func (t *tokenizer) float(what string) (float64, error) {
	s, err := t.word(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not a number", ErrMalformed, t.pos, what, s)
	}

	return v, nil
}
