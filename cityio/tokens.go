// SPDX-License-Identifier: MIT
//
// File: tokens.go
// Role: whitespace tokenizer shared by the query readers.

package cityio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformedInput indicates a missing, non-integer or out-of-domain token.
var ErrMalformedInput = errors.New("cityio: malformed input")

// tokens yields whitespace-separated integers and remembers their position.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

// next reads one integer named what.
func (t *tokens) next(what string) (int, error) {
	t.pos++
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("cityio: token %d (%s): %w", t.pos, what, err)
		}
		return 0, fmt.Errorf("%w: token %d (%s): unexpected end of input", ErrMalformedInput, t.pos, what)
	}
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedInput, t.pos, what, t.sc.Text())
	}
	return v, nil
}

// count reads a non-negative integer named what.
func (t *tokens) count(what string) (int, error) {
	v, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: token %d (%s): %d is negative", ErrMalformedInput, t.pos, what, v)
	}
	return v, nil
}

// pairs reads m label pairs.
func (t *tokens) pairs(m int) ([][2]int, error) {
	out := make([][2]int, 0, m)
	for k := 0; k < m; k++ {
		a, err := t.next(fmt.Sprintf("road %d start", k+1))
		if err != nil {
			return nil, err
		}
		b, err := t.next(fmt.Sprintf("road %d end", k+1))
		if err != nil {
			return nil, err
		}
		out = append(out, [2]int{a, b})
	}
	return out, nil
}
