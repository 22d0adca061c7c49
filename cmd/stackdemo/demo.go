package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/quintans/faults"
	"github.com/quintans/linkstack/internal/lib/ds"
	"github.com/quintans/linkstack/internal/lib/fails"
	"github.com/tidwall/gjson"
)

// parseValues reads a JSON array of integers.
func parseValues(raw string) ([]int64, error) {
	if !gjson.Valid(raw) {
		return nil, fails.New("invalid JSON", "input", raw)
	}

	res := gjson.Parse(raw)
	if !res.IsArray() {
		return nil, fails.New("values must be a JSON array", "input", raw)
	}

	var (
		values []int64
		err    error
	)
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type != gjson.Number {
			err = fails.New("value is not a number", "index", len(values), "value", v.Raw)
			return false
		}
		values = append(values, v.Int())
		return true
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// walk pushes the values and prints what every access mode sees.
func walk(w io.Writer, values []int64) error {
	s := ds.NewStack[int64]()
	for _, v := range values {
		s.Push(v)
	}
	slog.Debug("pushed", "count", s.Len())

	top, ok := s.Peek()
	if !ok {
		_, err := fmt.Fprintln(w, "stack is empty")
		return err
	}

	p, _ := s.PeekMut()
	*p *= 10

	var iterated []int64
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		iterated = append(iterated, v)
	}

	for p := range s.AllMut() {
		*p++
	}
	mutated := s.Values()

	var popped []int64
	for v := range s.IntoIter().All() {
		popped = append(popped, v)
	}

	lines := []string{
		fmt.Sprintf("peek:      %d", top),
		fmt.Sprintf("peek_mut:  %d -> %d", top, top*10),
		fmt.Sprintf("iter:      %s", join(iterated)),
		fmt.Sprintf("iter_mut:  %s", join(mutated)),
		fmt.Sprintf("into_iter: %s", join(popped)),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return faults.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// teardown builds a chain of the given depth and releases it.
func teardown(depth int) (time.Duration, error) {
	if depth < 0 {
		return 0, fails.New("depth cannot be negative", "depth", depth)
	}

	s := ds.NewStack[int]()
	for i := range depth {
		s.Push(i)
	}

	start := time.Now()
	s.Reset()
	elapsed := time.Since(start)

	slog.Info("chain released", "nodes", humanize.Comma(int64(depth)), "elapsed", elapsed)
	return elapsed, nil
}

func join(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
