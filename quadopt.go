/*
 * Copyright 2022 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package quadopt is a local optimizer for three-address code in quadruple
// form. A table holds the quadruples of one straight-line basic block, and
// Optimize applies constant folding, common sub-expression elimination and
// copy propagation to it, in this order, exactly once, in place.
package quadopt

import (
	"io"

	"github.com/cloudwego/quadopt/internal/pass"
	"github.com/cloudwego/quadopt/internal/quad"
	"github.com/cloudwego/quadopt/internal/quadio"
)

type (
	// Quad is a single quadruple (operator, operand1, operand2, result).
	Quad = quad.Quad

	// Table is the bounded sequence of quadruples being optimized.
	Table = quad.Table

	// Stats counts the rewrites made by each pass.
	Stats = pass.Stats

	// Rewrite records one in-place modification made by a pass.
	Rewrite = pass.Rewrite
)

// NewTable creates an empty table using the capacity and token length limits
// from options.
func NewTable(options ...Option) *Table {
	o := buildOptions(options)
	return quad.NewTable(o.MaxQuads, o.MaxTokenLen)
}

// Optimize applies all the passes to tab in place.
func Optimize(tab *Table, options ...Option) Stats {
	o := buildOptions(options)
	tr := pass.NewTrace(o.Log(), false)
	pass.Optimize(tab, tr)
	return tr.Stats
}

// OptimizeTrace is like Optimize, but also returns every rewrite in the
// order it was made.
func OptimizeTrace(tab *Table, options ...Option) (Stats, []Rewrite) {
	o := buildOptions(options)
	tr := pass.NewTrace(o.Log(), true)
	pass.Optimize(tab, tr)
	return tr.Stats, tr.Rewrites
}

// ReadText reads a count followed by that many "op arg1 arg2 result"
// records from r into a new table.
func ReadText(r io.Reader, options ...Option) (*Table, error) {
	tab := NewTable(options...)
	if err := quadio.ReadText(r, tab, nil); err != nil {
		return nil, err
	}
	return tab, nil
}

// WriteText writes tab as a tab-separated listing with a header line.
func WriteText(w io.Writer, tab *Table) error {
	return quadio.WriteText(w, tab)
}
