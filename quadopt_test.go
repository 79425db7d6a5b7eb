/*
 * Copyright 2024 CloudWeGo Authors
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

package quadopt

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_EndToEnd(t *testing.T) {
	tab, err := ReadText(strings.NewReader("3 + 2 3 t1 + 2 3 t2 * t1 4 t3"))
	require.NoError(t, err)

	stats := Optimize(tab)
	require.Equal(t, []Quad{
		{Op: "=", Arg1: "5", Arg2: "-", Res: "t1"},
		{Op: "=", Arg1: "5", Arg2: "-", Res: "t2"},
		{Op: "*", Arg1: "5", Arg2: "4", Res: "t3"},
	}, tab.Quads(), spew.Sdump(tab.Quads()))
	assert.Equal(t, Stats{Folded: 2, Eliminated: 1, Propagated: 2}, stats)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, tab))
	assert.Equal(t, "Op\tArg1\tArg2\tResult\n=\t5\t-\tt1\n=\t5\t-\tt2\n*\t5\t4\tt3\n", buf.String())
}

func TestOptimizeTrace(t *testing.T) {
	var logs bytes.Buffer
	tab := NewTable()
	require.NoError(t, tab.Append(Quad{Op: "/", Arg1: "10", Arg2: "0", Res: "r"}))
	require.NoError(t, tab.Append(Quad{Op: "=", Arg1: "r", Arg2: "-", Res: "s"}))
	require.NoError(t, tab.Append(Quad{Op: "+", Arg1: "s", Arg2: "s", Res: "u"}))

	stats, rewrites := OptimizeTrace(tab, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	assert.Equal(t, Stats{Propagated: 2}, stats)
	require.Len(t, rewrites, 1)
	assert.Equal(t, Quad{Op: "+", Arg1: "r", Arg2: "r", Res: "u"}, rewrites[0].After)
	assert.Equal(t, Quad{Op: "/", Arg1: "10", Arg2: "0", Res: "r"}, tab.At(0), "division by zero is never folded")
	assert.Equal(t, 3, strings.Count(logs.String(), "applying pass"))
}

func TestReadText_Capacity(t *testing.T) {
	_, err := ReadText(strings.NewReader("2 + 1 2 a + 1 2 b"), WithMaxQuads(1))
	var ce CapacityError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, CapacityError{Limit: 1, Count: 2}, ce)

	_, err = ReadText(strings.NewReader("1 + 1 2 abcdef"), WithMaxTokenLen(4))
	var te TokenError
	require.True(t, errors.As(err, &te), "got %v", err)

	_, err = ReadText(strings.NewReader("x"))
	var se SyntaxError
	require.True(t, errors.As(err, &se), "got %v", err)
}

func TestOptions(t *testing.T) {
	assert.Panics(t, func() { WithMaxQuads(-1) })
	assert.Panics(t, func() { WithMaxTokenLen(-1) })

	tab := NewTable(WithMaxQuads(0), WithMaxTokenLen(0))
	assert.Zero(t, tab.Cap())
	assert.Zero(t, tab.MaxTokenLen())

	old := SetMaxQuads(5)
	defer SetMaxQuads(old)
	assert.Equal(t, 5, NewTable().Cap())

	oldtok := SetMaxTokenLen(3)
	defer SetMaxTokenLen(oldtok)
	assert.Equal(t, 3, NewTable().MaxTokenLen())

	assert.Panics(t, func() { SetMaxQuads(-1) })
	assert.Panics(t, func() { SetMaxTokenLen(-1) })
	assert.Equal(t, 5, NewTable().Cap(), "a rejected default leaves the old one in place")
	assert.Equal(t, 3, NewTable().MaxTokenLen())
}
