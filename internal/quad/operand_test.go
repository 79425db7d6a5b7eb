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

package quad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperand(t *testing.T) {
	tests := []struct {
		tok  string
		kind OperandKind
		val  int64
	}{
		{tok: "0", kind: Literal, val: 0},
		{tok: "42", kind: Literal, val: 42},
		{tok: "007", kind: Literal, val: 7},
		{tok: "-", kind: Placeholder},
		{tok: "-5", kind: Symbol},
		{tok: "+5", kind: Symbol},
		{tok: "4a", kind: Symbol},
		{tok: "t1", kind: Symbol},
		{tok: "", kind: Symbol},
		{tok: "99999999999999999999", kind: Symbol},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			v := ParseOperand(tt.tok)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.val, v.Value)
			assert.Equal(t, tt.tok, v.String())
		})
	}
}

func TestIsDecimal(t *testing.T) {
	assert.False(t, IsDecimal(""))
	assert.True(t, IsDecimal("0123456789"))
	assert.False(t, IsDecimal("12 "))
	assert.False(t, IsDecimal("１２"))
}

func TestParseOp(t *testing.T) {
	assert.Equal(t, OpAdd, ParseOp("+"))
	assert.Equal(t, OpSub, ParseOp("-"))
	assert.Equal(t, OpMul, ParseOp("*"))
	assert.Equal(t, OpDiv, ParseOp("/"))
	assert.Equal(t, OpCopy, ParseOp("="))
	assert.Equal(t, OpOpaque, ParseOp("%"))
	assert.Equal(t, OpOpaque, ParseOp("call"))
	assert.True(t, OpDiv.IsArith())
	assert.False(t, OpCopy.IsArith())
	assert.False(t, OpOpaque.IsArith())
	assert.Equal(t, "*", OpMul.String())
}

func TestQuad_Decode(t *testing.T) {
	op, x, y := Quad{"/", "10", "t0", "r"}.Decode()
	assert.Equal(t, OpDiv, op)
	assert.Equal(t, Operand{Kind: Literal, Value: 10, Name: "10"}, x)
	assert.Equal(t, Operand{Kind: Symbol, Name: "t0"}, y)

	assert.True(t, Copy("t", "s").IsCopy())
	assert.False(t, Quad{"=", "s", "x", "t"}.IsCopy())
	assert.True(t, Quad{"+", "a", "b", "x"}.SameExpr(Quad{"+", "a", "b", "y"}))
	assert.False(t, Quad{"+", "a", "b", "x"}.SameExpr(Quad{"+", "b", "a", "x"}))
}
