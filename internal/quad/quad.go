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
    `fmt`
)

const (
    // Unused is the operand placeholder of unary and copy quadruples.
    Unused = "-"

    // CopyOp is the operator token of a copy quadruple.
    CopyOp = "="
)

// Quad is a single three-address instruction: Res = Arg1 Op Arg2.
type Quad struct {
    Op   string
    Arg1 string
    Arg2 string
    Res  string
}

// Copy builds the canonical copy quadruple "res = src".
func Copy(res string, src string) Quad {
    return Quad {
        Op   : CopyOp,
        Arg1 : src,
        Arg2 : Unused,
        Res  : res,
    }
}

// IsCopy reports whether q is a pure copy, i.e. ("=", x, "-", t).
func (self Quad) IsCopy() bool {
    return self.Op == CopyOp && self.Arg2 == Unused
}

// Decode classifies the operator and both operands of q.
func (self Quad) Decode() (OpKind, Operand, Operand) {
    return ParseOp(self.Op), ParseOperand(self.Arg1), ParseOperand(self.Arg2)
}

// SameExpr reports whether q and v compute syntactically the same expression.
func (self Quad) SameExpr(v Quad) bool {
    return self.Op == v.Op && self.Arg1 == v.Arg1 && self.Arg2 == v.Arg2
}

func (self Quad) String() string {
    return fmt.Sprintf("(%s, %s, %s, %s)", self.Op, self.Arg1, self.Arg2, self.Res)
}

// OpKind identifies the operator of a quadruple.
type OpKind uint8

const (
    OpOpaque OpKind = iota
    OpAdd
    OpSub
    OpMul
    OpDiv
    OpCopy
)

var _OpNames = [...]string {
    OpOpaque : "opaque",
    OpAdd    : "+",
    OpSub    : "-",
    OpMul    : "*",
    OpDiv    : "/",
    OpCopy   : "=",
}

// ParseOp maps an operator token to its kind, any unknown token is opaque.
func ParseOp(tok string) OpKind {
    switch tok {
        case "+" : return OpAdd
        case "-" : return OpSub
        case "*" : return OpMul
        case "/" : return OpDiv
        case "=" : return OpCopy
        default  : return OpOpaque
    }
}

// IsArith reports whether the operator is one of the four arithmetic operators.
func (self OpKind) IsArith() bool {
    return self >= OpAdd && self <= OpDiv
}

func (self OpKind) String() string {
    if int(self) < len(_OpNames) {
        return _OpNames[self]
    } else {
        return fmt.Sprintf("OpKind(%d)", self)
    }
}
