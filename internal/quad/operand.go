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
    `strconv`
)

// OperandKind tells the three operand shapes apart.
type OperandKind uint8

const (
    Symbol OperandKind = iota
    Literal
    Placeholder
)

func (self OperandKind) String() string {
    switch self {
        case Symbol      : return "symbol"
        case Literal     : return "literal"
        case Placeholder : return "unused"
        default          : return "OperandKind(" + strconv.Itoa(int(self)) + ")"
    }
}

// Operand is a decoded operand token.
type Operand struct {
    Kind  OperandKind
    Value int64
    Name  string
}

// IsDecimal reports whether every character of s is an ASCII digit.
// The empty string is not a decimal literal.
func IsDecimal(s string) bool {
    if s == "" {
        return false
    }
    for i := 0; i < len(s); i++ {
        if s[i] < '0' || s[i] > '9' {
            return false
        }
    }
    return true
}

// ParseOperand decodes an operand token. Digit strings that do not fit in
// an int64 are treated as symbols, so they are never folded.
func ParseOperand(tok string) Operand {
    if tok == Unused {
        return Operand { Kind: Placeholder, Name: tok }
    }

    /* only pure digit strings are literals, signs are not accepted */
    if IsDecimal(tok) {
        if v, err := strconv.ParseInt(tok, 10, 64); err == nil {
            return Operand { Kind: Literal, Value: v, Name: tok }
        }
    }

    /* everything else is a symbolic name */
    return Operand { Kind: Symbol, Name: tok }
}

func (self Operand) IsLiteral() bool {
    return self.Kind == Literal
}

func (self Operand) String() string {
    return self.Name
}
