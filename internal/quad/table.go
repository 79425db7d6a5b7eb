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
    `strings`
)

const (
    _MaxPrealloc = 64
)

// Table is the ordered, bounded sequence of quadruples of one basic block.
// Entries are only ever added by Append, the optimization passes rewrite
// them in place through Rewrite.
type Table struct {
    quads  []Quad
    maxq   int
    maxtok int
}

// NewTable creates an empty table holding at most maxq quadruples, each
// field at most maxtok characters long. Zero disables the respective limit.
func NewTable(maxq int, maxtok int) *Table {
    if maxq < 0 || maxtok < 0 {
        panic("quad: negative table limits")
    }
    return &Table {
        maxq   : maxq,
        maxtok : maxtok,
        quads  : make([]Quad, 0, prealloc(maxq)),
    }
}

func (self *Table) Len() int {
    return len(self.quads)
}

// Cap returns the maximum number of quadruples, 0 means unbounded.
func (self *Table) Cap() int {
    return self.maxq
}

// MaxTokenLen returns the maximum field length, 0 means unbounded.
func (self *Table) MaxTokenLen() int {
    return self.maxtok
}

func (self *Table) At(i int) Quad {
    return self.quads[i]
}

// Quads returns a copy of all the quadruples in index order.
func (self *Table) Quads() []Quad {
    ret := make([]Quad, len(self.quads))
    copy(ret, self.quads)
    return ret
}

// Fits reports whether tok can be stored in a field of this table.
func (self *Table) Fits(tok string) bool {
    return tok != "" && (self.maxtok == 0 || len(tok) <= self.maxtok)
}

// Check validates q as if it were stored at index i.
func (self *Table) Check(i int, q Quad) error {
    fields := [...]struct {
        name string
        tok  string
    } {
        { "op"    , q.Op   },
        { "arg1"  , q.Arg1 },
        { "arg2"  , q.Arg2 },
        { "result", q.Res  },
    }

    /* every field must be present and within the token limit */
    for _, f := range fields {
        if !self.Fits(f.tok) {
            return TokenError {
                Index: i,
                Field: f.name,
                Token: f.tok,
                Limit: self.maxtok,
            }
        }
    }
    return nil
}

// Reserve checks that n quadruples can be appended to the table.
func (self *Table) Reserve(n int) error {
    if self.maxq != 0 && len(self.quads) + n > self.maxq {
        return CapacityError { Limit: self.maxq, Count: len(self.quads) + n }
    } else {
        return nil
    }
}

// Append adds q to the end of the table.
func (self *Table) Append(q Quad) error {
    if err := self.Reserve(1); err != nil {
        return err
    } else if err = self.Check(len(self.quads), q); err != nil {
        return err
    } else {
        self.quads = append(self.quads, q)
        return nil
    }
}

// Rewrite replaces the i-th quadruple in place. It refuses to store a
// quadruple that would not pass Check, and reports whether q was stored.
func (self *Table) Rewrite(i int, q Quad) bool {
    if self.Check(i, q) != nil {
        return false
    } else {
        self.quads[i] = q
        return true
    }
}

// Clone returns a deep copy of the table with the same limits.
func (self *Table) Clone() *Table {
    return &Table {
        maxq   : self.maxq,
        maxtok : self.maxtok,
        quads  : self.Quads(),
    }
}

func (self *Table) String() string {
    ret := make([]string, 0, len(self.quads))
    for _, q := range self.quads {
        ret = append(ret, q.String())
    }
    return strings.Join(ret, "\n")
}

func prealloc(maxq int) int {
    if maxq > 0 && maxq < _MaxPrealloc {
        return maxq
    } else {
        return _MaxPrealloc
    }
}
