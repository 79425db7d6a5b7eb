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

package pass

import (
    `github.com/cloudwego/quadopt/internal/quad`
)

// CopyProp forwards the source of every pure copy "t = s" into the later
// operands that read t.
//
// Chains of copies are resolved left to right within the single sweep. No
// reaching-definition analysis is done: a redefinition of s between the copy
// and the use is not detected, so the input is expected to be single
// assignment within the block.
type CopyProp struct{}

func (CopyProp) Apply(tab *quad.Table, tr *Trace) {
    n := tab.Len()

    /* find all the copies */
    for i := 0; i < n; i++ {
        var p quad.Quad
        if p = tab.At(i); !p.IsCopy() {
            continue
        }

        /* snapshot the copy before touching anything */
        src := p.Arg1
        dst := p.Res

        /* substitute both operands of every later quadruple */
        for j := i + 1; j < n; j++ {
            c := 0
            q := tab.At(j)
            r := q

            /* replace the first operand */
            if r.Arg1 == dst {
                c++
                r.Arg1 = src
            }

            /* replace the second operand */
            if r.Arg2 == dst {
                c++
                r.Arg2 = src
            }

            /* write back if anything was replaced */
            if c != 0 && r != q && tab.Rewrite(j, r) {
                tr.record(_C_propagated, c, j, q, r)
            }
        }
    }
}
