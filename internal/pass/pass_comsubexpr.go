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

// CSE performs the Common Sub-expression Elimination optimization.
//
// Every later quadruple that computes the same (op, arg1, arg2) as an
// earlier one is turned into a copy of the earlier result. Comparison is
// purely textual and uses the quadruples as currently stored, so an entry
// rewritten into a copy takes part in the comparisons of later rounds with
// its new shape. Opaque operators are compared like any other.
type CSE struct{}

func (CSE) Apply(tab *quad.Table, tr *Trace) {
    n := tab.Len()

    /* compare every earlier quadruple against every later one */
    for i := 0; i < n; i++ {
        for j := i + 1; j < n; j++ {
            p := tab.At(i)
            q := tab.At(j)

            /* replace the duplicate with a copy of the earlier result */
            if p.SameExpr(q) {
                if r := quad.Copy(q.Res, p.Res); r != q && tab.Rewrite(j, r) {
                    tr.record(_C_eliminated, 1, j, q, r)
                }
            }
        }
    }
}
