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
    `math`
    `strconv`

    `github.com/cloudwego/quadopt/internal/quad`
)

// ConstFold replaces arithmetic on two literal operands with a copy of the result.
//
// The table is swept exactly once, a quadruple produced by folding is never
// folded again within the same sweep, even if a later quadruple could now be
// evaluated.
type ConstFold struct{}

func (ConstFold) binary(x int64, y int64, op quad.OpKind) (int64, bool) {
    switch op {
        case quad.OpAdd : return addint(x, y)
        case quad.OpSub : return subint(x, y)
        case quad.OpMul : return mulint(x, y)
        case quad.OpDiv : if y == 0 { return 0, false } else { return x / y, true }
        default         : return 0, false
    }
}

func (self ConstFold) Apply(tab *quad.Table, tr *Trace) {
    for i := 0; i < tab.Len(); i++ {
        q := tab.At(i)
        op, x, y := q.Decode()

        /* only arithmetic on two literals can be folded */
        if !op.IsArith() || !x.IsLiteral() || !y.IsLiteral() {
            continue
        }

        /* evaluate the expression, skip on division by zero or overflow */
        v, ok := self.binary(x.Value, y.Value, op)
        if !ok {
            continue
        }

        /* the result text must fit in the table, otherwise leave it as is */
        r := quad.Copy(q.Res, strconv.FormatInt(v, 10))
        if tab.Rewrite(i, r) {
            tr.record(_C_folded, 1, i, q, r)
        }
    }
}

func addint(x int64, y int64) (int64, bool) {
    if (y > 0 && x > math.MaxInt64 - y) || (y < 0 && x < math.MinInt64 - y) {
        return 0, false
    } else {
        return x + y, true
    }
}

func subint(x int64, y int64) (int64, bool) {
    if (y < 0 && x > math.MaxInt64 + y) || (y > 0 && x < math.MinInt64 + y) {
        return 0, false
    } else {
        return x - y, true
    }
}

func mulint(x int64, y int64) (int64, bool) {
    if x == 0 || y == 0 {
        return 0, true
    }

    /* check by dividing back */
    r := x * y
    if r / y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
        return 0, false
    } else {
        return r, true
    }
}
