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

type Pass interface {
    Apply(*quad.Table, *Trace)
}

type _PassDescriptor struct {
    pass Pass
    desc string
}

var _passes = [...]_PassDescriptor {
    { desc: "Constant Folding"                  , pass: new(ConstFold) },
    { desc: "Common Sub-expression Elimination" , pass: new(CSE) },
    { desc: "Copy Propagation"                  , pass: new(CopyProp) },
}

// Names returns the pass names in the order they are applied.
func Names() []string {
    ret := make([]string, 0, len(_passes))
    for _, p := range _passes {
        ret = append(ret, p.desc)
    }
    return ret
}

// Optimize applies every pass exactly once, in order, to tab. Each pass
// sees the table as left by the previous one, nothing is re-run.
func Optimize(tab *quad.Table, tr *Trace) {
    for _, p := range _passes {
        tr.enter(p.desc)
        p.pass.Apply(tab, tr)
    }
}
