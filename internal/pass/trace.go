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
    `context`
    `fmt`
    `log/slog`

    `github.com/cloudwego/quadopt/internal/quad`
)

// Rewrite records one in-place modification made by a pass.
type Rewrite struct {
    Pass   string
    Index  int
    Before quad.Quad
    After  quad.Quad
}

func (self Rewrite) String() string {
    return fmt.Sprintf("%s: #%d %s -> %s", self.Pass, self.Index, self.Before, self.After)
}

// Stats counts the rewrites performed by each pass.
type Stats struct {
    Folded     int
    Eliminated int
    Propagated int
}

func (self Stats) Total() int {
    return self.Folded + self.Eliminated + self.Propagated
}

func (self Stats) String() string {
    return fmt.Sprintf("folded=%d eliminated=%d propagated=%d", self.Folded, self.Eliminated, self.Propagated)
}

// Trace collects diagnostics while the passes run. A nil *Trace discards everything.
type Trace struct {
    Stats    Stats
    Rewrites []Rewrite
    log      *slog.Logger
    keep     bool
    pass     string
}

// NewTrace creates a Trace that logs to log, and keeps every Rewrite if keep is set.
func NewTrace(log *slog.Logger, keep bool) *Trace {
    return &Trace {
        log  : log,
        keep : keep,
    }
}

func (self *Trace) enter(name string) {
    if self != nil {
        self.pass = name
        self.logf(slog.LevelInfo, "applying pass", slog.String("pass", name))
    }
}

type _Counter uint8

const (
    _C_folded _Counter = iota
    _C_eliminated
    _C_propagated
)

func (self *Trace) record(c _Counter, n int, i int, before quad.Quad, after quad.Quad) {
    if self == nil {
        return
    }

    /* update the counters */
    switch c {
        case _C_folded     : self.Stats.Folded += n
        case _C_eliminated : self.Stats.Eliminated += n
        case _C_propagated : self.Stats.Propagated += n
    }

    /* keep the rewrite if requested */
    if self.keep {
        self.Rewrites = append(self.Rewrites, Rewrite {
            Pass   : self.pass,
            Index  : i,
            Before : before,
            After  : after,
        })
    }

    /* emit a debug record */
    self.logf(slog.LevelDebug, "rewrite",
        slog.String("pass", self.pass),
        slog.Int("index", i),
        slog.String("before", before.String()),
        slog.String("after", after.String()),
    )
}

func (self *Trace) logf(level slog.Level, msg string, attrs ...slog.Attr) {
    if self.log != nil {
        self.log.LogAttrs(context.Background(), level, msg, attrs...)
    }
}
