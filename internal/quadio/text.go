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

package quadio

import (
    `bufio`
    `fmt`
    `io`
    `strconv`

    `github.com/cloudwego/quadopt/internal/quad`
)

const (
    _CountPrompt = "Enter number of Quadruples: "
    _QuadsPrompt = "Enter Quadruples in format: op arg1 arg2 result\n"
)

// ReadText reads a quadruple count followed by that many "op arg1 arg2 result"
// records and appends them to tab. If prompt is not nil, the input prompts
// are written to it before the count and before the records.
//
// A count larger than the remaining capacity of tab is rejected before any
// record is read. Anything after the last record is ignored.
func ReadText(r io.Reader, tab *quad.Table, prompt io.Writer) error {
    var n int
    var err error
    var tok _Token
    var ok bool

    /* read the quadruple count */
    tk := newTokenizer(r)
    writePrompt(prompt, _CountPrompt)

    /* the count must be a non-negative decimal */
    if tok, ok, err = tk.next(); err != nil {
        return fmt.Errorf("quadio: read error: %w", err)
    } else if !ok {
        return SyntaxError { Reason: "missing quadruple count" }
    } else if n, err = strconv.Atoi(tok.text); err != nil || n < 0 {
        return SyntaxError { Line: tok.line, Pos: tok.pos, Reason: fmt.Sprintf("invalid quadruple count %q", tok.text) }
    }

    /* reject oversized input before reading any of it */
    if err = tab.Reserve(n); err != nil {
        return err
    }

    /* read all the records */
    writePrompt(prompt, _QuadsPrompt)
    for i := 0; i < n; i++ {
        var fv [4]string

        /* each record is exactly 4 tokens */
        for j := range fv {
            if tok, ok, err = tk.next(); err != nil {
                return fmt.Errorf("quadio: read error: %w", err)
            } else if !ok {
                return SyntaxError { Reason: fmt.Sprintf("expected %d quadruples, got %d", n, i) }
            } else {
                fv[j] = tok.text
            }
        }

        /* add to table */
        if err = tab.Append(quad.Quad { Op: fv[0], Arg1: fv[1], Arg2: fv[2], Res: fv[3] }); err != nil {
            return err
        }
    }
    return nil
}

// WriteText writes tab as a header line followed by one tab-separated
// line per quadruple.
func WriteText(w io.Writer, tab *quad.Table) error {
    bw := bufio.NewWriter(w)
    fmt.Fprintln(bw, "Op\tArg1\tArg2\tResult")

    /* dump every quadruple */
    for _, q := range tab.Quads() {
        fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", q.Op, q.Arg1, q.Arg2, q.Res)
    }

    /* flush the buffer */
    return bw.Flush()
}

func writePrompt(w io.Writer, msg string) {
    if w != nil {
        _, _ = io.WriteString(w, msg)
    }
}
