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
    `io`
    `strings`

    `github.com/oleiade/lane`
)

type _Token struct {
    line int
    pos  int
    text string
}

// tokenizer splits the input into whitespace-delimited tokens, one line at
// a time, so interactive input is consumed as soon as it is typed.
type tokenizer struct {
    sc   *bufio.Scanner
    q    *lane.Queue
    line int
}

func newTokenizer(r io.Reader) *tokenizer {
    return &tokenizer {
        sc: bufio.NewScanner(r),
        q:  lane.NewQueue(),
    }
}

// next returns the next token, ok is false at the end of input.
func (self *tokenizer) next() (tok _Token, ok bool, err error) {
    for self.q.Empty() {
        if !self.sc.Scan() {
            return _Token{}, false, self.sc.Err()
        }

        /* queue every word on this line */
        self.line++
        for i, w := range strings.Fields(self.sc.Text()) {
            self.q.Enqueue(_Token { line: self.line, pos: i + 1, text: w })
        }
    }
    return self.q.Dequeue().(_Token), true, nil
}
