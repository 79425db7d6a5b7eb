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
    `fmt`
)

// SyntaxError occures when the quadruple input is malformed.
type SyntaxError struct {
    Line   int
    Pos    int
    Reason string
}

func (self SyntaxError) Error() string {
    if self.Line == 0 {
        return fmt.Sprintf("Syntax error at end of input: %s", self.Reason)
    } else {
        return fmt.Sprintf("Syntax error at line %d, token %d: %s", self.Line, self.Pos, self.Reason)
    }
}
