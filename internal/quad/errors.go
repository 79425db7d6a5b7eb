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
    `fmt`
)

// CapacityError occures when a table is asked to hold more quadruples than its limit.
type CapacityError struct {
    Limit int
    Count int
}

func (self CapacityError) Error() string {
    return fmt.Sprintf("CapacityError: %d quadruples exceeds the table limit of %d", self.Count, self.Limit)
}

// TokenError occures when a quadruple field is empty or longer than the token limit.
type TokenError struct {
    Index int
    Field string
    Token string
    Limit int
}

func (self TokenError) Error() string {
    if self.Token == "" {
        return fmt.Sprintf("TokenError(#%d.%s): empty token", self.Index, self.Field)
    } else {
        return fmt.Sprintf("TokenError(#%d.%s): token %q is longer than %d characters", self.Index, self.Field, self.Token, self.Limit)
    }
}
