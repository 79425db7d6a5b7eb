/*
 * Copyright 2022 CloudWeGo Authors
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

package quadopt

import (
	"github.com/cloudwego/quadopt/internal/quad"
	"github.com/cloudwego/quadopt/internal/quadio"
)

// CapacityError occures when more quadruples are supplied than a table can hold.
type CapacityError = quad.CapacityError

// TokenError occures when a quadruple field is empty or too long.
type TokenError = quad.TokenError

// SyntaxError occures when the quadruple input cannot be parsed.
type SyntaxError = quadio.SyntaxError
