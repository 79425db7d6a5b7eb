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

package opts

import (
	"os"
	"strconv"
)

const (
	_DefaultMaxQuads    = 20 // quadruples per basic block
	_DefaultMaxTokenLen = 9  // characters per quadruple field
)

var (
	MaxQuads    = parseOrDefault("QUADOPT_MAX_QUADS", _DefaultMaxQuads, 0)
	MaxTokenLen = parseOrDefault("QUADOPT_MAX_TOKEN_LEN", _DefaultMaxTokenLen, 0)
)

func parseOrDefault(key string, def int, min int) int {
	if env := os.Getenv(key); env == "" {
		return def
	} else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
		panic("quadopt: invalid value for " + key)
	} else if ret := int(val); ret < min {
		panic("quadopt: value too small for " + key)
	} else {
		return ret
	}
}
