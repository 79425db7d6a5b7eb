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
	"fmt"
	"log/slog"

	"github.com/cloudwego/quadopt/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithMaxQuads sets the maximum number of quadruples a table may hold.
//
// Readers reject any input announcing more quadruples than this limit before
// a single quadruple is read, so the optimizer never sees a truncated block.
//
// Set this option to "0" disables this limit.
//
// The default value of this option is "20".
func WithMaxQuads(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("quadopt: invalid table capacity: %d", n))
	} else {
		return func(o *opts.Options) { o.MaxQuads = n }
	}
}

// WithMaxTokenLen sets the maximum length of every quadruple field.
//
// Folding never stores a result that would be longer than this limit, the
// quadruple is left unchanged instead.
//
// Set this option to "0" disables this limit.
//
// The default value of this option is "9".
func WithMaxTokenLen(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("quadopt: invalid token length: %d", n))
	} else {
		return func(o *opts.Options) { o.MaxTokenLen = n }
	}
}

// WithLogger sets the logger receiving one record per applied pass, and one
// debug record per rewrite. Logging is disabled by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *opts.Options) { o.Logger = log }
}

// SetMaxQuads sets the default table capacity for all tables from now on.
//
// This value can also be configured with the `QUADOPT_MAX_QUADS` environment
// variable.
//
// Returns the old opts.MaxQuads value. Panics if n is negative.
func SetMaxQuads(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("quadopt: invalid table capacity: %d", n))
	}
	n, opts.MaxQuads = opts.MaxQuads, n
	return n
}

// SetMaxTokenLen sets the default maximum field length for all tables from
// now on.
//
// This value can also be configured with the `QUADOPT_MAX_TOKEN_LEN`
// environment variable.
//
// Returns the old opts.MaxTokenLen value. Panics if n is negative.
func SetMaxTokenLen(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("quadopt: invalid token length: %d", n))
	}
	n, opts.MaxTokenLen = opts.MaxTokenLen, n
	return n
}

func buildOptions(options []Option) opts.Options {
	ret := opts.GetDefaultOptions()
	for _, fn := range options {
		fn(&ret)
	}
	return ret
}
