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
    `io`

    `gopkg.in/yaml.v3`

    `github.com/cloudwego/quadopt/internal/quad`
)

type _Record struct {
    Op     string `yaml:"op"`
    Arg1   string `yaml:"arg1"`
    Arg2   string `yaml:"arg2"`
    Result string `yaml:"result"`
}

type _Document struct {
    Quads []_Record `yaml:"quads"`
}

// ReadYAML reads a document of the form
//
//     quads:
//       - { op: "+", arg1: "2", arg2: "3", result: t1 }
//
// and appends every record to tab. Note that a bare "-" starts a YAML
// sequence, so the unused operand has to be quoted.
func ReadYAML(r io.Reader, tab *quad.Table) error {
    var doc _Document
    if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
        return fmt.Errorf("quadio: invalid YAML input: %w", err)
    }

    /* reject oversized input before storing any of it */
    if err := tab.Reserve(len(doc.Quads)); err != nil {
        return err
    }

    /* add every record */
    for _, v := range doc.Quads {
        if err := tab.Append(quad.Quad { Op: v.Op, Arg1: v.Arg1, Arg2: v.Arg2, Res: v.Result }); err != nil {
            return err
        }
    }
    return nil
}

// WriteYAML writes tab in the format accepted by ReadYAML.
func WriteYAML(w io.Writer, tab *quad.Table) error {
    doc := _Document { Quads: make([]_Record, 0, tab.Len()) }
    for _, q := range tab.Quads() {
        doc.Quads = append(doc.Quads, _Record { Op: q.Op, Arg1: q.Arg1, Arg2: q.Arg2, Result: q.Res })
    }

    /* encode the document */
    enc := yaml.NewEncoder(w)
    enc.SetIndent(2)

    /* Close flushes the encoder */
    if err := enc.Encode(&doc); err != nil {
        return err
    } else {
        return enc.Close()
    }
}
