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
    `io`
    `strconv`

    `github.com/jedib0t/go-pretty/v6/table`

    `github.com/cloudwego/quadopt/internal/quad`
)

// WritePretty renders tab as a boxed table with the given title.
func WritePretty(w io.Writer, title string, tab *quad.Table) error {
    tw := table.NewWriter()
    tw.SetStyle(table.StyleLight)
    tw.AppendHeader(table.Row { "#", "Op", "Arg1", "Arg2", "Result" })

    /* set the title if any */
    if title != "" {
        tw.SetTitle(title)
    }

    /* add all the quadruples */
    for i, q := range tab.Quads() {
        tw.AppendRow(table.Row { strconv.Itoa(i), q.Op, q.Arg1, q.Arg2, q.Res })
    }

    /* render the table */
    _, err := io.WriteString(w, tw.Render() + "\n")
    return err
}
