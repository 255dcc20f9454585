// skylark
// (C) 2025, CRU Project
//
// CRU Project and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package badge renders a minimal self-contained SVG status badge.
// Rendering is fully deterministic: the same label, status and outcome
// always produce byte-identical output, so the docs build stays
// reproducible. No fonts or other external resources are referenced.
package badge

import (
	"fmt"
	"os"
)

const (
	height  = 20
	charW   = 6
	padding = 20

	labelBG   = "#555"
	passColor = "#4c1"
	failColor = "#e05d44"
)

const tmpl = `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" role="img" aria-label="%s: %s">
  <linearGradient id="s" x2="0" y2="100%%">
    <stop offset="0" stop-color="#bbb" stop-opacity=".1"/>
    <stop offset="1" stop-opacity=".1"/>
  </linearGradient>
  <mask id="m">
    <rect width="%d" height="%d" rx="3" fill="#fff"/>
  </mask>
  <g mask="url(#m)">
    <rect width="%d" height="%d" fill="%s"/>
    <rect x="%d" width="%d" height="%d" fill="%s"/>
    <rect width="%d" height="%d" fill="url(#s)"/>
  </g>
  <g fill="#fff" text-anchor="middle" font-family="DejaVu Sans,Verdana,Geneva,sans-serif" font-size="11">
    <text x="%d" y="14">%s</text>
    <text x="%d" y="14">%s</text>
  </g>
</svg>
`

// Render produces the badge document. Each region is as wide as a fixed
// per-character width plus padding, so the geometry follows only from
// the text lengths.
func Render(label, status string, passed bool) []byte {
	labelW := charW*len(label) + padding
	statusW := charW*len(status) + padding
	totalW := labelW + statusW

	color := failColor
	if passed {
		color = passColor
	}

	svg := fmt.Sprintf(tmpl,
		totalW, height, label, status,
		totalW, height,
		labelW, height, labelBG,
		labelW, statusW, height, color,
		totalW, height,
		labelW/2, label,
		labelW+statusW/2, status,
	)
	return []byte(svg)
}

// Write renders the badge and writes it to path
func Write(path, label, status string, passed bool) error {
	return os.WriteFile(path, Render(label, status, passed), 0o644)
}
