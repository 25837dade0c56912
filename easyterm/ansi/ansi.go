// This file is part of Modlink.
//
// Modlink is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Modlink is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Modlink.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for the pens used when output is
// to a terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colors.
var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// ansi targets.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attributes.
var attributes = map[string]int{
	"bold":      1,
	"underline": 4,
	"inverse":   7,
	"strike":    8,
}

// Pens is the table of bright colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen, _ = ColorBuild("", false, "")

	for c := range colors {
		Pens[c], _ = ColorBuild(c, true, "")
		DimPens[c], _ = ColorBuild(c, false, "")
	}
}

// ColorBuild creates the ANSI sequence for a pen of the named color and
// attribute. An empty pen and attribute results in the reset sequence.
func ColorBuild(pen string, bright bool, attribute string) (string, error) {
	s := strings.Builder{}
	s.WriteString("\033[")

	if pen != "" {
		c, ok := colors[strings.ToLower(pen)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		target := targetPen
		if bright {
			target = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToLower(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		if pen != "" {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", a))
	}

	if pen == "" && attribute == "" {
		s.WriteString("0")
	}

	s.WriteString("m")

	return s.String(), nil
}
