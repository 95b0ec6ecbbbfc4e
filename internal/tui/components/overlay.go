// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const sgrReset = "\x1b[0m"

// PlaceOverlay draws fg over bg with its top-left corner at (x, y). Parts of
// fg outside bg are clipped, so panels dragged partly off screen still draw.
func PlaceOverlay(x, y int, fg, bg string) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fl := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		fw := ansi.StringWidth(fl)
		left := x
		if left < 0 {
			fl = ansi.Cut(fl, -left, fw)
			fw += left
			left = 0
		}
		if fw <= 0 {
			continue
		}

		line := bgLines[row]
		bw := ansi.StringWidth(line)
		if bw < left {
			line += strings.Repeat(" ", left-bw)
			bw = left
		}
		before := ansi.Truncate(line, left, "")
		after := ""
		if left+fw < bw {
			after = ansi.Cut(line, left+fw, bw)
		}
		bgLines[row] = before + sgrReset + fl + sgrReset + after
	}
	return strings.Join(bgLines, "\n")
}

// PlaceCenter draws fg centred within a width x height background.
func PlaceCenter(fg, bg string, width, height int) string {
	fgLines := strings.Split(fg, "\n")
	fw := 0
	for _, l := range fgLines {
		if w := ansi.StringWidth(l); w > fw {
			fw = w
		}
	}
	x := (width - fw) / 2
	y := (height - len(fgLines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return PlaceOverlay(x, y, fg, bg)
}

// fit pads or truncates s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
