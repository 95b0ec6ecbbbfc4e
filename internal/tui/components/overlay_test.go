// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>
package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestPlaceOverlay(t *testing.T) {
	bg := canvas(10, 3)
	out := plain(PlaceOverlay(2, 1, "ab\ncd", bg))

	assert.Equal(t, "          ", out[0])
	assert.Equal(t, "  ab      ", out[1])
	assert.Equal(t, "  cd      ", out[2])
}

func TestPlaceOverlayClipsOffscreen(t *testing.T) {
	bg := canvas(6, 2)

	out := plain(PlaceOverlay(-2, -1, "abcd\nefgh", bg))
	assert.Equal(t, "gh    ", out[0])
	assert.Equal(t, "      ", out[1])

	out = plain(PlaceOverlay(4, 1, "xyz", bg))
	assert.Equal(t, "    xyz", out[1], "overflow on the right is kept for the terminal to clip")
}

func TestPlaceOverlayExtendsShortLines(t *testing.T) {
	out := plain(PlaceOverlay(4, 0, "x", "ab"))
	assert.Equal(t, "ab  x", out[0])
}

func TestPlaceCenter(t *testing.T) {
	out := plain(PlaceCenter("xx", canvas(6, 3), 6, 3))
	assert.Equal(t, "  xx  ", out[1])
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, 4, ansi.StringWidth(fit("abcdef", 4)))
	assert.Equal(t, "", fit("ab", 0))
}
