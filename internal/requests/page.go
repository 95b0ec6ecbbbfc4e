// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package requests

// PageSizeOptions are the selectable rows-per-page values
var PageSizeOptions = []int{25, 50, 100}

// NextPageSize steps through PageSizeOptions by delta, clamped to the ends.
func NextPageSize(current, delta int) int {
	idx := 0
	for i, s := range PageSizeOptions {
		if s == current {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(PageSizeOptions) {
		idx = len(PageSizeOptions) - 1
	}
	return PageSizeOptions[idx]
}
