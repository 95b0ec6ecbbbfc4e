// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

// Package router holds the static page table used by the navigation drawer.
package router

import "strings"

// RouteName identifies a page
type RouteName int

const (
	Requests   RouteName = 0
	Stats      RouteName = 2
	SQLScripts RouteName = 3
)

// Route is one navigable page
type Route struct {
	Name  RouteName
	Path  string
	Title string
	Icon  string
}

var routes = []Route{
	{Name: Requests, Path: "/", Title: "Requests", Icon: "▤"},
	{Name: Stats, Path: "/stats", Title: "Statistics", Icon: "◔"},
	{Name: SQLScripts, Path: "/sql-scripts", Title: "Reports", Icon: "▣"},
}

// Routes returns the page table in drawer order
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Get returns the route for a name. Unknown names resolve to Requests.
func Get(name RouteName) Route {
	for _, r := range routes {
		if r.Name == name {
			return r
		}
	}
	return routes[0]
}

// Lookup resolves a path. Unmatched paths redirect to Requests, reported
// by the second return value being false.
func Lookup(path string) (Route, bool) {
	p := strings.TrimSpace(path)
	if p != "/" {
		p = strings.TrimRight(p, "/")
	}
	for _, r := range routes {
		if r.Path == p {
			return r, true
		}
	}
	return routes[0], false
}

// Index returns the drawer position of name, or 0.
func Index(name RouteName) int {
	for i, r := range routes {
		if r.Name == name {
			return i
		}
	}
	return 0
}
