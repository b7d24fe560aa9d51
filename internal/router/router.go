// Package router decides which top-level screen mounts for a path. The only
// input besides the path is whether a session is held.
package router

import "strings"

type Screen string

const (
	ScreenNone     Screen = ""
	ScreenAuth     Screen = "auth"
	ScreenEvents   Screen = "events"
	ScreenBookings Screen = "bookings"
)

const (
	PathRoot     = "/"
	PathAuth     = "/auth"
	PathEvents   = "/events"
	PathBookings = "/bookings"
)

// Decision either mounts Screen or redirects to Redirect.
type Decision struct {
	Screen   Screen
	Redirect string
}

func Resolve(path string, authenticated bool) Decision {
	path = normalize(path)

	if authenticated {
		switch path {
		case PathEvents:
			return Decision{Screen: ScreenEvents}
		case PathBookings:
			return Decision{Screen: ScreenBookings}
		default:
			return Decision{Redirect: PathEvents}
		}
	}

	if path == PathAuth {
		return Decision{Screen: ScreenAuth}
	}

	return Decision{Redirect: PathAuth}
}

// Mount follows at most one redirect and returns the screen and the path it
// is mounted at.
func Mount(path string, authenticated bool) (Screen, string) {
	d := Resolve(path, authenticated)
	if d.Redirect == "" {
		return d.Screen, normalize(path)
	}

	return Resolve(d.Redirect, authenticated).Screen, d.Redirect
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return PathRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	return path
}
