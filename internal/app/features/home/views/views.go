// internal/app/features/home/views/views.go
package views

import (
	_ "embed"
)

// Shell is the built-in SPA shell, served when the web root has no
// index.html of its own. It loads the app from /static.
//
//go:embed shell/index.html
var Shell []byte

// BareShell is served when there is no web root at all. It references no
// static assets.
//
//go:embed shell/bare.html
var BareShell []byte
