/*
Package locate finds font files.

Clients may name a font either by its file path or by the file name of a
font installed on the system, e.g. "DejaVuSans.ttf" or "Arial". System
fonts are searched for in the platform's usual font directories.

As locating and reading a font may be a time-consuming task, ResolveFont
works in an async/await fashion by returning a promise. Calling the
promise's Font method blocks until loading has completed.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'ttfwrap.resources'.
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.resources")
}
