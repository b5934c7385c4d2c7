// Package xmlutil holds the small XML primitives the entity codecs are built
// on: a forward-only token cursor with typed content readers for parsing
// responses, and write-if-present helpers over etree for building request
// bodies.
//
// The wire format is namespace-free. Elements are matched on their local
// name only, and an element carrying a nil attribute is treated as
// explicitly absent:
//
//	<vat_location_valid nil="nil"></vat_location_valid>
//
// Typed readers never fall back to a default on malformed content; the
// error is returned to the caller and aborts the parse.
package xmlutil
