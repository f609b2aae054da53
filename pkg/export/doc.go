// Package export renders a roster Document in the formats accepted by
// `roster export`: json, yaml, toml and xml.
//
// Every writer produces byte-identical output for equal documents. Map keys
// are emitted in sorted order and list order is preserved.
package export
