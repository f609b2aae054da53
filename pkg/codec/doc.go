// Package codec converts a DataStore to and from the persisted JSON document.
//
// The document has two top-level mappings, "students" and "courses", keyed by
// identity. Records reference each other by key only, so each mapping can be
// written and read on its own.
//
// Loading is split in two steps. Unmarshal parses bytes into a Document and
// rejects missing or mistyped fields. Deserialize turns a Document into a
// DataStore, applying an Integrity policy to references that do not line up.
package codec
