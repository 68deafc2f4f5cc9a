// Package ergmconf parses the ERGM configuration mini-language of
// spec.md §4.8: line comments, `name = value` scalar settings, and
// `name = { item, item, ... }` effect-list blocks. Names are matched
// case-insensitively; file paths are matched case-sensitively. Duplicate
// settings and unknown option names are rejected at parse time rather than
// silently overwritten or ignored.
//
// A hand-written recursive-descent lexer and parser over the standard
// library only; no example in the pack parses this grammar, so it has no
// specific per-file grounding source (see DESIGN.md's ergmconf entry).
package ergmconf
