// Package pathfmt implements the canonical text codec for paths and
// stage schedules (spec.md §6):
//
//	<SOURCE> -> <TARGET> [xN] [+ <CATALYST>] => <step> [| <step>]*
//
// where <step> is one or more "//"-separated recipes, each written
// "<inputs> -> <outputs>". Grouping brackets "[...]" around a
// multiset are accepted and ignored semantically. Malformed text
// always returns an error — never a silently partial result.
package pathfmt
