// Package schedule turns a flat, already-valid recipe sequence into an
// ordered list of stages declaring which recipes within a stage may run
// concurrently (spec.md §4.8). Scheduling itself is single-threaded and
// deterministic; it only produces the plan, execution is out of scope.
package schedule
