// Command ergmnet is the module's CLI entry point: estimate (fit theta),
// simulate (draw networks at a fixed theta), and validate (parse and bind
// a configuration without sampling). Package layout — one file per
// subcommand plus a shared.go for config/graph/effect wiring — mirrors
// the teacher's cmd/chaos-runner.
package main
