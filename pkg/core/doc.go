// Package core provides a small, stable facade over nameredact's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other programs can depend on a stable import path without
// exposing internal implementation packages.
//
// Example:
//
//	b := core.Initialize(core.WithDenyList([]string{"ACME Corp"}))
//	out, detections := core.AnonymizeText("John Smith works at ACME Corp", b)
//	_ = out        // "[name redacted] works at [name redacted]"
//	_ = detections // what was found, including unredacted entity types
package core
