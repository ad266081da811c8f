// Package recognizers implements the recognizer set used by nameredact.
// Each recognizer reports zero or more entity detections for a given text
// and language tag; a Registry holds the ordered set the analyzer runs.
package recognizers
