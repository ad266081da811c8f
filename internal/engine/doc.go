// Package engine contains the core anonymization logic for nameredact: it
// assembles detection and replacement into a configuration bundle and runs
// it over texts and table columns. This package is internal; external
// consumers should use the stable facade in pkg/core.
package engine
