// Package plan holds the read-only outputs handed to the crew: rearrangement
// plans made of move and rotate steps, and return manifests listing the waste
// loaded into an undocking container.
//
// Plans are immutable once built. Accessors hand out copies so a caller can
// never alter a plan another caller is reading.
package plan
