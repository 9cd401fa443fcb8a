// Package persist moves a recursive callable across a process
// boundary.
//
// Go cannot serialize a closure, and this package does not pretend to.
// What actually needs to travel is much smaller: which template the
// callable was built from, and which combinator shape tied its knot.
// Everything else — the template's code, the combinator itself — is
// already present in any process that links this module. So a callable
// is captured as a Recipe, a plain value any serializer can carry, and
// reconstituted on the far side by re-running the combinator against a
// template registry.
//
// The serializer stays a capability boundary: the Serializer interface
// takes a Recipe to bytes and back, and GobCodec is merely the default
// implementation (encoding/gob framed with an xxhash checksum). A
// callable produced by fix.Fix depends on nothing a Recipe cannot
// carry — no file handles, no addresses, no live bindings — which is
// what makes this scheme sound.
//
// Failure is terminal: a missing file, a checksum mismatch, an unknown
// template or shape all surface as errors the consuming process is
// expected to die on. There is no partial recovery and no retry.
package persist
