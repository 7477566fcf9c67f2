// Package wire defines the records a batch is made of and how a batch is
// laid out for the executor.
//
// A dispatched batch is a JSON document
//
//	{"commands": [...], "only_once": false, "clear": false}
//
// plus an ordered list of binary blobs. Each record is an object whose
// "cmd" member names the GPU operation. Records that upload data carry
// buffer_metadata {shape, dtype, index}, where index is the position of
// the blob in the list.
//
// Records are typed: every operation has a struct in this package and
// MarshalCommand injects the "cmd" member from its Name method.
// UnmarshalCommand goes the other way for tooling and tests.
//
// # Frames
//
// WriteFrame and ReadFrame put a message on a byte stream, prefixed by a
// session id and sequence number. The executor side of a notebook channel
// receives the document and blobs separately and does not need frames.
package wire
