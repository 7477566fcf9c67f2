// Package arraybuf converts numeric arrays into the binary payloads carried
// beside a command batch.
//
// A payload is a (Metadata, []byte) pair. Metadata records the shape and
// element kind; the bytes hold the elements in contiguous row-major order,
// little-endian. The executor rebuilds a JS typed array from the pair, so
// only element kinds with a typed-array counterpart appear on the wire.
//
// # Normalization
//
// Encode applies these rules unconditionally and never reports an error:
//
//   - int64, uint64, int and uint elements are truncated to int32
//   - float16.Float16 elements are widened to float32
//   - non-contiguous views are gathered into a contiguous copy
//
// # Views
//
// Reverse, Slice and Transpose return views sharing storage with their
// parent. Encoding a view yields the same bytes as encoding a contiguous
// copy of it.
//
//	a := arraybuf.MustNew([]float32{0, 1, 2, 3, 4, 5}, 2, 3)
//	meta, data := arraybuf.Encode(a.Transpose())
//	// meta.Shape == [3 2], len(data) == 24
package arraybuf
