package wire

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Frame limits enforced by ReadFrame.
const (
	MaxDocumentSize = 64 << 20
	MaxBuffers      = 1 << 16
	MaxBufferSize   = 1 << 30
)

var frameMagic = [4]byte{'G', 'L', 'B', '1'}

// ErrBadMagic is returned by ReadFrame when the stream is not positioned
// at a frame.
var ErrBadMagic = errors.New("wire: bad frame magic")

// Frame is a message addressed within a session. Seq increases by one per
// frame so a receiver can detect loss or reordering.
type Frame struct {
	Session uuid.UUID
	Seq     uint64
	Message Message
}

// frameHeader is the fixed-size prefix of every frame.
type frameHeader struct {
	Magic   [4]byte
	Session [16]byte
	Seq     uint64
	DocLen  uint32
}

// WriteFrame writes f to w. Integers are little-endian:
//
//	magic "GLB1" | session [16]byte | seq u64 | docLen u32 | doc
//	nbuf u32 | { len u32 | bytes } * nbuf
func WriteFrame(w io.Writer, f *Frame) error {
	doc, err := json.Marshal(f.Message)
	if err != nil {
		return err
	}
	hdr := frameHeader{
		Magic:   frameMagic,
		Session: f.Session,
		Seq:     f.Seq,
		// #nosec G115 -- documents are far below 4 GiB
		DocLen: uint32(len(doc)),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("wire: write header: %w", err)
	}
	if _, err := w.Write(doc); err != nil {
		return fmt.Errorf("wire: write document: %w", err)
	}

	var lenBuf [4]byte
	// #nosec G115 -- buffer count is bounded by the batch size
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(f.Message.Buffers)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("wire: write buffer count: %w", err)
	}
	for i, b := range f.Message.Buffers {
		// #nosec G115 -- payloads are far below 4 GiB
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(b)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return fmt.Errorf("wire: write buffer %d: %w", i, err)
		}
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("wire: write buffer %d: %w", i, err)
		}
	}
	return nil
}

// ReadFrame reads one frame from r and validates its payload references.
// It returns io.EOF if r is exhausted before the first byte of a frame.
func ReadFrame(r io.Reader) (*Frame, error) {
	var hdr frameHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("wire: read header: %w", err)
	}
	if hdr.Magic != frameMagic {
		return nil, ErrBadMagic
	}
	if hdr.DocLen > MaxDocumentSize {
		return nil, fmt.Errorf("wire: document of %d bytes exceeds limit", hdr.DocLen)
	}

	doc := make([]byte, hdr.DocLen)
	if _, err := io.ReadFull(r, doc); err != nil {
		return nil, fmt.Errorf("wire: read document: %w", err)
	}
	f := &Frame{Session: uuid.UUID(hdr.Session), Seq: hdr.Seq}
	if err := json.Unmarshal(doc, &f.Message); err != nil {
		return nil, err
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("wire: read buffer count: %w", err)
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	if n > MaxBuffers {
		return nil, fmt.Errorf("wire: %d buffers exceeds limit", n)
	}
	f.Message.Buffers = make([][]byte, n)
	for i := range f.Message.Buffers {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("wire: read buffer %d length: %w", i, err)
		}
		size := binary.LittleEndian.Uint32(lenBuf[:])
		if size > MaxBufferSize {
			return nil, fmt.Errorf("wire: buffer %d of %d bytes exceeds limit", i, size)
		}
		b := make([]byte, size)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, fmt.Errorf("wire: read buffer %d: %w", i, err)
		}
		f.Message.Buffers[i] = b
	}
	if err := f.Message.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
