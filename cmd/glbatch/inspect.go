package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/glbatch/wire"
)

// listFrames writes a readable listing of every frame in r to w: one
// header line per frame, then one JSON record per command.
func listFrames(r io.Reader, w io.Writer, verbose bool) (int, error) {
	n := 0
	for {
		f, err := wire.ReadFrame(r)
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("frame %d: %w", n, err)
		}
		m := &f.Message
		fmt.Fprintf(w, "frame %d session=%s commands=%d buffers=%d bytes=%d only_once=%t clear=%t\n",
			f.Seq, f.Session, len(m.Commands), len(m.Buffers), m.PayloadBytes(), m.OnlyOnce, m.Clear)
		for i, c := range m.Commands {
			rec, err := wire.MarshalCommand(c)
			if err != nil {
				return n, err
			}
			fmt.Fprintf(w, "  %3d %s\n", i, rec)
		}
		if verbose {
			for i, b := range m.Buffers {
				fmt.Fprintf(w, "  buffer %d: %d bytes\n", i, len(b))
			}
		}
		n++
	}
}
