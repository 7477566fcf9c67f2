// Command glbatch compiles YAML scene descriptions into command-batch
// frames and lists the contents of frame files.
//
// Usage:
//
//	glbatch build -scene scene.yaml -o frames.bin [-v] [-session id]
//	glbatch inspect [-buffers] frames.bin
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/gogpu/glbatch"
	"github.com/gogpu/glbatch/transport"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "glbatch: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  glbatch build -scene FILE [-o FILE] [-session UUID] [-v]")
	fmt.Fprintln(w, "  glbatch inspect [-buffers] FILE")
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:], stdout, stderr)
	case "inspect":
		return runInspect(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runBuild(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "scene YAML file")
		output    = fs.String("o", "-", "output frame file, - for stdout")
		session   = fs.String("session", "", "session id written in frame headers (default random)")
		verbose   = fs.Bool("v", false, "log every dispatch")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		return errors.New("build: -scene is required")
	}

	log := newLogger(stderr, *verbose)
	glbatch.SetLogger(log)
	defer glbatch.SetLogger(nil)

	scene, err := LoadScene(*scenePath)
	if err != nil {
		return err
	}

	var opts []transport.StreamOption
	if *session != "" {
		id, err := uuid.Parse(*session)
		if err != nil {
			return fmt.Errorf("build: -session: %w", err)
		}
		opts = append(opts, transport.WithSession(id))
	}

	out, err := openOutput(*output, stdout)
	if err != nil {
		return err
	}
	stream := transport.NewStream(out, opts...)
	b := glbatch.NewBuilder(glbatch.WithTransport(stream))

	if err := scene.Build(b); err != nil {
		out.abort()
		return err
	}
	// Dispatch logs send failures instead of returning them.
	if sent := stream.Sent(); sent != 2 {
		out.abort()
		return fmt.Errorf("build: wrote %d of 2 frames", sent)
	}
	if err := stream.Close(); err != nil {
		out.abort()
		return fmt.Errorf("build: %w", err)
	}
	if err := out.commit(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	log.Info("scene built", "scene", scene.Name, "session", stream.Session(), "handles", b.Registry().Len())
	return nil
}

// output is where build writes frames. A file is written under a temporary
// name next to path and only renamed into place by commit, so a failed
// build leaves nothing behind.
type output struct {
	io.Writer
	tmp  *os.File
	path string
}

// openOutput opens path for writing. Binary frames are never written to a
// terminal.
func openOutput(path string, stdout io.Writer) (*output, error) {
	if path != "-" && path != "" {
		tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
		if err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
		return &output{Writer: tmp, tmp: tmp, path: path}, nil
	}
	if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) { // #nosec G115 -- file descriptors fit in int
		return nil, errors.New("build: refusing to write binary frames to a terminal, use -o")
	}
	return &output{Writer: stdout}, nil
}

func (o *output) commit() error {
	if o.tmp == nil {
		return nil
	}
	name := o.tmp.Name()
	err := o.tmp.Chmod(0o644)
	if cerr := o.tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(name, o.path)
	}
	if err != nil {
		_ = os.Remove(name)
	}
	return err
}

func (o *output) abort() {
	if o.tmp == nil {
		return
	}
	_ = o.tmp.Close()
	_ = os.Remove(o.tmp.Name())
}

func runInspect(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	buffers := fs.Bool("buffers", false, "list buffer sizes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("inspect: exactly one frame file is required")
	}
	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	defer f.Close()

	n, err := listFrames(f, stdout, *buffers)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	fmt.Fprintf(stdout, "%d frames\n", n)
	return nil
}
