// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path for reading, handling "-" for stdin and
// transparent gzip (detected by the 1F 8B magic or, for files, a .gz
// suffix). Stdin is sniffed through a buffered reader since it cannot
// seek.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		br := bufio.NewReader(os.Stdin)
		if sig, err := br.Peek(2); err == nil && sig[0] == 0x1f && sig[1] == 0x8b {
			gr, err := gzip.NewReader(br)
			if err != nil {
				return nil, err
			}
			return &multiReadCloser{Reader: gr, closers: []io.Closer{gr}}, nil
		}
		return io.NopCloser(br), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// StreamCtx parses FASTA from r and calls emit once per record. It
// returns promptly when ctx is done, even mid-record. Sequence lines
// are concatenated; blank lines are skipped. Records before the first
// header get synthetic IDs so bare sequence files still stream.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id  string
		seq bytes.Buffer
		n   int
	)
	flush := func() error {
		if id == "" && seq.Len() == 0 {
			return nil
		}
		n++
		if id == "" {
			id = fmt.Sprintf("seq%d", n)
		}
		rec := Record{ID: id, Seq: seq.String()}
		id = ""
		seq.Reset()
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			if fields := bytes.Fields(line[1:]); len(fields) > 0 {
				id = string(fields[0])
			}
			continue
		}
		seq.Write(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// ReadAllCtx reads every record from path ("-" for stdin, gzip ok).
func ReadAllCtx(ctx context.Context, path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var out []Record
	err = StreamCtx(ctx, rc, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}
