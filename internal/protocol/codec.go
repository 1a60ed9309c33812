package protocol

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

// scannerBufferSize is the initial capacity handed to each Decoder's
// bufio.Scanner; lines from subprocesses carrying base64 payloads can be
// large, so scanner.Buffer is raised well past bufio's 64 KiB default.
const scannerBufferSize = 1 << 20 // 1 MiB
const scannerBufferMax = 16 << 20 // 16 MiB

var scannerBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, scannerBufferSize)
		return &buf
	},
}

// Decoder reads one JSONL message at a time from a subprocess's stdout,
// reusing a pooled line buffer per the teacher's scanner discipline.
type Decoder struct {
	scanner *bufio.Scanner
	buf     *[]byte
	log     *slog.Logger
}

// NewDecoder wraps r. The caller must call Close when done to return the
// scanner buffer to the pool.
func NewDecoder(r io.Reader, log *slog.Logger) *Decoder {
	if log == nil {
		log = slog.Default()
	}
	buf := scannerBufferPool.Get().(*[]byte)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(*buf, scannerBufferMax)
	return &Decoder{scanner: scanner, buf: buf, log: log}
}

// Close returns the decoder's line buffer to the pool. Safe to call
// once; the Decoder must not be used afterward.
func (d *Decoder) Close() {
	if d.buf != nil {
		scannerBufferPool.Put(d.buf)
		d.buf = nil
	}
}

// Next reads the next well-formed line and returns its envelope plus the
// raw JSON for a typed Decode call. It returns ok=false at EOF. A blank
// line is skipped and does not count as EOF. A line that fails to parse,
// or has no "type", is logged at debug level and skipped - the loop never
// terminates on a single bad line (§4.6 "Decoder"). The type is not
// checked against the known message types: a line with any non-empty
// "type" is returned.
func (d *Decoder) Next() (Envelope, json.RawMessage, bool) {
	for d.scanner.Scan() {
		line := bytes.TrimSpace(d.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		raw := make(json.RawMessage, len(line))
		copy(raw, line)

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			d.log.Debug("protocol: skipping unparseable line", "error", err)
			continue
		}
		if env.Type == "" {
			d.log.Debug("protocol: skipping line with no type field")
			continue
		}
		return env, raw, true
	}
	return Envelope{}, nil, false
}

// Err returns the underlying scan error, if any, after Next returns
// false.
func (d *Decoder) Err() error {
	return d.scanner.Err()
}

// Encoder serializes messages to a subprocess's stdin, one per line,
// flushing after every write so the subprocess sees it immediately.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder wraps w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// Encode marshals v, appends a single trailing newline, and flushes.
// Per §4.6 this is one allocation for the JSON body plus the appended
// newline byte, not two round trips through the writer.
func (e *Encoder) Encode(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := e.w.Write(data); err != nil {
		return err
	}
	return e.w.Flush()
}

// largePayloadThreshold is the §4.6 boundary above which base64 payloads
// are streamed rather than materialized twice.
const largePayloadThreshold = 1 << 20 // 1 MB

// EncodeBase64Streaming copies r's bytes through a base64 encoder
// straight into w without holding the whole encoded string in memory,
// used for screenshot/clipboard-image payloads over largePayloadThreshold.
func EncodeBase64Streaming(w io.Writer, r io.Reader) error {
	enc := base64.NewEncoder(base64.StdEncoding, w)
	if _, err := io.Copy(enc, r); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// ShouldStreamBase64 reports whether a payload of size n should use
// EncodeBase64Streaming instead of base64.StdEncoding.EncodeToString.
func ShouldStreamBase64(n int) bool {
	return n > largePayloadThreshold
}

// clipboardTextTruncateLimit is §4.6's clipboard-text size rule.
const clipboardTextTruncateLimit = 1024 // 1 KB

// TruncateClipboardText implements §4.6's "clipboard text > 1 KB is sent
// as \"...\" (truncated)" rule.
func TruncateClipboardText(s string) string {
	if len(s) <= clipboardTextTruncateLimit {
		return s
	}
	return s[:clipboardTextTruncateLimit] + "... (truncated)"
}

// ImagePlaceholder implements §4.6's clipboard-image placeholder rule.
func ImagePlaceholder(id string) string {
	return "[image:" + id + "]"
}
