// Package fingerprint computes content digests used to detect re-uploaded files.
package fingerprint

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
)

const chunkSize = 8 << 10

type Digest [md5.Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Compute hashes the whole of r in fixed-size chunks and rewinds r to the
// beginning, so the caller can parse the same stream afterwards.
func Compute(r io.ReadSeeker) (Digest, error) {
	var d Digest

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return d, fmt.Errorf("failed to rewind content: %w", err)
	}

	hasher := md5.New()
	buf := make([]byte, chunkSize)

	if _, err := io.CopyBuffer(hasher, onlyReader{r}, buf); err != nil {
		return d, fmt.Errorf("failed to hash content: %w", err)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return d, fmt.Errorf("failed to rewind content: %w", err)
	}

	copy(d[:], hasher.Sum(nil))

	return d, nil
}

// Seekable returns r when it already supports seeking, otherwise buffers it in memory.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to buffer content: %w", err)
	}

	return bytes.NewReader(data), nil
}

// onlyReader hides WriterTo so io.CopyBuffer reads through buf.
type onlyReader struct {
	io.Reader
}
