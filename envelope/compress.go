package envelope

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	compressMagic     = "QRAMC"
	compressHeaderLen = len(compressMagic) + 1 + 4 // magic + algo + orig_len
	algoGzip          = 1

	// minCompressInput below this, maybe_compress never even tries:
	// the fixed header overhead can't possibly pay for itself.
	minCompressInput = 50

	// maxEnvelopeRatio and minBytesSaved together gate whether a
	// successful compression is actually worth keeping.
	maxEnvelopeRatio = 0.95
	minBytesSaved    = 50
)

// ErrUnknownAlgorithm is returned by MaybeDecompress when the envelope's
// algo byte names a compression scheme this package does not implement.
// It is the one compression-related error the core surfaces to callers;
// everything else about the envelope is absorbed silently.
type ErrUnknownAlgorithm struct {
	Algo byte
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("envelope: unknown compression algorithm byte %d", e.Algo)
}

// MaybeCompress gzip-compresses payload and wraps it in a QRAMC envelope,
// but only when doing so is actually worth it: payloads under
// minCompressInput bytes, or ones that don't compress well enough to
// clear both the ratio and absolute-savings thresholds, are returned
// unchanged with compressed=false.
func MaybeCompress(payload []byte) (out []byte, compressed bool) {
	if len(payload) < minCompressInput {
		return payload, false
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(payload); err != nil {
		return payload, false
	}
	if err := gw.Close(); err != nil {
		return payload, false
	}

	envelopeSize := compressHeaderLen + buf.Len()
	ratio := float64(envelopeSize) / float64(len(payload))
	saved := len(payload) - envelopeSize

	if ratio > maxEnvelopeRatio || saved < minBytesSaved {
		return payload, false
	}

	out = make([]byte, 0, envelopeSize)
	out = append(out, compressMagic...)
	out = append(out, algoGzip)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	out = append(out, lenBuf[:]...)
	out = append(out, buf.Bytes()...)

	return out, true
}

// MaybeDecompress reverses MaybeCompress. If data does not start with the
// QRAMC magic it is returned unchanged with wasCompressed=false; that is
// the normal case for a payload that was never compressed, not an error.
//
// lengthMismatch reports whether the decompressed length disagreed with
// the envelope's declared original length. This is non-fatal: the bytes
// are still returned, and it is up to the caller to decide whether to
// warn about it.
func MaybeDecompress(data []byte) (out []byte, wasCompressed, lengthMismatch bool, err error) {
	if len(data) < compressHeaderLen || string(data[:len(compressMagic)]) != compressMagic {
		return data, false, false, nil
	}

	algo := data[len(compressMagic)]
	if algo != algoGzip {
		return nil, false, false, &ErrUnknownAlgorithm{Algo: algo}
	}

	origLen := binary.BigEndian.Uint32(data[len(compressMagic)+1 : compressHeaderLen])

	gr, err := gzip.NewReader(bytes.NewReader(data[compressHeaderLen:]))
	if err != nil {
		return nil, false, false, fmt.Errorf("envelope: opening gzip stream: %w", err)
	}
	defer gr.Close()

	decoded, err := io.ReadAll(gr)
	if err != nil {
		return nil, false, false, fmt.Errorf("envelope: reading gzip stream: %w", err)
	}

	mismatch := uint32(len(decoded)) != origLen
	return decoded, true, mismatch, nil
}
