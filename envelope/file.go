package envelope

import (
	"encoding/binary"
	"fmt"
)

const (
	fileMagic     = "QRAMF"
	fileHeaderMin = len(fileMagic) + 2 // magic + name_len
	maxNameLen    = 65535
)

// WrapFile prepends a QRAMF envelope naming name to data: magic, a
// big-endian u16 name length, the UTF-8 name, then data verbatim.
// Returns an error if name is too long to fit the u16 length field.
func WrapFile(name string, data []byte) ([]byte, error) {
	if len(name) > maxNameLen {
		return nil, fmt.Errorf("envelope: filename %q is %d bytes, longer than the %d-byte limit", name, len(name), maxNameLen)
	}

	out := make([]byte, 0, fileHeaderMin+len(name)+len(data))
	out = append(out, fileMagic...)
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(name)))
	out = append(out, lenBuf[:]...)
	out = append(out, name...)
	out = append(out, data...)
	return out, nil
}

// UnwrapFile reverses WrapFile. ok is false, not an error, whenever
// data doesn't start with the QRAMF magic or is too short to hold the
// name it claims to carry; callers treat that as a plain payload that
// never carried a file envelope.
func UnwrapFile(data []byte) (name string, body []byte, ok bool) {
	if len(data) < fileHeaderMin || string(data[:len(fileMagic)]) != fileMagic {
		return "", nil, false
	}

	nameLen := int(binary.BigEndian.Uint16(data[len(fileMagic):fileHeaderMin]))
	if fileHeaderMin+nameLen > len(data) {
		return "", nil, false
	}

	name = string(data[fileHeaderMin : fileHeaderMin+nameLen])
	body = data[fileHeaderMin+nameLen:]
	return name, body, true
}
