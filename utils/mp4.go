package utils

import (
	"encoding/binary"
	"fmt"
)

// ProbeVideoDuration reads the duration out of an MP4/QuickTime container by
// walking the box tree to moov/mvhd. It is best-effort: any malformed or
// non-MP4 payload yields "" rather than an error, and callers must tolerate
// the empty placeholder.
func ProbeVideoDuration(data []byte) string {
	moov, ok := findBox(data, "moov")
	if !ok {
		return ""
	}
	mvhd, ok := findBox(moov, "mvhd")
	if !ok || len(mvhd) < 20 {
		return ""
	}

	version := mvhd[0]
	var timescale, duration uint64
	switch version {
	case 0:
		// version+flags(4) creation(4) modification(4) timescale(4) duration(4)
		if len(mvhd) < 20 {
			return ""
		}
		timescale = uint64(binary.BigEndian.Uint32(mvhd[12:16]))
		duration = uint64(binary.BigEndian.Uint32(mvhd[16:20]))
	case 1:
		// version+flags(4) creation(8) modification(8) timescale(4) duration(8)
		if len(mvhd) < 32 {
			return ""
		}
		timescale = uint64(binary.BigEndian.Uint32(mvhd[20:24]))
		duration = binary.BigEndian.Uint64(mvhd[24:32])
	default:
		return ""
	}

	if timescale == 0 {
		return ""
	}
	return FormatVideoDuration(float64(duration) / float64(timescale))
}

// FormatVideoDuration renders seconds as "m:ss", e.g. 65s -> "1:05".
func FormatVideoDuration(seconds float64) string {
	if seconds < 0 {
		return ""
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// findBox scans sibling boxes in data for the named box and returns its
// payload.
func findBox(data []byte, name string) ([]byte, bool) {
	offset := 0
	for offset+8 <= len(data) {
		size := uint64(binary.BigEndian.Uint32(data[offset : offset+4]))
		boxType := string(data[offset+4 : offset+8])
		headerLen := 8

		switch size {
		case 0:
			// Box extends to the end of the buffer.
			size = uint64(len(data) - offset)
		case 1:
			if offset+16 > len(data) {
				return nil, false
			}
			size = binary.BigEndian.Uint64(data[offset+8 : offset+16])
			headerLen = 16
		}

		if size < uint64(headerLen) || uint64(offset)+size > uint64(len(data)) {
			return nil, false
		}

		if boxType == name {
			return data[offset+headerLen : offset+int(size)], true
		}
		offset += int(size)
	}
	return nil, false
}
