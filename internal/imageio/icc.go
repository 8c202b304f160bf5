package imageio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"
)

const (
	iccMarkerTag     = "ICC_PROFILE\x00"
	maxChunkDataSize = 65519 // 65535 - 2 (length) - 14 (tag + seq + count)

	markerSOI  = 0xD8
	markerSOS  = 0xDA
	markerEOI  = 0xD9
	markerAPP2 = 0xE2

	pngSignature = "\x89PNG\r\n\x1a\n"
	pngIHDRLen   = 8 + 4 + 4 + 13 + 4 // signature + IHDR length, type, data, crc
	iccpName     = "ICC Profile"
)

// ExtractICC reassembles an ICC profile from JPEG APP2 payloads. It returns
// nil when no payload carries the ICC_PROFILE tag.
func ExtractICC(markers [][]byte) ([]byte, error) {
	type chunk struct {
		seq  int
		data []byte
	}
	var chunks []chunk
	expectedCount := 0

	for _, m := range markers {
		if len(m) < 14 || string(m[:12]) != iccMarkerTag {
			continue
		}
		seq, count := int(m[12]), int(m[13])
		if seq == 0 || seq > count {
			return nil, fmt.Errorf("invalid ICC chunk sequence %d/%d", seq, count)
		}
		if expectedCount == 0 {
			expectedCount = count
		} else if count != expectedCount {
			return nil, fmt.Errorf("inconsistent ICC chunk count: %d vs %d", count, expectedCount)
		}
		chunks = append(chunks, chunk{seq: seq, data: m[14:]})
	}

	if len(chunks) == 0 {
		return nil, nil
	}
	if len(chunks) != expectedCount {
		return nil, fmt.Errorf("expected %d ICC chunks, found %d", expectedCount, len(chunks))
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].seq < chunks[j].seq })

	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c.data)
	}
	return buf.Bytes(), nil
}

// ChunkICC splits a profile into APP2 payloads (tag, 1-based sequence,
// count, data).
func ChunkICC(profile []byte) ([][]byte, error) {
	if len(profile) == 0 {
		return nil, errors.New("empty ICC profile")
	}
	n := (len(profile) + maxChunkDataSize - 1) / maxChunkDataSize
	if n > 255 {
		return nil, fmt.Errorf("ICC profile too large: needs %d chunks (max 255)", n)
	}

	chunks := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		data := profile[i*maxChunkDataSize:]
		if len(data) > maxChunkDataSize {
			data = data[:maxChunkDataSize]
		}
		c := make([]byte, 0, 14+len(data))
		c = append(c, iccMarkerTag...)
		c = append(c, byte(i+1), byte(n))
		c = append(c, data...)
		chunks = append(chunks, c)
	}
	return chunks, nil
}

// jpegAPP2Payloads walks the marker segments before the first scan and
// returns every APP2 payload.
func jpegAPP2Payloads(data []byte) ([][]byte, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, errors.New("missing JPEG SOI marker")
	}
	var payloads [][]byte
	pos := 2
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return nil, fmt.Errorf("expected marker at offset %d", pos)
		}
		marker := data[pos+1]
		if marker == 0xFF {
			pos++ // fill byte
			continue
		}
		if marker == markerSOS || marker == markerEOI {
			break
		}
		length := int(binary.BigEndian.Uint16(data[pos+2:]))
		if length < 2 || pos+2+length > len(data) {
			return nil, fmt.Errorf("truncated JPEG segment 0x%02X at offset %d", marker, pos)
		}
		if marker == markerAPP2 {
			payloads = append(payloads, data[pos+4:pos+2+length])
		}
		pos += 2 + length
	}
	return payloads, nil
}

// JPEGICC returns the ICC profile embedded in a JPEG stream, or nil.
func JPEGICC(data []byte) ([]byte, error) {
	payloads, err := jpegAPP2Payloads(data)
	if err != nil {
		return nil, err
	}
	return ExtractICC(payloads)
}

// EmbedJPEGICC inserts APP2 ICC segments directly after SOI.
func EmbedJPEGICC(data, profile []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != markerSOI {
		return nil, errors.New("missing JPEG SOI marker")
	}
	chunks, err := ChunkICC(profile)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Write(data[:2])
	for _, c := range chunks {
		out.Write([]byte{0xFF, markerAPP2})
		binary.Write(&out, binary.BigEndian, uint16(len(c)+2))
		out.Write(c)
	}
	out.Write(data[2:])
	return out.Bytes(), nil
}

// PNGICC returns the inflated iCCP profile of a PNG stream, or nil.
func PNGICC(data []byte) ([]byte, error) {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return nil, errors.New("missing PNG signature")
	}
	pos := len(pngSignature)
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos:]))
		typ := string(data[pos+4 : pos+8])
		if pos+12+length > len(data) {
			return nil, fmt.Errorf("truncated PNG chunk %q", typ)
		}
		body := data[pos+8 : pos+8+length]
		switch typ {
		case "iCCP":
			return inflateICCP(body)
		case "IDAT", "IEND":
			return nil, nil
		}
		pos += 12 + length
	}
	return nil, nil
}

func inflateICCP(body []byte) ([]byte, error) {
	nul := bytes.IndexByte(body, 0)
	if nul < 0 || nul+2 > len(body) {
		return nil, errors.New("malformed iCCP chunk")
	}
	if method := body[nul+1]; method != 0 {
		return nil, fmt.Errorf("unknown iCCP compression method %d", method)
	}
	zr, err := zlib.NewReader(bytes.NewReader(body[nul+2:]))
	if err != nil {
		return nil, fmt.Errorf("iCCP: %w", err)
	}
	defer zr.Close()
	profile, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("iCCP: %w", err)
	}
	return profile, nil
}

// EmbedPNGICC inserts an iCCP chunk after IHDR.
func EmbedPNGICC(data, profile []byte) ([]byte, error) {
	if len(data) < pngIHDRLen || string(data[:len(pngSignature)]) != pngSignature {
		return nil, errors.New("missing PNG signature")
	}
	if len(profile) == 0 {
		return nil, errors.New("empty ICC profile")
	}

	var body bytes.Buffer
	body.WriteString(iccpName)
	body.Write([]byte{0, 0})
	zw := zlib.NewWriter(&body)
	if _, err := zw.Write(profile); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	crc := crc32.NewIEEE()
	crc.Write([]byte("iCCP"))
	crc.Write(body.Bytes())

	var out bytes.Buffer
	out.Write(data[:pngIHDRLen])
	binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.WriteString("iCCP")
	out.Write(body.Bytes())
	binary.Write(&out, binary.BigEndian, crc.Sum32())
	out.Write(data[pngIHDRLen:])
	return out.Bytes(), nil
}
