package hal

import (
	"encoding/binary"

	"meenle/meenle/xfb"
)

func fillRGBA(buf []byte, r, g, b uint8) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = 0xFF
	}
}

func fillYUYV(buf []byte, cell uint32) {
	for i := 0; i+3 < len(buf); i += 4 {
		binary.BigEndian.PutUint32(buf[i:], cell)
	}
}

// decodeYUYV expands big-endian YUYV cells in src into RGBA pixels in dst.
func decodeYUYV(dst, src []byte) {
	for i, j := 0, 0; i+3 < len(src) && j+7 < len(dst); i, j = i+4, j+8 {
		y1, u, y2, v := xfb.Unpack(binary.BigEndian.Uint32(src[i:]))
		p := xfb.YUVToRGB(y1, u, v)
		dst[j+0], dst[j+1], dst[j+2], dst[j+3] = p.R, p.G, p.B, p.A
		p = xfb.YUVToRGB(y2, u, v)
		dst[j+4], dst[j+5], dst[j+6], dst[j+7] = p.R, p.G, p.B, p.A
	}
}
