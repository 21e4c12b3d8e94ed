// Package xfb converts rendered RGBA frames into the packed YUYV external frame buffer
// used by the console video target.
//
// Each 32-bit cell holds two pixels as 0xYYUUYYVV: the luma of both pixels and the
// chroma they share. The 500 pixel wide frame is pillarboxed into the display width
// with a solid border color.
package xfb
