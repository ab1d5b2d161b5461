// Package y4m reads and writes YUV4MPEG2 streams in the progressive,
// 4:4:4, square-pixel, integer-frame-rate profile.
//
// Encoding converts packed RGB pixels to full-range BT.601 YUV and writes
// them as three planes per frame:
//
//	YUV4MPEG2 W<width> H<height> F<fps>:1 Ip A1:1 C444
//	FRAME
//	<Y plane><U plane><V plane>
//
// Decoding has two paths. Probe scans a stream once and returns a
// StreamDescriptor; ReadInto then loads every frame into one buffer and
// PlanesForFrame hands out views into it. FrameReader instead reads one
// frame at a time with memory bounded by a single frame.
//
// Nothing in this package is safe for concurrent use on the same stream.
package y4m
