// Package bitstream reads and writes non-byte-aligned bit fields from a
// fixed-capacity byte buffer, with a streaming API modeled on a
// character-stream library: extraction and insertion are chained against a
// stream object, field widths are inferred from the destination, and
// manipulators adjust stream state in-line.
//
// Bits are numbered big-endian within big-endian bytes: bit 0 is the most
// significant bit of byte 0, bit 7 is the least significant bit of byte 0,
// bit 8 is the most significant bit of byte 1.
//
// There is no device I/O. A stream operates entirely over a caller-owned
// byte slice; Sync and Flush are structural no-ops kept for interface
// parity with the buffered-stream model this package is shaped after.
package bitstream
