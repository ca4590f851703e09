/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package wirestring converts between Go strings and the byte layout the
// client encryption library uses for text: one UTF-16 code unit per two
// bytes, little-endian, no byte order mark.
//
// The layout is a compatibility contract with the client. Changing the byte
// order or chunking is a breaking change and needs a new version.
package wirestring

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"
)

// ChunkSize is the number of code units FromBytes decodes at a time.
const ChunkSize = 10 * 1024

const (
	unitSize         = 2
	highSurrogateMin = 0xd800
	lowSurrogateMin  = 0xdc00
)

// ToBytes returns s as little-endian UTF-16 code units. Characters outside the
// Basic Multilingual Plane are written as surrogate pairs.
func ToBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*unitSize)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*unitSize:], u)
	}
	return buf
}

// FromBytes decodes little-endian UTF-16 code units produced by ToBytes.
// Input is processed ChunkSize units at a time so scratch memory stays
// fixed regardless of payload size. A trailing odd byte is ignored.
func FromBytes(b []byte) string {
	n := len(b) / unitSize
	var sb strings.Builder
	sb.Grow(n)

	chunk := make([]uint16, 0, ChunkSize+1)
	var carry []uint16
	for start := 0; start < n; start += ChunkSize {
		end := start + ChunkSize
		if end > n {
			end = n
		}

		chunk = append(chunk[:0], carry...)
		carry = carry[:0]
		for i := start; i < end; i++ {
			chunk = append(chunk, binary.LittleEndian.Uint16(b[i*unitSize:]))
		}

		// Keep a high surrogate for the next chunk so the pair is decoded together.
		if end < n && isHighSurrogate(chunk[len(chunk)-1]) {
			carry = append(carry, chunk[len(chunk)-1])
			chunk = chunk[:len(chunk)-1]
		}

		for _, r := range utf16.Decode(chunk) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isHighSurrogate(u uint16) bool {
	return u >= highSurrogateMin && u < lowSurrogateMin
}
