// Copyright (c) 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(amd64 || arm64 || ppc64 || ppc64le || mips64 || mips64le || riscv64 || s390x || wasm)

package platform

import "encoding/binary"

// Word is the machine word used by ct and bigint on 32-bit targets.
type Word = uint32

const (
	// WordBits is the width of Word in bits.
	WordBits = 32
	// WordBitsLog2 is log2(WordBits), the number of Hensel-lifting
	// doublings needed to go from one correct bit to WordBits correct
	// bits.
	WordBitsLog2 = 5
	// WordBytes is WordBits/8, the width of Word in bytes.
	WordBytes = WordBits / 8
)

// PutWordLE writes w to b in little-endian order. b must have length
// at least WordBytes.
func PutWordLE(b []byte, w Word) {
	binary.LittleEndian.PutUint32(b, w)
}

// GetWordLE reads a little-endian Word from b. b must have length at
// least WordBytes.
func GetWordLE(b []byte) Word {
	return binary.LittleEndian.Uint32(b)
}
