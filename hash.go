// Copyright 2024 The Cockroach Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h64

import (
	"encoding/binary"
	"unsafe"
)

// HashBytes computes a 64-bit MurmurHash2-style hash of b under seed. It
// distributes all 64 bits well, which is what the set requires of a hasher:
// the high byte feeds the hint filter and the low bits pick the home group.
// The set neither requires nor privileges this function; it is a convenience
// for callers whose elements reduce to a byte buffer.
func HashBytes(b []byte, seed uint64) uint64 {
	const m = 0xc6a4a7935bd1e995
	const r = 47

	h := seed ^ (uint64(len(b)) * m)

	for ; len(b) >= 8; b = b[8:] {
		k := binary.LittleEndian.Uint64(b)
		k *= m
		k ^= k >> r
		k *= m
		h ^= k
		h *= m
	}

	if len(b) > 0 {
		var k uint64
		for i := len(b) - 1; i >= 0; i-- {
			k = k<<8 | uint64(b[i])
		}
		h ^= k
		h *= m
	}

	h ^= h >> r
	h *= m
	h ^= h >> r
	return h
}

// HashString hashes the bytes of s under seed without copying them. It is a
// valid Hasher[string].
func HashString(s string, seed uint64) uint64 {
	if len(s) == 0 {
		return HashBytes(nil, seed)
	}
	return HashBytes(unsafe.Slice(unsafe.StringData(s), len(s)), seed)
}
