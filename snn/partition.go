// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snn

//gosl: start partition

// Chunk is one entry of the static-load partition: a contiguous run of
// neuron ids [StartN, StartN+Size) that belongs entirely to GroupID.
// Chunks never cross a group boundary (spec 4.1). The reference packed
// encoding -- start in the low 32 bits, (groupID | size<<16) in the
// high 32 -- is preserved as PackedSynId/UnpackChunk for callers that
// need the flat int64 form (e.g. to stage chunks into a device buffer);
// Chunk itself is the unpacked, Go-native working form.
type Chunk struct {
	StartN  int32
	Size    int32
	GroupID int32
}

// PackedSynId returns c packed the way the accelerator reference layout
// does: low 32 bits = StartN, high 32 bits = GroupID | (Size << 16).
func (c Chunk) PackedSynId() int64 {
	hi := int64(c.GroupID&0xFFFF) | int64(c.Size&0xFFFF)<<16
	return int64(uint32(c.StartN)) | hi<<32
}

// UnpackChunk reverses PackedSynId.
func UnpackChunk(packed int64) Chunk {
	return Chunk{
		StartN:  int32(uint32(packed)),
		GroupID: int32(int16(packed >> 32)),
		Size:    int32(uint16(packed >> 48)),
	}
}

//gosl: end partition

// BuildPartitions covers every neuron in groups exactly once with
// chunks of at most bufSize neurons, never crossing a group boundary
// (spec 4.1). Groups must be given in ascending StartN order and must
// tile [0, numN) with no gaps or overlaps -- that invariant is the
// external network builder's responsibility, not this function's.
func BuildPartitions(groups []GroupConfig, bufSize int32) []Chunk {
	if bufSize <= 0 {
		bufSize = 1
	}
	var chunks []Chunk
	for _, g := range groups {
		remaining := g.NumN
		start := g.StartN
		for remaining > 0 {
			sz := bufSize
			if sz > remaining {
				sz = remaining
			}
			chunks = append(chunks, Chunk{StartN: start, Size: sz, GroupID: groupIndex(groups, g)})
			start += sz
			remaining -= sz
		}
	}
	return chunks
}

// groupIndex returns g's position within groups, used as its numeric id.
func groupIndex(groups []GroupConfig, g GroupConfig) int32 {
	for i := range groups {
		if groups[i].StartN == g.StartN {
			return int32(i)
		}
	}
	return -1
}
