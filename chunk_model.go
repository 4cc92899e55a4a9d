package wavers

import "fmt"

// ChunkInfo locates a chunk inside a RIFF container. Offsets are relative to
// the start of the RIFF header and point at the chunk body, just after the
// 8 byte id/size header.
type ChunkInfo struct {
	ID [4]byte
	// Offset of the first body byte.
	Offset int64
	// Size is the declared body size, excluding any pad byte.
	Size uint32
}

// PaddedSize returns the number of bytes the body occupies on disk, including
// the pad byte odd-sized chunks are followed by.
func (c ChunkInfo) PaddedSize() int64 {
	return int64(c.Size) + int64(c.Size%2)
}

func (c ChunkInfo) String() string {
	return fmt.Sprintf("%q @%d (%d bytes)", c.ID[:], c.Offset, c.Size)
}

func cloneChunkInfos(chunks []ChunkInfo) []ChunkInfo {
	if len(chunks) == 0 {
		return nil
	}

	return append([]ChunkInfo(nil), chunks...)
}
