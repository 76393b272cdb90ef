package view

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Digest hashes the tallied board: every cell's offset, votes and owner.
// Pixels and orientation are excluded, so two projections of the same
// snapshot share a digest.
func (v View) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestWriteU64(h, &tmp, uint64(len(v.Cells)))
	for _, c := range v.Cells {
		digestWriteI64(h, &tmp, int64(c.Offset.Row))
		digestWriteI64(h, &tmp, int64(c.Offset.Col))
		digestWriteString(h, &tmp, c.Owner)
		digestWriteU64(h, &tmp, uint64(len(c.Votes)))
		for _, vote := range c.Votes {
			digestWriteString(h, &tmp, vote.Owner)
			digestWriteU64(h, &tmp, uint64(vote.Count))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func digestWriteU64(h io.Writer, tmp *[8]byte, v uint64) {
	binary.LittleEndian.PutUint64(tmp[:], v)
	h.Write(tmp[:])
}

func digestWriteI64(h io.Writer, tmp *[8]byte, v int64) {
	digestWriteU64(h, tmp, uint64(v))
}

func digestWriteString(h io.Writer, tmp *[8]byte, s string) {
	digestWriteU64(h, tmp, uint64(len(s)))
	io.WriteString(h, s)
}
