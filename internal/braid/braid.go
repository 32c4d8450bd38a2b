// Package braid implements table-driven CRC-32 (IEEE) over interleaved lanes.
//
// The input is consumed as little-endian 64-bit words. Each of the N lanes
// owns every N-th word and carries its own partial CRC, so the lookups of one
// lane do not wait on the others. The last block merges the lanes back into a
// single register. Any lane count produces the same result.
package braid

import "encoding/binary"

const (
	// Polynomial is the reversed IEEE 802.3 polynomial.
	Polynomial = 0xedb88320

	// DefaultLanes is the lane count used by Update.
	DefaultLanes = 5

	// MaxLanes bounds the lane count accepted by New.
	MaxLanes = 8

	wordSize = 8
)

// byteTable is the single-lane table: byteTable[b] is the register after
// shifting byte b through an empty register.
var byteTable = func() *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}()

var defaultTable = New(DefaultLanes)

// Table holds the per-byte-position lookup tables for a fixed lane count.
type Table struct {
	lanes int
	words [wordSize][256]uint32
}

// New builds the tables for the given number of lanes.
// Lane counts outside [1, MaxLanes] are clamped.
func New(lanes int) *Table {
	lanes = max(1, min(lanes, MaxLanes))

	t := &Table{lanes: lanes}
	// Byte k of a lane word is followed by the rest of its word and by one
	// word of every other lane before the lane sees its next word.
	for k := 0; k < wordSize; k++ {
		zeros := wordSize - 1 - k + (lanes-1)*wordSize
		for b := 0; b < 256; b++ {
			t.words[k][b] = shift(byteTable[b], zeros)
		}
	}
	return t
}

// Lanes returns the number of interleaved lanes.
func (t *Table) Lanes() int {
	return t.lanes
}

// Update returns the result of adding the bytes in p to crc using the default
// lane count.
func Update(crc uint32, p []byte) uint32 {
	return defaultTable.Update(crc, p)
}

// Update returns the result of adding the bytes in p to crc.
func (t *Table) Update(crc uint32, p []byte) uint32 {
	crc = ^crc

	block := t.lanes * wordSize
	if blocks := len(p) / block; blocks > 0 {
		var lane [MaxLanes]uint64
		lane[0] = uint64(crc)

		for ; blocks > 1; blocks-- {
			for j := 0; j < t.lanes; j++ {
				w := lane[j] ^ binary.LittleEndian.Uint64(p[j*wordSize:])
				lane[j] = uint64(t.fold(w))
			}
			p = p[block:]
		}

		// Last block: chain the lanes into one register.
		crc = 0
		for j := 0; j < t.lanes; j++ {
			crc = word(lane[j] ^ binary.LittleEndian.Uint64(p[j*wordSize:]) ^ uint64(crc))
		}
		p = p[block:]
	}

	for _, b := range p {
		crc = byteTable[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// fold maps a lane word to its contribution one block later.
func (t *Table) fold(w uint64) uint32 {
	return t.words[0][byte(w)] ^
		t.words[1][byte(w>>8)] ^
		t.words[2][byte(w>>16)] ^
		t.words[3][byte(w>>24)] ^
		t.words[4][byte(w>>32)] ^
		t.words[5][byte(w>>40)] ^
		t.words[6][byte(w>>48)] ^
		t.words[7][byte(w>>56)]
}

// word shifts a full 64-bit word through an empty register.
func word(w uint64) uint32 {
	for i := 0; i < wordSize; i++ {
		w = (w >> 8) ^ uint64(byteTable[byte(w)])
	}
	return uint32(w)
}

// shift advances crc over n zero bytes.
func shift(crc uint32, n int) uint32 {
	for ; n > 0; n-- {
		crc = byteTable[byte(crc)] ^ (crc >> 8)
	}
	return crc
}

// UpdateWord folds one little-endian 64-bit word into a raw (uncomplemented)
// register. It is the software equivalent of the CRC32X instruction.
func UpdateWord(crc uint32, w uint64) uint32 {
	return word(uint64(crc) ^ w)
}

// UpdateByte folds one byte into a raw (uncomplemented) register. It is the
// software equivalent of the CRC32B instruction.
func UpdateByte(crc uint32, b byte) uint32 {
	return byteTable[byte(crc)^b] ^ (crc >> 8)
}
