package sample

import "fmt"

// frame is the toy under test: one telemetry reading in a fixed four-byte
// wire format (id, big-endian value, crc8 over the first three bytes).
type frame struct {
	ID    uint8
	Value uint16
}

// frameLen is the encoded size of a frame in bytes.
const frameLen = 4

func (f frame) String() string {
	return fmt.Sprintf("frame %d = %d", f.ID, f.Value)
}

func (f frame) encode() []byte {
	buf := []byte{f.ID, byte(f.Value >> 8), byte(f.Value)}
	return append(buf, crc8(buf))
}

func decodeFrame(buf []byte) (frame, bool) {
	if len(buf) != frameLen {
		return frame{}, false
	}
	if crc8(buf[:3]) != buf[3] {
		return frame{}, false
	}
	return frame{ID: buf[0], Value: uint16(buf[1])<<8 | uint16(buf[2])}, true
}

// scale converts a raw 12-bit reading to volts on a 3.3V reference.
func scale(raw uint16) float64 {
	return float64(raw) * 3.3 / 4095
}

// crcTable is shared by all checksum computations.
var crcTable = makeCRCTable()

// crc8 computes the CRC-8 (polynomial 0x07) of data.
func crc8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc = crcTable[crc^b]
	}
	return crc
}

func makeCRCTable() *[256]byte {
	var t [256]byte
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for bit := 0; bit < 8; bit++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x07
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return &t
}
