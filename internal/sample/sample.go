// Package sample provides the built-in demonstration suites the CLI runs.
// They exercise every assertion kind against a small frame codec so the
// renderers always have something real to show.
package sample

import "minitest/unit"

// Entities builds the demo suites in declaration order. With failures
// enabled the returned set also contains cases that fail or never evaluate,
// so every outcome kind appears in the reports.
func Entities(withFailures bool) ([]unit.Entity, error) {
	checksums, err := unit.NewGroup("checksums",
		unit.NewCase("zero checksum for empty payload", func(c *unit.Case) {
			c.AssertIntEquals(0, int64(crc8(nil)))
		}),
		unit.NewCase("checksum is deterministic", func(c *unit.Case) {
			payload := []byte{0x01, 0x02, 0x03}
			c.AssertIntEquals(int64(crc8(payload)), int64(crc8(payload)))
		}),
		unit.NewCase("checksum table is shared", func(c *unit.Case) {
			c.AssertNotNil(crcTable)
			c.AssertSame(crcTable, crcTable)
		}),
	)
	if err != nil {
		return nil, err
	}

	frames, err := unit.NewGroup("frames",
		unit.NewCase("value survives the round trip", func(c *unit.Case) {
			f := frame{ID: 7, Value: 1024}
			got, ok := decodeFrame(f.encode())
			c.Assert(ok, "decode rejected its own encoding")
			c.AssertIntEquals(1024, int64(got.Value))
			c.AssertIntEquals(7, int64(got.ID))
		}),
		unit.NewCase("header byte carries the id", func(c *unit.Case) {
			buf := frame{ID: 0x2A}.encode()
			c.AssertBytesEquals([]byte{0x2A}, buf[:1], 1)
		}),
		unit.NewCase("encoding is stable", func(c *unit.Case) {
			f := frame{ID: 1, Value: 513}
			c.AssertBytesEquals(f.encode(), f.encode(), frameLen)
		}),
		unit.NewCase("label names id and value", func(c *unit.Case) {
			c.AssertStrEquals("frame 7 = 1024", frame{ID: 7, Value: 1024}.String())
		}),
		unit.NewCase("truncated frames are rejected", func(c *unit.Case) {
			_, ok := decodeFrame([]byte{0x01, 0x02})
			c.Assert(!ok, "decode accepted a truncated frame")
		}),
		unit.NewCase("corrupted checksums are rejected", func(c *unit.Case) {
			buf := frame{ID: 3, Value: 9}.encode()
			buf[frameLen-1] ^= 0xFF
			_, ok := decodeFrame(buf)
			c.Assert(!ok, "decode accepted a corrupted frame")
		}),
	)
	if err != nil {
		return nil, err
	}

	codec, err := unit.NewModule("codec", checksums, frames)
	if err != nil {
		return nil, err
	}

	readings, err := unit.NewGroup("readings",
		unit.NewCase("zero raw reads zero volts", func(c *unit.Case) {
			c.AssertFloatEquals(0, scale(0), 0)
		}),
		unit.NewCase("full scale reads the reference", func(c *unit.Case) {
			c.AssertFloatEquals(3.3, scale(4095), 1e-9)
		}),
		unit.NewCase("midpoint reads half the reference", func(c *unit.Case) {
			c.AssertFloatEquals(1.65, scale(2048), 0.001)
		}),
	)
	if err != nil {
		return nil, err
	}

	sanity := unit.NewCase("wire format is four bytes", func(c *unit.Case) {
		c.AssertIntEquals(frameLen, int64(len(frame{}.encode())))
	})

	entities := []unit.Entity{codec, readings, sanity}

	if withFailures {
		failures, err := unit.NewGroup("expected failures",
			unit.NewCase("mismatched value", func(c *unit.Case) {
				c.AssertIntEquals(1024, 1025)
			}),
			unit.NewCase("mismatched label", func(c *unit.Case) {
				c.AssertStrEquals(frame{ID: 1, Value: 2}.String(), frame{ID: 2, Value: 1}.String())
			}),
			unit.NewCase("corrupted buffer", func(c *unit.Case) {
				c.AssertBytesEquals([]byte{1, 2, 3}, []byte{1, 0xFF, 3}, 3)
			}),
			unit.NewCase("never evaluated", func(c *unit.Case) {
				// no assertion on purpose: shows up as "invalid"
			}),
		)
		if err != nil {
			return nil, err
		}
		entities = append(entities, failures)
	}

	return entities, nil
}
