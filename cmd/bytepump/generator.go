package main

import "io"

// xorshiftGenerator is the teacher's own fastRand PRNG (main.go), kept
// verbatim in spirit and generalized from generating InputCommand structs
// to filling payload bytes -- it is the deterministic byte stream spec.md
// §8 property 5 and the 1e9-byte end-to-end scenario both call for.
type xorshiftGenerator struct {
	state uint64
}

func newXorshiftGenerator(seed uint64) *xorshiftGenerator {
	if seed == 0 {
		seed = 1755956219406641000 // teacher's original fixed seed
	}
	return &xorshiftGenerator{state: seed}
}

func (g *xorshiftGenerator) next() uint64 {
	g.state ^= g.state << 13
	g.state ^= g.state >> 7
	g.state ^= g.state << 17
	return g.state
}

// writeTo streams exactly total bytes of deterministic PRNG output to w in
// chunks, closing w on completion so a downstream reader observes a clean
// EOF rather than needing a separate end-of-stream signal -- the upstream
// half of spec.md §6's canonical pipeline ("producer-side loop: drive a
// vectored read from an upstream source ... until the source returns 0").
func (g *xorshiftGenerator) writeTo(w io.WriteCloser, total uint64) error {
	defer w.Close()

	const chunkWords = 512
	buf := make([]byte, chunkWords*8)

	written := uint64(0)
	for written < total {
		n := chunkWords * 8
		if remaining := total - written; uint64(n) > remaining {
			n = int(remaining)
		}
		for i := 0; i*8 < n; i++ {
			v := g.next()
			for b := 0; b < 8 && i*8+b < n; b++ {
				buf[i*8+b] = byte(v >> (8 * b))
			}
		}
		m, err := w.Write(buf[:n])
		if err != nil {
			return err
		}
		written += uint64(m)
	}
	return nil
}
