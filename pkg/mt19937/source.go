package mt19937

import "math/rand"

type source struct {
	mt *MT
}

// Source adapts mt to math/rand. The returned source shares state with mt.
func (mt *MT) Source() rand.Source64 {
	return source{mt: mt}
}

func (s source) Int63() int64 {
	return int64(s.mt.Uint64() >> 1)
}

func (s source) Uint64() uint64 {
	return s.mt.Uint64()
}

// Seed keeps the low 32 bits of seed.
func (s source) Seed(seed int64) {
	s.mt.Seed(uint32(seed))
}
