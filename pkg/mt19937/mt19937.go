// Package mt19937 implements the 32-bit Mersenne Twister MT19937.
//
// The generator is deterministic and is NOT suitable for cryptographic use.
// An MT is not safe for concurrent use; give every owner its own instance.
package mt19937

const (
	N = 624 // state size in words
	M = 397 // twist offset

	DefaultSeed = uint32(5489)

	matrixA   = uint32(0x9908b0df)
	upperMask = uint32(0x80000000) // most significant bit
	lowerMask = uint32(0x7fffffff) // 31 least significant bits

	temperB = uint32(0x9d2c5680)
	temperC = uint32(0xefc60000)

	// index value of a generator that has never been seeded
	unseeded = N + 1
)

var mag01 = [2]uint32{0, matrixA}

type MT struct {
	state [N]uint32
	index int
}

// New returns a generator seeded with s.
func New(s uint32) *MT {
	mt := &MT{}
	mt.Seed(s)
	return mt
}

// NewUnseeded returns a generator that seeds itself with DefaultSeed
// on the first extraction.
func NewUnseeded() *MT {
	return &MT{index: unseeded}
}

// Seed overwrites the whole state from s. Any value, including 0, is valid.
func (mt *MT) Seed(s uint32) {
	mt.state[0] = s
	for i := 1; i < N; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = N
}

// twist regenerates all N words. The loop is split at N-M and N-1 so the
// k+M and k+1 lookups wrap without a modulo.
func (mt *MT) twist() {
	var y uint32
	k := 0
	for ; k < N-M; k++ {
		y = (mt.state[k] & upperMask) | (mt.state[k+1] & lowerMask)
		mt.state[k] = mt.state[k+M] ^ (y >> 1) ^ mag01[y&0x1]
	}
	for ; k < N-1; k++ {
		y = (mt.state[k] & upperMask) | (mt.state[k+1] & lowerMask)
		mt.state[k] = mt.state[k+(M-N)] ^ (y >> 1) ^ mag01[y&0x1]
	}
	y = (mt.state[N-1] & upperMask) | (mt.state[0] & lowerMask)
	mt.state[N-1] = mt.state[M-1] ^ (y >> 1) ^ mag01[y&0x1]

	mt.index = 0
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperB
	y ^= (y << 15) & temperC
	y ^= y >> 18
	return y
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT) Uint32() uint32 {
	if mt.index >= N {
		if mt.index == unseeded {
			mt.Seed(DefaultSeed)
		}
		mt.twist()
	}

	y := mt.state[mt.index]
	mt.index++
	return temper(y)
}

// Uint64 joins two consecutive outputs, the first one in the high word.
func (mt *MT) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	return hi<<32 | uint64(mt.Uint32())
}
