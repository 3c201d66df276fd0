package app

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"randgen/cmd/randgen/app/config"
	"randgen/pkg/util/log"
)

var entropy = rand.Reader

// resolveSeed returns seed itself, or a seed read from the OS entropy
// source when seed is config.NoSeed. The wall clock is used if that read
// fails.
func resolveSeed(seed int64) uint32 {
	if seed != config.NoSeed {
		return uint32(seed)
	}

	var b [4]byte
	s := uint32(time.Now().UnixNano())
	if _, err := entropy.Read(b[:]); err != nil {
		log.Error(err, "read entropy failed, seeding from clock")
	} else {
		s = binary.LittleEndian.Uint32(b[:])
	}
	log.V(1).Infof("seed=%d", s)
	return s
}
