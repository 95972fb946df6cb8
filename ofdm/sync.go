/*
NAME
  sync.go

DESCRIPTION
  sync.go locates the start of the first transmission frame in a raw PCM
  stream by correlating the cyclic-prefix guard interval against the tail
  of the symbol it repeats.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ofdm

import (
	"math"

	"github.com/pkg/errors"

	"github.com/easypal-go/hamdrm/config"
)

// ErrNoSync is returned by CoarseSync when samples is too short to
// contain even one full symbol.
var ErrNoSync = errors.New("ofdm: samples too short to synchronise")

// CoarseSync scans the first two symbol periods of samples and returns
// the sample offset p that maximises the guard-correlation
//
//	corr(p) = |sum_{i<Ng} s[p+i]*s[p+Nu+i]| / sqrt(sum s[p+i]^2 * sum s[p+Nu+i]^2)
//
// which peaks where a guard interval (a copy of the tail of its symbol)
// begins. Ties favour the earliest offset.
func CoarseSync(cfg config.Config, samples []float64) (int, error) {
	symLen := cfg.SymbolLen()
	if len(samples) < symLen {
		return 0, ErrNoSync
	}

	scanLen := 2 * symLen
	if scanLen > len(samples)-symLen {
		scanLen = len(samples) - symLen
	}
	if scanLen <= 0 {
		return 0, ErrNoSync
	}

	best := 0
	bestCorr := -1.0
	for p := 0; p < scanLen; p++ {
		var cross, energyA, energyB float64
		for i := 0; i < cfg.GuardLen; i++ {
			a := samples[p+i]
			b := samples[p+cfg.SymbolsUseful+i]
			cross += a * b
			energyA += a * a
			energyB += b * b
		}
		denom := math.Sqrt(energyA * energyB)
		var corr float64
		if denom > 1e-15 {
			corr = math.Abs(cross) / denom
		}
		if corr > bestCorr {
			bestCorr = corr
			best = p
		}
	}
	return best, nil
}
