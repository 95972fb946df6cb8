/*
NAME
  conv.go

DESCRIPTION
  conv.go implements the rate-1/6 constraint-length-7 convolutional
  encoder and its hard-decision, puncture-aware Viterbi decoder used for
  FAC, SDC and MSC channel coding.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package conv implements the rate-1/6, constraint-length-7 mother
// convolutional code and its punctured hard-decision Viterbi decoder.
package conv

import "math/bits"

// ConstraintLength is K, giving 2^(K-1) = 64 encoder states.
const ConstraintLength = 7

// NumStates is the number of encoder states, 2^(K-1).
const NumStates = 1 << (ConstraintLength - 1)

// polys holds the rate-1/6 mother code generator polynomials, octal
// {0o133, 0o171, 0o145, 0o165, 0o117, 0o135}, applied in this order.
var polys = [6]int{0o133, 0o171, 0o145, 0o165, 0o117, 0o135}

// Puncture patterns. A 1 means the corresponding generator's output bit
// is transmitted; a 0 means it is punctured (dropped).
var (
	PunctureMSC = []int{1, 1, 0, 1, 0, 0} // rate 1/3 (keep 3 of 6)
	PunctureFAC = []int{1, 1, 0, 1, 1, 0} // rate 1/4 (keep 4 of 6)
	PunctureSDC = []int{1, 1, 0, 0, 0, 0} // rate 1/2 (keep 2 of 6)
)

// popcount returns the number of 1s in a puncture pattern.
func popcount(puncture []int) int {
	n := 0
	for _, p := range puncture {
		if p != 0 {
			n++
		}
	}
	return n
}

// parity returns the XOR of all bits in v.
func parity(v int) byte {
	return byte(bits.OnesCount(uint(v)) & 1)
}

// Encode rate-1/6 convolutional-encodes the bit vector x (one 0/1 value
// per byte), flushing the encoder to the zero state with ConstraintLength-1
// tail bits, and punctures the output per puncture. Output length is
// (len(x) + ConstraintLength - 1) * popcount(puncture).
func Encode(x []byte, puncture []int) []byte {
	kept := popcount(puncture)
	out := make([]byte, 0, (len(x)+ConstraintLength-1)*kept)
	state := 0

	step := func(b byte) {
		full := (int(b) << 6) | state
		for i, p := range polys {
			if puncture[i%len(puncture)] != 0 {
				out = append(out, parity(full&p))
			}
		}
		state = ((state >> 1) | (int(b) << 5)) & (NumStates - 1)
	}

	for _, b := range x {
		step(b)
	}
	for i := 0; i < ConstraintLength-1; i++ {
		step(0)
	}
	return out
}

const infMetric = 1 << 30

// Decode performs hard-decision Viterbi decoding of r (one 0/1 value per
// byte, as received over the channel) against the given puncture pattern,
// returning the recovered information bits with the trailing
// ConstraintLength-1 flush bits removed.
func Decode(r []byte, puncture []int) []byte {
	kept := popcount(puncture)
	if kept == 0 {
		return nil
	}
	n := len(r) / kept

	metric := make([]int, NumStates)
	for s := 1; s < NumStates; s++ {
		metric[s] = infMetric
	}

	// pred[step][state] is the predecessor state, or -1 if unreached.
	pred := make([][]int, n)

	for step := 0; step < n; step++ {
		rBits := r[step*kept : step*kept+kept]
		newMetric := make([]int, NumStates)
		newPred := make([]int, NumStates)
		for s := range newMetric {
			newMetric[s] = infMetric
			newPred[s] = -1
		}

		for s := 0; s < NumStates; s++ {
			if metric[s] >= infMetric {
				continue
			}
			for b := 0; b <= 1; b++ {
				full := (b << 6) | s
				dist := 0
				k := 0
				for i, p := range polys {
					if puncture[i%len(puncture)] != 0 {
						if parity(full&p) != rBits[k] {
							dist++
						}
						k++
					}
				}
				next := ((s >> 1) | (b << 5)) & (NumStates - 1)
				cand := metric[s] + dist
				if cand < newMetric[next] {
					newMetric[next] = cand
					newPred[next] = s
				}
			}
		}

		metric = newMetric
		pred[step] = newPred
	}

	final := 0
	best := metric[0]
	for s := 1; s < NumStates; s++ {
		if metric[s] < best {
			best = metric[s]
			final = s
		}
	}

	outBits := make([]byte, n)
	cur := final
	for step := n - 1; step >= 0; step-- {
		p := pred[step][cur]
		if p < 0 {
			outBits[step] = 0
			cur = 0
			continue
		}
		outBits[step] = byte((cur >> (ConstraintLength - 2)) & 1)
		cur = p
	}

	if len(outBits) < ConstraintLength-1 {
		return nil
	}
	return outBits[:len(outBits)-(ConstraintLength-1)]
}
