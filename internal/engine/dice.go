package engine

import (
	"crypto/rand"
	"math/big"
)

// DiceCount is the fixed number of dice rolled every turn.
const DiceCount = 6

// DieFace is one of the six outcomes a single die can land on.
type DieFace int

const (
	FaceOne DieFace = iota
	FaceTwo
	FaceThree
	FaceEnergy
	FaceClaw
	FaceHeart

	numFaces = 6
)

func (f DieFace) String() string {
	switch f {
	case FaceOne:
		return "1"
	case FaceTwo:
		return "2"
	case FaceThree:
		return "3"
	case FaceEnergy:
		return "energy"
	case FaceClaw:
		return "claw"
	case FaceHeart:
		return "heart"
	}
	return "unknown"
}

// RollOutcome is the result of rolling all six dice. It is a value type and
// never mutated after RollSix returns it; a new roll replaces it entirely.
type RollOutcome [DiceCount]DieFace

// FaceTally counts occurrences of each face variant within one roll.
type FaceTally map[DieFace]int

// Tally counts each face in the roll. The counts always sum to DiceCount.
func (r RollOutcome) Tally() FaceTally {
	tally := make(FaceTally)
	for _, face := range r {
		tally[face]++
	}
	return tally
}

var mockFaceQueue []DieFace

// MockDice prepares a sequence of deterministic faces for the next calls to RollSix
func MockDice(faces []DieFace) {
	mockFaceQueue = faces
}

// ResetMockDice clears the deterministic queue
func ResetMockDice() {
	mockFaceQueue = nil
}

// safeRand fetches a strongly uniform random integer in [0, max) via crypto/rand
func safeRand(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

// RollSix rolls the six dice. Each die is an independent uniform draw over
// the six faces; no state is carried between rolls.
func RollSix() RollOutcome {
	var out RollOutcome
	for i := 0; i < DiceCount; i++ {
		if len(mockFaceQueue) > 0 {
			out[i] = mockFaceQueue[0]
			mockFaceQueue = mockFaceQueue[1:]
		} else {
			out[i] = DieFace(safeRand(numFaces))
		}
	}
	return out
}
