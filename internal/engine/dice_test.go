package engine

import "testing"

func TestRollSixProducesSixFaces(t *testing.T) {
	roll := RollSix()

	if len(roll) != DiceCount {
		t.Fatalf("expected %d dice, got %d", DiceCount, len(roll))
	}
	for i, f := range roll {
		if f < FaceOne || f > FaceHeart {
			t.Errorf("die %d out of face range: %d", i, f)
		}
	}
}

func TestTallySumsToSix(t *testing.T) {
	for i := 0; i < 100; i++ {
		tally := RollSix().Tally()

		sum := 0
		for _, n := range tally {
			sum += n
		}
		if sum != DiceCount {
			t.Fatalf("tally counts sum to %d, want %d", sum, DiceCount)
		}
	}
}

func TestMockDiceQueue(t *testing.T) {
	defer ResetMockDice()
	MockDice([]DieFace{FaceOne, FaceOne, FaceOne, FaceEnergy, FaceClaw, FaceHeart})

	roll := RollSix()

	want := RollOutcome{FaceOne, FaceOne, FaceOne, FaceEnergy, FaceClaw, FaceHeart}
	if roll != want {
		t.Fatalf("mocked roll = %v, want %v", roll, want)
	}

	tally := roll.Tally()
	if tally[FaceOne] != 3 || tally[FaceEnergy] != 1 || tally[FaceClaw] != 1 || tally[FaceHeart] != 1 {
		t.Errorf("unexpected tally: %v", tally)
	}
}

func TestFaceStrings(t *testing.T) {
	cases := map[DieFace]string{
		FaceOne:    "1",
		FaceTwo:    "2",
		FaceThree:  "3",
		FaceEnergy: "energy",
		FaceClaw:   "claw",
		FaceHeart:  "heart",
	}
	for face, want := range cases {
		if got := face.String(); got != want {
			t.Errorf("face %d String() = %q, want %q", face, got, want)
		}
	}
}
