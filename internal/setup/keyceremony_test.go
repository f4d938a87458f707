package setup

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
)

func TestRunKeyCeremony(t *testing.T) {
	step := NewKeyCeremonyStep(zap.NewNop())

	guardians, jointKey, err := step.RunKeyCeremony(3)
	if err != nil {
		t.Fatalf("RunKeyCeremony failed: %v", err)
	}
	if len(guardians) != 3 {
		t.Fatalf("guardian count = %d, want 3", len(guardians))
	}

	seen := make(map[string]bool)
	for i, guardian := range guardians {
		if guardian.Record.SequenceOrder != i+1 {
			t.Errorf("guardian %d sequence order = %d, want %d", i, guardian.Record.SequenceOrder, i+1)
		}
		if seen[guardian.Record.GuardianID] {
			t.Errorf("duplicate guardian id %q", guardian.Record.GuardianID)
		}
		seen[guardian.Record.GuardianID] = true
		if guardian.Record.PublicKey == "" {
			t.Errorf("guardian %d has no public key", i)
		}
		if len(guardian.PrivateKey) == 0 {
			t.Errorf("guardian %d has no private key", i)
		}
	}

	if jointKey.JointPublicKey == "" {
		t.Error("joint public key is empty")
	}
	// SHA3-256 hex form.
	if len(jointKey.CommitmentHash) != 64 {
		t.Errorf("commitment hash length = %d, want 64", len(jointKey.CommitmentHash))
	}
}

func TestRunKeyCeremonyInvalidCount(t *testing.T) {
	step := NewKeyCeremonyStep(zap.NewNop())
	if _, _, err := step.RunKeyCeremony(0); !errors.Is(err, electionkit.ErrInvalidConfiguration) {
		t.Errorf("RunKeyCeremony error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestCombineKeysDeterministic(t *testing.T) {
	keys := [][]byte{{0x01, 0x02}, {0x03, 0x04}}

	first, err := combineKeys(keys)
	if err != nil {
		t.Fatalf("combineKeys failed: %v", err)
	}
	second, err := combineKeys(keys)
	if err != nil {
		t.Fatalf("combineKeys failed: %v", err)
	}
	if first != second {
		t.Error("combining the same keys twice produced different joint keys")
	}

	reordered, err := combineKeys([][]byte{{0x03, 0x04}, {0x01, 0x02}})
	if err != nil {
		t.Fatalf("combineKeys failed: %v", err)
	}
	if first == reordered {
		t.Error("joint key does not bind the guardian ordering")
	}
}
