package setup

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
)

func testInputs(t *testing.T) Inputs {
	t.Helper()
	return Inputs{
		GuardianCount: 5,
		Quorum:        3,
		Manifest: electionkit.Manifest{
			ElectionScopeID: "jefferson-county-2026",
			SpecVersion:     electionkit.SpecVersion1_0,
			Type:            electionkit.ElectionTypeGeneral,
			StartDate:       electionkit.Timestamp{Time: time.Date(2026, 11, 3, 8, 0, 0, 0, time.UTC)},
			EndDate:         electionkit.Timestamp{Time: time.Date(2026, 11, 3, 20, 0, 0, 0, time.UTC)},
		},
		OutDir: t.TempDir(),
	}
}

func testJointKey() electionkit.ElectionJointKey {
	return electionkit.ElectionJointKey{
		JointPublicKey: "0AFF",
		CommitmentHash: "AB12",
	}
}

func TestBuildElection(t *testing.T) {
	step := NewElectionBuilderStep(newTestSerializer(t), zap.NewNop())
	inputs := testInputs(t)

	results, err := step.BuildElection(inputs, testJointKey())
	if err != nil {
		t.Fatalf("BuildElection failed: %v", err)
	}

	ec := results.Context
	if ec.NumberOfGuardians != 5 || ec.Quorum != 3 {
		t.Errorf("unexpected guardian parameters: %+v", ec)
	}
	if ec.JointPublicKey != "0AFF" || ec.CommitmentHash != "AB12" {
		t.Errorf("joint key not carried into context: %+v", ec)
	}
	for name, hash := range map[string]electionkit.ElementModQ{
		"manifest_hash":             ec.ManifestHash,
		"crypto_base_hash":          ec.CryptoBaseHash,
		"crypto_extended_base_hash": ec.CryptoExtendedBaseHash,
	} {
		if len(hash) != 64 {
			t.Errorf("%s length = %d, want 64", name, len(hash))
		}
	}

	if results.Constants.KeyAlgorithm != "ed25519" {
		t.Errorf("unexpected constants: %+v", results.Constants)
	}
	if results.Constants.BlockSize != 512 {
		t.Errorf("block size = %d, want 512", results.Constants.BlockSize)
	}
}

func TestBuildElectionStableHashes(t *testing.T) {
	step := NewElectionBuilderStep(newTestSerializer(t), zap.NewNop())
	inputs := testInputs(t)

	first, err := step.BuildElection(inputs, testJointKey())
	if err != nil {
		t.Fatalf("BuildElection failed: %v", err)
	}
	second, err := step.BuildElection(inputs, testJointKey())
	if err != nil {
		t.Fatalf("BuildElection failed: %v", err)
	}
	if first.Context.ManifestHash != second.Context.ManifestHash {
		t.Error("manifest hash is not stable across builds")
	}
	if first.Context.CryptoBaseHash != second.Context.CryptoBaseHash {
		t.Error("base hash is not stable across builds")
	}

	changed := inputs
	changed.Manifest.ElectionScopeID = "different-scope"
	third, err := step.BuildElection(changed, testJointKey())
	if err != nil {
		t.Fatalf("BuildElection failed: %v", err)
	}
	if third.Context.ManifestHash == first.Context.ManifestHash {
		t.Error("different manifests produced the same hash")
	}
}
