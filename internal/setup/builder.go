package setup

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
)

// BuildResults is everything the output step writes to disk.
type BuildResults struct {
	Context   electionkit.ElectionContext
	Constants electionkit.ElectionConstants
}

// ElectionBuilderStep derives the election context from the validated
// inputs and the joint key.
type ElectionBuilderStep struct {
	ser    *electionkit.Serializer
	logger *zap.Logger
}

func NewElectionBuilderStep(ser *electionkit.Serializer, logger *zap.Logger) *ElectionBuilderStep {
	return &ElectionBuilderStep{ser: ser, logger: logger}
}

// BuildElection computes the manifest hash and the base hashes binding the
// manifest, the guardian parameters and the joint key together.
func (s *ElectionBuilderStep) BuildElection(inputs Inputs, jointKey electionkit.ElectionJointKey) (BuildResults, error) {
	rawManifest, err := s.ser.ToRaw(inputs.Manifest)
	if err != nil {
		return BuildResults{}, err
	}
	manifestHash := electionkit.Fingerprint(rawManifest)

	baseHash := electionkit.Fingerprint(
		[]byte(strconv.Itoa(inputs.GuardianCount)),
		[]byte(strconv.Itoa(inputs.Quorum)),
		[]byte(manifestHash),
	)
	extendedBaseHash := electionkit.Fingerprint(
		[]byte(baseHash),
		[]byte(jointKey.CommitmentHash),
	)

	s.logger.Info("built election context",
		zap.String("manifest_hash", string(manifestHash)),
		zap.String("crypto_base_hash", string(baseHash)),
	)

	return BuildResults{
		Context: electionkit.ElectionContext{
			NumberOfGuardians:      inputs.GuardianCount,
			Quorum:                 inputs.Quorum,
			JointPublicKey:         jointKey.JointPublicKey,
			CommitmentHash:         jointKey.CommitmentHash,
			ManifestHash:           manifestHash,
			CryptoBaseHash:         baseHash,
			CryptoExtendedBaseHash: extendedBaseHash,
		},
		Constants: electionkit.ElectionConstants{
			SpecVersion:     inputs.Manifest.SpecVersion,
			KeyAlgorithm:    "ed25519",
			DigestAlgorithm: "sha3-256",
			BlockSize:       int(electionkit.Bytes512),
		},
	}, nil
}
