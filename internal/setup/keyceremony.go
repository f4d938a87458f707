package setup

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"

	"github.com/voteforge/electionkit"
)

// jointKeyDomain separates the joint key derivation from other uses of the
// digest over the same public keys.
var jointKeyDomain = []byte("electionkit-joint-key-v1")

// Guardian pairs a guardian's public ceremony record with the private key
// material that never leaves the setup host unencrypted.
type Guardian struct {
	Record     electionkit.GuardianRecord
	PrivateKey ed25519.PrivateKey
}

// KeyCeremonyStep generates guardian keypairs and combines them into the
// election joint key.
type KeyCeremonyStep struct {
	logger *zap.Logger
}

func NewKeyCeremonyStep(logger *zap.Logger) *KeyCeremonyStep {
	return &KeyCeremonyStep{logger: logger}
}

// RunKeyCeremony creates one Ed25519 keypair per guardian and derives the
// joint key: a SHA3-512 combination of the guardian public keys in
// sequence order, with the commitment hash binding the same ordering.
func (s *KeyCeremonyStep) RunKeyCeremony(guardianCount int) ([]Guardian, electionkit.ElectionJointKey, error) {
	if guardianCount < 1 {
		return nil, electionkit.ElectionJointKey{},
			fmt.Errorf("%w: guardian count must be at least 1, got %d",
				electionkit.ErrInvalidConfiguration, guardianCount)
	}

	guardians := make([]Guardian, 0, guardianCount)
	publicKeys := make([][]byte, 0, guardianCount)
	for i := 0; i < guardianCount; i++ {
		public, private, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, electionkit.ElectionJointKey{}, fmt.Errorf("generate guardian keypair: %w", err)
		}

		publicKey, err := electionkit.NewBigInteger(new(big.Int).SetBytes(public))
		if err != nil {
			return nil, electionkit.ElectionJointKey{}, err
		}

		guardian := Guardian{
			Record: electionkit.GuardianRecord{
				GuardianID:    uuid.NewString(),
				SequenceOrder: i + 1,
				PublicKey:     publicKey,
			},
			PrivateKey: private,
		}
		guardians = append(guardians, guardian)
		publicKeys = append(publicKeys, public)

		s.logger.Info("generated guardian keypair",
			zap.String("guardian_id", guardian.Record.GuardianID),
			zap.Int("sequence_order", guardian.Record.SequenceOrder),
		)
	}

	jointKey, err := combineKeys(publicKeys)
	if err != nil {
		return nil, electionkit.ElectionJointKey{}, err
	}

	s.logger.Info("key ceremony complete",
		zap.Int("guardian_count", guardianCount),
		zap.String("commitment_hash", string(jointKey.CommitmentHash)),
	)
	return guardians, jointKey, nil
}

func combineKeys(publicKeys [][]byte) (electionkit.ElectionJointKey, error) {
	h := sha3.New512()
	h.Write(jointKeyDomain)
	for _, key := range publicKeys {
		h.Write(key)
	}

	jointPublicKey, err := electionkit.NewBigInteger(new(big.Int).SetBytes(h.Sum(nil)))
	if err != nil {
		return electionkit.ElectionJointKey{}, err
	}
	return electionkit.ElectionJointKey{
		JointPublicKey: jointPublicKey,
		CommitmentHash: electionkit.Fingerprint(publicKeys...),
	}, nil
}
