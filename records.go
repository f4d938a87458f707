package electionkit

// Manifest describes the election being set up: what is on the ballot and
// where it is run. Only the fields the setup workflow needs are modeled;
// unknown fields in a manifest document are ignored on load.
type Manifest struct {
	ElectionScopeID   string             `json:"election_scope_id"`
	SpecVersion       SpecVersion        `json:"spec_version"`
	Type              ElectionType       `json:"type"`
	StartDate         Timestamp          `json:"start_date"`
	EndDate           Timestamp          `json:"end_date"`
	GeopoliticalUnits []GeopoliticalUnit `json:"geopolitical_units,omitempty"`
	Contests          []Contest          `json:"contests,omitempty"`
	Name              string             `json:"name,omitempty"`
}

// GeopoliticalUnit is a reporting unit referenced by ballot styles and
// contests.
type GeopoliticalUnit struct {
	ObjectID string            `json:"object_id"`
	Name     string            `json:"name"`
	Type     ReportingUnitType `json:"type"`
}

// Contest is a single race or question on the ballot.
type Contest struct {
	ObjectID      string            `json:"object_id"`
	SequenceOrder int               `json:"sequence_order"`
	VoteVariation VoteVariationType `json:"vote_variation"`
	VotesAllowed  int               `json:"votes_allowed"`
	Name          string            `json:"name"`
}

// GuardianRecord is the public portion of one guardian's ceremony output.
// The private key is never part of this record; it is written to its own
// file or escrowed through a KeyStore.
type GuardianRecord struct {
	GuardianID    string     `json:"guardian_id"`
	SequenceOrder int        `json:"sequence_order"`
	PublicKey     BigInteger `json:"election_public_key"`
}

// ElectionJointKey is the combined result of the key ceremony.
type ElectionJointKey struct {
	JointPublicKey BigInteger  `json:"joint_public_key"`
	CommitmentHash ElementModQ `json:"commitment_hash"`
}

// ElectionContext binds the ceremony output to a specific manifest. It is
// written as context.json and referenced by every later stage of the
// election.
type ElectionContext struct {
	NumberOfGuardians      int         `json:"number_of_guardians"`
	Quorum                 int         `json:"quorum"`
	JointPublicKey         BigInteger  `json:"joint_public_key"`
	CommitmentHash         ElementModQ `json:"commitment_hash"`
	ManifestHash           ElementModQ `json:"manifest_hash"`
	CryptoBaseHash         ElementModQ `json:"crypto_base_hash"`
	CryptoExtendedBaseHash ElementModQ `json:"crypto_extended_base_hash"`
}

// ElectionConstants records the algorithms and formats the election record
// was produced with, so a verifier can interpret the other documents.
type ElectionConstants struct {
	SpecVersion     SpecVersion `json:"spec_version"`
	KeyAlgorithm    string      `json:"key_algorithm"`
	DigestAlgorithm string      `json:"digest_algorithm"`
	BlockSize       int         `json:"padded_block_size"`
}
