package electionkit

// ElectionType is the kind of election described by a manifest.
type ElectionType string

const (
	ElectionTypeUnknown               ElectionType = "unknown"
	ElectionTypeGeneral               ElectionType = "general"
	ElectionTypePartisanPrimaryClosed ElectionType = "partisan_primary_closed"
	ElectionTypePartisanPrimaryOpen   ElectionType = "partisan_primary_open"
	ElectionTypePrimary               ElectionType = "primary"
	ElectionTypeRunoff                ElectionType = "runoff"
	ElectionTypeSpecial               ElectionType = "special"
	ElectionTypeOther                 ElectionType = "other"
)

// IsValid reports whether the value is a member of the closed set.
func (t ElectionType) IsValid() bool {
	switch t {
	case ElectionTypeUnknown, ElectionTypeGeneral, ElectionTypePartisanPrimaryClosed,
		ElectionTypePartisanPrimaryOpen, ElectionTypePrimary, ElectionTypeRunoff,
		ElectionTypeSpecial, ElectionTypeOther:
		return true
	default:
		return false
	}
}

// ReportingUnitType classifies the geopolitical unit a reporting unit
// represents.
type ReportingUnitType string

const (
	ReportingUnitTypeUnknown          ReportingUnitType = "unknown"
	ReportingUnitTypeBallotBatch      ReportingUnitType = "ballot_batch"
	ReportingUnitTypeBallotStyleArea  ReportingUnitType = "ballot_style_area"
	ReportingUnitTypeBorough          ReportingUnitType = "borough"
	ReportingUnitTypeCity             ReportingUnitType = "city"
	ReportingUnitTypeCityCouncil      ReportingUnitType = "city_council"
	ReportingUnitTypeCombinedPrecinct ReportingUnitType = "combined_precinct"
	ReportingUnitTypeCongressional    ReportingUnitType = "congressional"
	ReportingUnitTypeCountry          ReportingUnitType = "country"
	ReportingUnitTypeCounty           ReportingUnitType = "county"
	ReportingUnitTypeCountyCouncil    ReportingUnitType = "county_council"
	ReportingUnitTypeDropBox          ReportingUnitType = "drop_box"
	ReportingUnitTypeJudicial         ReportingUnitType = "judicial"
	ReportingUnitTypeMunicipality     ReportingUnitType = "municipality"
	ReportingUnitTypePollingPlace     ReportingUnitType = "polling_place"
	ReportingUnitTypePrecinct         ReportingUnitType = "precinct"
	ReportingUnitTypeSchool           ReportingUnitType = "school"
	ReportingUnitTypeSpecial          ReportingUnitType = "special"
	ReportingUnitTypeSplitPrecinct    ReportingUnitType = "split_precinct"
	ReportingUnitTypeState            ReportingUnitType = "state"
	ReportingUnitTypeStateHouse       ReportingUnitType = "state_house"
	ReportingUnitTypeStateSenate      ReportingUnitType = "state_senate"
	ReportingUnitTypeTownship         ReportingUnitType = "township"
	ReportingUnitTypeUtility          ReportingUnitType = "utility"
	ReportingUnitTypeVillage          ReportingUnitType = "village"
	ReportingUnitTypeVoteCenter       ReportingUnitType = "vote_center"
	ReportingUnitTypeWard             ReportingUnitType = "ward"
	ReportingUnitTypeWater            ReportingUnitType = "water"
	ReportingUnitTypeOther            ReportingUnitType = "other"
)

func (t ReportingUnitType) IsValid() bool {
	switch t {
	case ReportingUnitTypeUnknown, ReportingUnitTypeBallotBatch, ReportingUnitTypeBallotStyleArea,
		ReportingUnitTypeBorough, ReportingUnitTypeCity, ReportingUnitTypeCityCouncil,
		ReportingUnitTypeCombinedPrecinct, ReportingUnitTypeCongressional, ReportingUnitTypeCountry,
		ReportingUnitTypeCounty, ReportingUnitTypeCountyCouncil, ReportingUnitTypeDropBox,
		ReportingUnitTypeJudicial, ReportingUnitTypeMunicipality, ReportingUnitTypePollingPlace,
		ReportingUnitTypePrecinct, ReportingUnitTypeSchool, ReportingUnitTypeSpecial,
		ReportingUnitTypeSplitPrecinct, ReportingUnitTypeState, ReportingUnitTypeStateHouse,
		ReportingUnitTypeStateSenate, ReportingUnitTypeTownship, ReportingUnitTypeUtility,
		ReportingUnitTypeVillage, ReportingUnitTypeVoteCenter, ReportingUnitTypeWard,
		ReportingUnitTypeWater, ReportingUnitTypeOther:
		return true
	default:
		return false
	}
}

// VoteVariationType is the counting method of a contest.
type VoteVariationType string

const (
	VoteVariationTypeUnknown       VoteVariationType = "unknown"
	VoteVariationTypeOneOfM        VoteVariationType = "one_of_m"
	VoteVariationTypeApproval      VoteVariationType = "approval"
	VoteVariationTypeBorda         VoteVariationType = "borda"
	VoteVariationTypeCumulative    VoteVariationType = "cumulative"
	VoteVariationTypeMajority      VoteVariationType = "majority"
	VoteVariationTypeNOfM          VoteVariationType = "n_of_m"
	VoteVariationTypePlurality     VoteVariationType = "plurality"
	VoteVariationTypeProportional  VoteVariationType = "proportional"
	VoteVariationTypeRange         VoteVariationType = "range"
	VoteVariationTypeRCV           VoteVariationType = "rcv"
	VoteVariationTypeSuperMajority VoteVariationType = "super_majority"
	VoteVariationTypeOther         VoteVariationType = "other"
)

func (t VoteVariationType) IsValid() bool {
	switch t {
	case VoteVariationTypeUnknown, VoteVariationTypeOneOfM, VoteVariationTypeApproval,
		VoteVariationTypeBorda, VoteVariationTypeCumulative, VoteVariationTypeMajority,
		VoteVariationTypeNOfM, VoteVariationTypePlurality, VoteVariationTypeProportional,
		VoteVariationTypeRange, VoteVariationTypeRCV, VoteVariationTypeSuperMajority,
		VoteVariationTypeOther:
		return true
	default:
		return false
	}
}

// SpecVersion identifies the election record specification a document
// conforms to.
type SpecVersion string

const (
	SpecVersion0_95 SpecVersion = "v0.95"
	SpecVersion1_0  SpecVersion = "1.0"
)

func (v SpecVersion) IsValid() bool {
	switch v {
	case SpecVersion0_95, SpecVersion1_0:
		return true
	default:
		return false
	}
}

// BallotBoxState tracks where a ballot is in its lifecycle.
type BallotBoxState int

const (
	BallotBoxStateCast    BallotBoxState = 1
	BallotBoxStateSpoiled BallotBoxState = 2
	BallotBoxStateUnknown BallotBoxState = 999
)

func (s BallotBoxState) IsValid() bool {
	switch s {
	case BallotBoxStateCast, BallotBoxStateSpoiled, BallotBoxStateUnknown:
		return true
	default:
		return false
	}
}

// ProofUsage describes what a zero-knowledge proof attached to a record
// demonstrates.
type ProofUsage string

const (
	ProofUsageUnknown        ProofUsage = "Unknown"
	ProofUsageSecretValue    ProofUsage = "Prove knowledge of secret value"
	ProofUsageSelectionLimit ProofUsage = "Prove value within selection's limit"
	ProofUsageSelectionValue ProofUsage = "Prove selection's value (0 or 1)"
)

func (u ProofUsage) IsValid() bool {
	switch u {
	case ProofUsageUnknown, ProofUsageSecretValue, ProofUsageSelectionLimit, ProofUsageSelectionValue:
		return true
	default:
		return false
	}
}

// ContestErrorType flags a contest-level irregularity on a submitted
// ballot.
type ContestErrorType string

const (
	ContestErrorTypeOverVote  ContestErrorType = "overvote"
	ContestErrorTypeNullVote  ContestErrorType = "nullvote"
	ContestErrorTypeUnderVote ContestErrorType = "undervote"
)

func (t ContestErrorType) IsValid() bool {
	switch t {
	case ContestErrorTypeOverVote, ContestErrorTypeNullVote, ContestErrorTypeUnderVote:
		return true
	default:
		return false
	}
}
