package electionkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voteforge/electionkit"
)

func TestDefaultRegistryNames(t *testing.T) {
	registry, err := electionkit.DefaultRegistry()
	require.NoError(t, err)

	names := registry.Names()
	for _, want := range []string{
		electionkit.TypeTimestamp,
		electionkit.TypeBigInteger,
		electionkit.TypeElementModP,
		electionkit.TypeElementModQ,
		electionkit.TypeElectionType,
		electionkit.TypeReportingUnitType,
		electionkit.TypeVoteVariationType,
		electionkit.TypeSpecVersion,
		electionkit.TypeBallotBoxState,
		electionkit.TypeProofUsage,
		electionkit.TypeContestErrorType,
	} {
		assert.Contains(t, names, want)
	}
}

func TestRegistryParse(t *testing.T) {
	registry, err := electionkit.DefaultRegistry()
	require.NoError(t, err)

	tests := []struct {
		name     string
		typeName string
		raw      any
		want     any
		wantErr  bool
	}{
		{name: "election type", typeName: electionkit.TypeElectionType, raw: "general", want: electionkit.ElectionTypeGeneral},
		{name: "invalid election type", typeName: electionkit.TypeElectionType, raw: "gubernatorial", wantErr: true},
		{name: "non-string election type", typeName: electionkit.TypeElectionType, raw: 12.0, wantErr: true},
		{name: "spec version", typeName: electionkit.TypeSpecVersion, raw: "v0.95", want: electionkit.SpecVersion0_95},
		{name: "vote variation", typeName: electionkit.TypeVoteVariationType, raw: "n_of_m", want: electionkit.VoteVariationTypeNOfM},
		{name: "reporting unit", typeName: electionkit.TypeReportingUnitType, raw: "polling_place", want: electionkit.ReportingUnitTypePollingPlace},
		{name: "proof usage", typeName: electionkit.TypeProofUsage, raw: "Prove knowledge of secret value", want: electionkit.ProofUsageSecretValue},
		{name: "contest error", typeName: electionkit.TypeContestErrorType, raw: "overvote", want: electionkit.ContestErrorTypeOverVote},
		{name: "ballot box state", typeName: electionkit.TypeBallotBoxState, raw: 2.0, want: electionkit.BallotBoxStateSpoiled},
		{name: "invalid ballot box state", typeName: electionkit.TypeBallotBoxState, raw: 17.0, wantErr: true},
		{name: "big integer", typeName: electionkit.TypeBigInteger, raw: "0aff", want: electionkit.BigInteger("0AFF")},
		{name: "element mod p", typeName: electionkit.TypeElementModP, raw: "1234", want: electionkit.ElementModP("1234")},
		{name: "element mod q", typeName: electionkit.TypeElementModQ, raw: "ab", want: electionkit.ElementModQ("AB")},
		{name: "unregistered type", typeName: "ballot", raw: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Parse(tt.typeName, tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, electionkit.ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryTimestampCodec(t *testing.T) {
	registry, err := electionkit.DefaultRegistry()
	require.NoError(t, err)

	parsed, err := registry.Parse(electionkit.TypeTimestamp, "2026-11-03T08:00:00Z")
	require.NoError(t, err)
	ts, ok := parsed.(electionkit.Timestamp)
	require.True(t, ok)
	assert.True(t, ts.Time.Equal(time.Date(2026, 11, 3, 8, 0, 0, 0, time.UTC)))

	formatted, err := registry.Format(electionkit.TypeTimestamp, ts)
	require.NoError(t, err)
	assert.Equal(t, "2026-11-03T08:00:00Z", formatted)
}

func TestRegistryFormatRejectsWrongType(t *testing.T) {
	registry, err := electionkit.DefaultRegistry()
	require.NoError(t, err)

	_, err = registry.Format(electionkit.TypeElectionType, 42)
	assert.ErrorIs(t, err, electionkit.ErrUnsupportedType)

	formatted, err := registry.Format(electionkit.TypeBallotBoxState, electionkit.BallotBoxStateCast)
	require.NoError(t, err)
	assert.Equal(t, 1, formatted)
}
