// Package setup implements the steps of the automated election setup
// workflow: input retrieval and validation, the key ceremony, election
// building, and output file generation. The cmd/electionkit setup command
// sequences these steps.
package setup

import (
	"fmt"

	"github.com/hengadev/errsx"
	"go.uber.org/zap"

	"github.com/voteforge/electionkit"
)

// Inputs are the validated inputs to the setup workflow.
type Inputs struct {
	GuardianCount int
	Quorum        int
	Manifest      electionkit.Manifest
	OutDir        string
}

// InputRetrievalStep loads and validates the election inputs.
type InputRetrievalStep struct {
	ser    *electionkit.Serializer
	logger *zap.Logger
}

func NewInputRetrievalStep(ser *electionkit.Serializer, logger *zap.Logger) *InputRetrievalStep {
	return &InputRetrievalStep{ser: ser, logger: logger}
}

// GetInputs loads the manifest and validates every input. Validation
// failures are aggregated so the operator sees all of them at once.
func (s *InputRetrievalStep) GetInputs(guardianCount, quorum int, manifestPath, outDir string) (Inputs, error) {
	var errs errsx.Map

	if guardianCount < 1 {
		errs.Set("guardian count", fmt.Errorf("must be at least 1, got %d", guardianCount))
	}
	if quorum < 1 {
		errs.Set("quorum", fmt.Errorf("must be at least 1, got %d", quorum))
	}
	if quorum > guardianCount {
		errs.Set("quorum", fmt.Errorf("cannot exceed guardian count (%d > %d)", quorum, guardianCount))
	}
	if outDir == "" {
		errs.Set("output directory", fmt.Errorf("must not be empty"))
	}

	var manifest electionkit.Manifest
	if err := s.ser.FromFile(&manifest, manifestPath); err != nil {
		errs.Set("manifest", err)
	} else if err := validateManifest(s.ser.Registry(), manifest); err != nil {
		errs.Set("manifest", err)
	}

	if !errs.IsEmpty() {
		return Inputs{}, errs.AsError()
	}

	s.logger.Info("retrieved election inputs",
		zap.String("election_scope_id", manifest.ElectionScopeID),
		zap.Int("guardian_count", guardianCount),
		zap.Int("quorum", quorum),
	)

	return Inputs{
		GuardianCount: guardianCount,
		Quorum:        quorum,
		Manifest:      manifest,
		OutDir:        outDir,
	}, nil
}

// validateManifest coerces the manifest's enumerated fields through the
// registry so an out-of-set value is reported against its field rather
// than surfacing later in the workflow.
func validateManifest(registry *electionkit.Registry, m electionkit.Manifest) error {
	var errs errsx.Map

	if m.ElectionScopeID == "" {
		errs.Set("election_scope_id", fmt.Errorf("must not be empty"))
	}
	if _, err := registry.Parse(electionkit.TypeSpecVersion, string(m.SpecVersion)); err != nil {
		errs.Set("spec_version", err)
	}
	if _, err := registry.Parse(electionkit.TypeElectionType, string(m.Type)); err != nil {
		errs.Set("type", err)
	}
	if !m.StartDate.IsZero() && !m.EndDate.IsZero() && m.EndDate.Before(m.StartDate.Time) {
		errs.Set("end_date", fmt.Errorf("precedes start_date"))
	}
	for _, unit := range m.GeopoliticalUnits {
		if _, err := registry.Parse(electionkit.TypeReportingUnitType, string(unit.Type)); err != nil {
			errs.Set(fmt.Sprintf("geopolitical unit %q", unit.ObjectID), err)
		}
	}
	for _, contest := range m.Contests {
		if _, err := registry.Parse(electionkit.TypeVoteVariationType, string(contest.VoteVariation)); err != nil {
			errs.Set(fmt.Sprintf("contest %q", contest.ObjectID), err)
		}
	}

	return errs.AsError()
}
