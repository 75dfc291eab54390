package domain

// Contract-side proposal constraints, mirrored locally so users get instant
// feedback instead of a guaranteed revert.
const (
	MinProposalDurationDays = 5
	MaxProposalDurationDays = 14
)

// Phase identifies how far a two-phase action got before it resolved.
type Phase string

const (
	// PhasePrecheck covers local validation and advisory replica reads
	PhasePrecheck Phase = "precheck"
	// PhaseChain is the binding on-chain commit
	PhaseChain Phase = "chain"
	// PhaseReplica is the best-effort replica commit
	PhaseReplica Phase = "replica"
)

// Outcome is the closed set of results a coordinator action can produce.
// Callers must handle ReplicaDegraded distinctly from hard failure: the
// chain action is final even though the local index missed it.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeValidationFailed Outcome = "validation_failed"
	OutcomeChainFailed      Outcome = "chain_failed"
	OutcomeReplicaDegraded  Outcome = "replica_degraded"
)

// ActionResult describes how a create/vote/execute action resolved.
type ActionResult struct {
	Outcome    Outcome
	Phase      Phase
	ProposalID uint64
	TxHash     string
	Err        error
}

// Binding reports whether the on-chain side of the action committed.
// Both plain success and degraded success are binding.
func (r ActionResult) Binding() bool {
	return r.Outcome == OutcomeSuccess || r.Outcome == OutcomeReplicaDegraded
}

// Failed reports whether nothing was persisted anywhere.
func (r ActionResult) Failed() bool {
	return r.Outcome == OutcomeValidationFailed || r.Outcome == OutcomeChainFailed
}

func ValidationFailed(err error) ActionResult {
	return ActionResult{Outcome: OutcomeValidationFailed, Phase: PhasePrecheck, Err: err}
}

func ChainFailed(err error) ActionResult {
	return ActionResult{Outcome: OutcomeChainFailed, Phase: PhaseChain, Err: err}
}

func ReplicaDegraded(proposalID uint64, txHash string, err error) ActionResult {
	return ActionResult{
		Outcome:    OutcomeReplicaDegraded,
		Phase:      PhaseReplica,
		ProposalID: proposalID,
		TxHash:     txHash,
		Err:        err,
	}
}

func Succeeded(proposalID uint64, txHash string) ActionResult {
	return ActionResult{
		Outcome:    OutcomeSuccess,
		Phase:      PhaseReplica,
		ProposalID: proposalID,
		TxHash:     txHash,
	}
}
