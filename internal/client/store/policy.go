package store

// Policy decides how a store reconciles after a nested-child mutation
// succeeds.
type Policy int

const (
	// PatchLocal edits the parent's child slice in place.
	PatchLocal Policy = iota
	// ReplaceParent swaps the selected parent with the one the server returned.
	ReplaceParent
	// RefetchParent reloads the parent when it is the selection.
	RefetchParent
	// RefetchAll reloads the whole list, then the parent when it is the
	// selection.
	RefetchAll
)

func (p Policy) String() string {
	switch p {
	case PatchLocal:
		return "patch_local"
	case ReplaceParent:
		return "replace_parent"
	case RefetchParent:
		return "refetch_parent"
	case RefetchAll:
		return "refetch_all"
	}
	return "unknown"
}

// Policies is the reconciliation rule for every nested-child operation.
var Policies = map[Operation]Policy{
	OpAddContinueOption:    PatchLocal,
	OpUpdateContinueOption: PatchLocal,
	OpDeleteContinueOption: PatchLocal,

	OpAddHobby:    PatchLocal,
	OpDeleteHobby: PatchLocal,
	OpAddNote:     PatchLocal,
	OpUpdateNote:  PatchLocal,
	OpDeleteNote:  PatchLocal,

	OpAddLanguage:    RefetchParent,
	OpUpdateLanguage: ReplaceParent,
	OpDeleteLanguage: RefetchAll,
	OpAddFormat:      ReplaceParent,
	OpDeleteFormat:   ReplaceParent,
	OpDeleteContent:  RefetchParent,
}

// PolicyFor returns the policy for op. Operations missing from the table
// patch locally.
func PolicyFor(op Operation) Policy {
	if p, ok := Policies[op]; ok {
		return p
	}
	return PatchLocal
}
