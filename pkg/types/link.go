package types

// LinkKind says how an entry of the configuration root is handled.
type LinkKind string

const (
	// KindFile links a single file; an existing non-link destination is an error.
	KindFile LinkKind = "file"

	// KindDirectory links a directory only when the destination is absent.
	KindDirectory LinkKind = "directory"

	// KindIgnore entries are never touched.
	KindIgnore LinkKind = "ignore"
)

// Mapping is one row of the mapping table.
type Mapping struct {
	Kind LinkKind

	// Destination is relative to the home directory. Empty for KindIgnore.
	Destination string
}

// LinkOutcome is what happened to a single entry during a run.
type LinkOutcome string

const (
	OutcomeCreated       LinkOutcome = "created"
	OutcomeAlreadyLinked LinkOutcome = "already-linked"
	OutcomeIgnored       LinkOutcome = "ignored"

	// OutcomePlanned is reported instead of OutcomeCreated in dry-run mode
	OutcomePlanned LinkOutcome = "planned"
)

// LinkResult records the handling of one entry.
type LinkResult struct {
	Entry       string
	Source      string
	Destination string
	Kind        LinkKind
	Outcome     LinkOutcome
}
