// Package core has the extraction pipeline that turns dataset history into price series.
package core

import "fmt"

// RepositoryAccessError indicates that the repository path is invalid or its
// history cannot be read. This is the only fatal error class of a run.
type RepositoryAccessError struct {
	Path string
	Err  error
}

func (e *RepositoryAccessError) Error() string {
	return fmt.Sprintf("cannot read repository history at %s: %v", e.Path, e.Err)
}

func (e *RepositoryAccessError) Unwrap() error { return e.Err }

// SnapshotParseError indicates that one snapshot's content was entirely
// unparseable. The snapshot is dropped from the walk and the run continues.
type SnapshotParseError struct {
	Hash string
	Err  error
}

func (e *SnapshotParseError) Error() string {
	return fmt.Sprintf("snapshot %.7s is unparseable: %v", e.Hash, e.Err)
}

func (e *SnapshotParseError) Unwrap() error { return e.Err }
