package store

import "errors"

var (
	// ErrIncompleteSession is returned by Save when the given session holds
	// only one of user/token. Persisting a partial pair would break the
	// store's both-or-neither invariant.
	ErrIncompleteSession = errors.New("refusing to persist incomplete session")
)
