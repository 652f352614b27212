package novelwriting

import (
	"context"
)

// classID identifies a synonym class of the thesaurus (e.g. "1.5010" in the
// Word List by Semantic Principles). It never leaves this package.
type classID string

// synonymSource is the two-query contract the resolver needs from a store.
type synonymSource interface {
	// classOf resolves an exact (caption, reading) pair to its class.
	// An empty reading matches on the caption alone.
	classOf(ctx context.Context, caption, reading string) (classID, bool, error)
	// membersOf returns every entry sharing the class, in store order.
	membersOf(ctx context.Context, id classID) ([]ThesaurusEntry, error)
}

// lookupSynonyms is the two-stage thesaurus query: normalize the reading,
// resolve the (caption, reading) pair to a synonym class, then expand the
// class to all its entries. A word absent from the dictionary yields an empty
// result and a nil error; store errors are returned as is.
func lookupSynonyms(ctx context.Context, src synonymSource, caption, reading string) ([]ThesaurusEntry, error) {
	reading = NormalizeReading(reading)

	id, found, err := src.classOf(ctx, caption, reading)
	if err != nil {
		return nil, err
	}
	if !found {
		return []ThesaurusEntry{}, nil
	}
	return src.membersOf(ctx, id)
}
