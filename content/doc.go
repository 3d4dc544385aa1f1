// Package content implements the pure, immutable model behind a tagged text
// input: an ordered sequence of text and tag segments, the palette of tags
// still available for insertion, and the pending text typed since the last
// tag.
//
// State values are never mutated in place. Apply folds one Command into a
// State and returns the next snapshot.
//
// Caret columns are 0-based grapheme-cluster indices into the pending text.
package content
