// Package queries contains the read side of the application: the list and
// detail projections the screens render. Queries are constructed from the
// acting identity so role checks happen before any network call.
//
// Read failures follow one policy everywhere: a missing token propagates as
// a not-authenticated error, any other failure degrades to an empty result
// and a warning in the log. A flaky network empties a list for one poll
// cycle instead of crashing the screen.
package queries
