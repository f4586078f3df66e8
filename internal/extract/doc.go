// Package extract rebuilds typed team records from championat.com table markup.
//
// The source pages carry no schema: table cells have no stable identifiers, so
// record boundaries come from fixed cell counts (see Chunker) and field types
// from regular-expression shapes. An Extractor loads the team catalog once,
// then for every requested team walks the results, roster, player-statistics
// and team-statistics documents in that order, filling one isolated working
// record per team.
//
// Player statistics are joined to the roster by jersey number, or by the
// (first name, last name) pair when the number is missing. Statistics that
// cannot be joined, incomplete trailing records and similar leftovers are kept
// on the team as DroppedRecord values instead of raising errors.
package extract
