// Package report defines the value records produced by parsing a
// tournament report page: tournament metadata, per-section player
// rosters, and per-round results.
//
// All types are plain immutable values constructed once per parse and
// handed upward; JSON field names match the report interchange format
// consumed by the storage layer. The package also provides the two
// identity helpers the storage layer relies on: PlayerKey (external ID
// normalization) and DecodeRoundCode (outcome/opponent extraction from
// raw round codes).
package report
