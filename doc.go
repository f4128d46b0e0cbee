// Package fintrack implements a single-user personal finance ledger. It is
// designed to be local-first and auditable: the full history of income and
// expense entries lives in a single human-readable JSON file under the
// user's control.
//
// The core functionalities include:
//   - Transaction: an immutable ledger entry whose total amount is derived
//     from a unit price and a quantity, with a signed contribution to the
//     running balance.
//   - Codec: encoding entries to the canonical persisted record, and
//     decoding records back, tolerating the legacy shapes older versions of
//     the file used.
//   - Store: the sole owner of the ordered entry sequence; it loads the
//     backing file at startup, validates and appends new entries, rewrites
//     the file whole, and derives the running balance.
//   - Convert: pure currency conversion over a table of exchange rates.
//
// This package serves as the foundational logic for the `pft` command-line
// tool; subpackages provide exchange rates (erapi), a daily quote
// (zenquotes), markdown rendering (renderer), embedded documentation (docs)
// and an AI assistant (agent).
package fintrack
