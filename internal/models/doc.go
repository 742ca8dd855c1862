// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - Member: a person identified by a case-insensitive name key
//   - Expense: an immutable record of one payer covering a cost shared by participants
//   - MemberBalance / Balances: a snapshot of net positions, recomputed on demand
//   - Transaction: one debtor-to-creditor payment in a settle-up plan
//
// # Design Principles
//
// 1. **Names are identity**: members are keyed by the trimmed, lower-cased name;
// the first spelling seen is kept for display
// 2. **No pointers between models**: expenses reference members by key
// 3. **Snapshots, not state**: balances and transactions are values produced
// fresh on every query and never stored
//
// Amounts use github.com/shopspring/decimal. Sub-cent residue from equal splits
// (e.g. 100 / 3) is tolerated; see calculator.DustThreshold.
package models
