// Package models defines the core domain models for splitbill.
//
// # Models
//
//   - Bill: a shared expense with settings (tax %, service %, fixed tip) and a lifecycle status
//   - Item: a claimable line on a bill
//   - Participant: a person splitting the bill; exactly one is the payer
//   - Claim: an equal, undivided co-ownership link between a participant and an item
//   - ParticipantTotal: the calculator's per-participant breakdown
//   - FinalTotal: a ParticipantTotal frozen at finalization
//
// # Lifecycle
//
//	DRAFT --first item--> OPEN --finalize (payer)--> FINALIZED --archive--> ARCHIVED
//
// PENDING is declared for compatibility and is never entered.
//
// # Money
//
// Every monetary field is a decimal.Decimal. Nothing here is float64.
//
// Relationships use ID strings instead of pointers.
package models
