package models

import "github.com/shopspring/decimal"

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	// StatusDraft is a bill that has no items yet.
	StatusDraft BillStatus = "DRAFT"

	// StatusOpen is a bill with at least one item that still accepts claims and edits.
	StatusOpen BillStatus = "OPEN"

	// StatusPending is reserved. No transition reaches or leaves it.
	StatusPending BillStatus = "PENDING"

	// StatusFinalized is a bill whose totals have been frozen.
	StatusFinalized BillStatus = "FINALIZED"

	// StatusArchived is terminal. Final totals remain readable.
	StatusArchived BillStatus = "ARCHIVED"
)

// Mutable reports whether items, claims, participants and settings may change.
func (s BillStatus) Mutable() bool {
	return s == StatusDraft || s == StatusOpen
}

// Frozen reports whether the bill has final totals that must be read instead
// of recomputed.
func (s BillStatus) Frozen() bool {
	return s == StatusFinalized || s == StatusArchived
}

// Valid reports whether s is one of the declared statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusPending, StatusFinalized, StatusArchived:
		return true
	}
	return false
}

// Bill is a shared expense split among participants who claim its items.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Code is the short share code participants use to find the bill.
	Code string

	// Title is the human-readable name for the bill.
	Title string

	// Currency is informational only. All amounts on a bill share it.
	Currency string

	// PayerDisplayName is the name the payer gave when creating the bill.
	PayerDisplayName string

	// TaxPercentage is applied to the bill subtotal (0-100).
	TaxPercentage decimal.Decimal

	// ServicePercentage is applied to the bill subtotal (0-100).
	ServicePercentage decimal.Decimal

	// TipAmount is a fixed amount apportioned by subtotal share.
	TipAmount decimal.Decimal

	Status BillStatus

	// TotalAmount, TaxAmount and ServiceAmount are filled in at finalization.
	TotalAmount   decimal.Decimal
	TaxAmount     decimal.Decimal
	ServiceAmount decimal.Decimal

	// CreatedAt is the Unix timestamp when the bill was created.
	CreatedAt int64

	// FinalizedAt is the Unix timestamp of finalization, 0 until then.
	FinalizedAt int64

	// Items are the line items on the bill, in insertion order.
	Items []Item

	// Participants are listed in join order. The payer joins first.
	Participants []Participant
}

// Payer returns the participant flagged as payer, or nil if there is none.
func (b *Bill) Payer() *Participant {
	for i := range b.Participants {
		if b.Participants[i].IsPayer {
			return &b.Participants[i]
		}
	}
	return nil
}

// Participant returns the participant with the given ID, or nil.
func (b *Bill) Participant(id string) *Participant {
	for i := range b.Participants {
		if b.Participants[i].ID == id {
			return &b.Participants[i]
		}
	}
	return nil
}

// Item returns the item with the given ID, or nil.
func (b *Bill) Item(id string) *Item {
	for i := range b.Items {
		if b.Items[i].ID == id {
			return &b.Items[i]
		}
	}
	return nil
}

// BillSettings holds the payer-editable fields of a bill. Nil fields are left unchanged.
type BillSettings struct {
	Title             *string
	TaxPercentage     *decimal.Decimal
	ServicePercentage *decimal.Decimal
	TipAmount         *decimal.Decimal
}

// Item is a single line on a bill.
// Quantity, UnitPrice and TotalPrice are stored independently; TotalPrice is
// what gets split.
type Item struct {
	ID     string
	BillID string

	// Name is the description of the item (e.g., "Pizza", "Beer").
	Name string

	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Notes      string

	CreatedAt int64

	// ClaimedBy lists the IDs of participants who claimed this item.
	// Every claimant owns an equal share of TotalPrice.
	ClaimedBy []string
}

// Participant is a person splitting a bill.
type Participant struct {
	ID          string
	BillID      string
	DisplayName string

	// IsPayer marks the bill creator. Exactly one participant per bill has it.
	IsPayer bool

	JoinedAt int64
}

// Claim links one participant to one item.
type Claim struct {
	BillID        string
	ItemID        string
	ParticipantID string
	CreatedAt     int64
}

// ParticipantTotal is one participant's computed share of a bill.
type ParticipantTotal struct {
	ParticipantID string
	DisplayName   string
	Subtotal      decimal.Decimal
	TaxShare      decimal.Decimal
	ServiceShare  decimal.Decimal
	TipShare      decimal.Decimal
	Total         decimal.Decimal
}

// FinalTotal is a ParticipantTotal frozen at finalization.
type FinalTotal struct {
	BillID string
	ParticipantTotal
	CreatedAt int64
}

// Finalization is everything written when a bill is finalized.
type Finalization struct {
	FinalizedAt   int64
	TotalAmount   decimal.Decimal
	TaxAmount     decimal.Decimal
	ServiceAmount decimal.Decimal
	Totals        []FinalTotal
}
