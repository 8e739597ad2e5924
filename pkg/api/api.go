// Package api defines the wire messages of the splitbill.v1 BillService.
//
// Messages are plain Go structs carried by connect with the JSON codec in
// codec.go. Money fields are decimal.Decimal and marshal as JSON strings
// ("12.50"); numbers are accepted on input.
package api

import "github.com/shopspring/decimal"

// Bill is the wire form of a bill snapshot.
type Bill struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	Title             string          `json:"title"`
	Currency          string          `json:"currency"`
	PayerDisplayName  string          `json:"payer_display_name"`
	TaxPercentage     decimal.Decimal `json:"tax_percentage"`
	ServicePercentage decimal.Decimal `json:"service_percentage"`
	TipAmount         decimal.Decimal `json:"tip_amount"`
	Status            string          `json:"status"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	ServiceAmount     decimal.Decimal `json:"service_amount"`
	CreatedAt         int64           `json:"created_at"`
	FinalizedAt       int64           `json:"finalized_at,omitempty"`
	Items             []*Item         `json:"items"`
	Participants      []*Participant  `json:"participants"`
}

// Item is a line on a bill. ClaimedBy lists participant IDs.
type Item struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Notes      string          `json:"notes,omitempty"`
	ClaimedBy  []string        `json:"claimed_by"`
}

// Participant is a person on a bill.
type Participant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsPayer     bool   `json:"is_payer"`
	JoinedAt    int64  `json:"joined_at"`
}

// ParticipantTotal is one participant's share, provisional or final.
type ParticipantTotal struct {
	ParticipantID string          `json:"participant_id"`
	DisplayName   string          `json:"display_name"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxShare      decimal.Decimal `json:"tax_share"`
	ServiceShare  decimal.Decimal `json:"service_share"`
	TipShare      decimal.Decimal `json:"tip_share"`
	Total         decimal.Decimal `json:"total"`
}

// Transfer is what one participant owes another, rounded to cents.
type Transfer struct {
	FromParticipantID string          `json:"from_participant_id"`
	ToParticipantID   string          `json:"to_participant_id"`
	Amount            decimal.Decimal `json:"amount"`
}

// NewItem describes an item to add. Quantity defaults to 1.
type NewItem struct {
	Name       string          `json:"name" validate:"required,max=200"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	UnitPrice  decimal.Decimal `json:"unit_price" validate:"nonnegative_decimal"`
	TotalPrice decimal.Decimal `json:"total_price" validate:"nonnegative_decimal"`
	Notes      string          `json:"notes,omitempty" validate:"max=1000"`
}

type CreateBillRequest struct {
	Title             string          `json:"title" validate:"max=200"`
	Currency          string          `json:"currency" validate:"omitempty,len=3,alpha"`
	PayerDisplayName  string          `json:"payer_display_name" validate:"required,max=200"`
	TaxPercentage     decimal.Decimal `json:"tax_percentage" validate:"percent_decimal"`
	ServicePercentage decimal.Decimal `json:"service_percentage" validate:"percent_decimal"`
	TipAmount         decimal.Decimal `json:"tip_amount" validate:"nonnegative_decimal"`
	Items             []*NewItem      `json:"items" validate:"dive,required"`
}

// CreateBillResponse carries the payer's capability token. It is the only
// time the payer token is issued.
type CreateBillResponse struct {
	Bill       *Bill  `json:"bill"`
	PayerID    string `json:"payer_id"`
	PayerToken string `json:"payer_token"`
}

type GetBillRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *GetBillRequest) GetBillID() string { return r.BillID }

type GetBillResponse struct {
	Bill *Bill `json:"bill"`
}

type GetBillByCodeRequest struct {
	Code string `json:"code" validate:"required,max=16"`
}

type GetBillByCodeResponse struct {
	Bill *Bill `json:"bill"`
}

// UpdateBillRequest changes the payer-editable settings. Nil fields are left unchanged.
type UpdateBillRequest struct {
	BillID            string           `json:"bill_id" validate:"required"`
	Title             *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	TaxPercentage     *decimal.Decimal `json:"tax_percentage,omitempty" validate:"omitempty,percent_decimal"`
	ServicePercentage *decimal.Decimal `json:"service_percentage,omitempty" validate:"omitempty,percent_decimal"`
	TipAmount         *decimal.Decimal `json:"tip_amount,omitempty" validate:"omitempty,nonnegative_decimal"`
}

func (r *UpdateBillRequest) GetBillID() string { return r.BillID }

type UpdateBillResponse struct {
	Bill *Bill `json:"bill"`
}

// JoinBillRequest adds the caller to a bill. A caller presenting a token for
// this bill is renamed instead of added twice.
type JoinBillRequest struct {
	BillID      string `json:"bill_id" validate:"required"`
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

func (r *JoinBillRequest) GetBillID() string { return r.BillID }

type JoinBillResponse struct {
	Participant *Participant `json:"participant"`
	Token       string       `json:"token"`
}

type ListParticipantsRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *ListParticipantsRequest) GetBillID() string { return r.BillID }

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type AddItemRequest struct {
	BillID string   `json:"bill_id" validate:"required"`
	Item   *NewItem `json:"item" validate:"required"`
}

func (r *AddItemRequest) GetBillID() string { return r.BillID }

type AddItemResponse struct {
	Item *Item `json:"item"`
}

// UpdateItemRequest edits an item. Nil fields are left unchanged.
type UpdateItemRequest struct {
	BillID     string           `json:"bill_id" validate:"required"`
	ItemID     string           `json:"item_id" validate:"required"`
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Quantity   *int             `json:"quantity,omitempty" validate:"omitempty,gte=1"`
	UnitPrice  *decimal.Decimal `json:"unit_price,omitempty" validate:"omitempty,nonnegative_decimal"`
	TotalPrice *decimal.Decimal `json:"total_price,omitempty" validate:"omitempty,nonnegative_decimal"`
	Notes      *string          `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateItemRequest) GetBillID() string { return r.BillID }

type UpdateItemResponse struct {
	Item *Item `json:"item"`
}

type DeleteItemRequest struct {
	BillID string `json:"bill_id" validate:"required"`
	ItemID string `json:"item_id" validate:"required"`
}

func (r *DeleteItemRequest) GetBillID() string { return r.BillID }

type DeleteItemResponse struct{}

// ClaimItemRequest claims an item for a participant. ParticipantID defaults
// to the caller's own participant.
type ClaimItemRequest struct {
	BillID        string `json:"bill_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
	ParticipantID string `json:"participant_id,omitempty"`
}

func (r *ClaimItemRequest) GetBillID() string { return r.BillID }

type ClaimItemResponse struct {
	// Created is false when the claim already existed.
	Created bool  `json:"created"`
	Item    *Item `json:"item"`
}

type UnclaimItemRequest struct {
	BillID        string `json:"bill_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
	ParticipantID string `json:"participant_id,omitempty"`
}

func (r *UnclaimItemRequest) GetBillID() string { return r.BillID }

type UnclaimItemResponse struct {
	Item *Item `json:"item"`
}

type GetTotalsRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *GetTotalsRequest) GetBillID() string { return r.BillID }

// GetTotalsResponse is provisional while the bill is open and final
// (IsFinal) once it has been finalized.
type GetTotalsResponse struct {
	IsFinal       bool                `json:"is_final"`
	Totals        []*ParticipantTotal `json:"totals"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	TaxAmount     decimal.Decimal     `json:"tax_amount"`
	ServiceAmount decimal.Decimal     `json:"service_amount"`
	TipAmount     decimal.Decimal     `json:"tip_amount"`
	GrandTotal    decimal.Decimal     `json:"grand_total"`
	Transfers     []*Transfer         `json:"transfers"`
}

type FinalizeBillRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *FinalizeBillRequest) GetBillID() string { return r.BillID }

type FinalizeBillResponse struct {
	Bill   *Bill               `json:"bill"`
	Totals []*ParticipantTotal `json:"totals"`
}

type GetFinalTotalsRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *GetFinalTotalsRequest) GetBillID() string { return r.BillID }

type GetFinalTotalsResponse struct {
	FinalizedAt int64               `json:"finalized_at"`
	Totals      []*ParticipantTotal `json:"totals"`
}

type ArchiveBillRequest struct {
	BillID string `json:"bill_id" validate:"required"`
}

func (r *ArchiveBillRequest) GetBillID() string { return r.BillID }

type ArchiveBillResponse struct {
	Bill *Bill `json:"bill"`
}
