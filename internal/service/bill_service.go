package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitbill/internal/auth"
	"github.com/mmynk/splitbill/internal/calculator"
	"github.com/mmynk/splitbill/internal/middleware"
	"github.com/mmynk/splitbill/internal/models"
	"github.com/mmynk/splitbill/internal/storage"
	"github.com/mmynk/splitbill/pkg/api"
	"github.com/mmynk/splitbill/pkg/api/apiconnect"
)

// DefaultCurrency is used when CreateBill names none.
const DefaultCurrency = "USD"

// BillService implements the Connect BillService.
type BillService struct {
	apiconnect.UnimplementedBillServiceHandler
	store     storage.Store
	tokens    *auth.TokenManager
	compute   ComputeFunc
	finalizer *Finalizer
}

// Option configures a BillService.
type Option func(*BillService)

// WithCompute replaces calculator.ComputeTotals for both provisional totals
// and finalization.
func WithCompute(compute ComputeFunc) Option {
	return func(s *BillService) { s.compute = compute }
}

// WithFinalizeHook registers fn to run after every successful finalization.
func WithFinalizeHook(fn func()) Option {
	return func(s *BillService) { s.finalizer.onFinalized = fn }
}

// NewBillService creates a new BillService with the given storage backend.
func NewBillService(store storage.Store, tokens *auth.TokenManager, opts ...Option) *BillService {
	s := &BillService{
		store:   store,
		tokens:  tokens,
		compute: calculator.ComputeTotals,
	}
	s.finalizer = NewFinalizer(store, nil)
	for _, opt := range opts {
		opt(s)
	}
	s.finalizer.compute = s.compute
	return s
}

// requirePayer fails unless the caller holds the payer token of bill.
func requirePayer(ctx context.Context, bill *models.Bill) error {
	claims := middleware.GetClaims(ctx)
	if claims == nil {
		return auth.ErrMissingToken
	}
	payer := bill.Payer()
	if payer == nil {
		return fmt.Errorf("%w: bill %s has no payer", models.ErrInvariantViolation, bill.ID)
	}
	if !claims.IsPayer(bill.ID) || claims.ParticipantID != payer.ID {
		return fmt.Errorf("%w: only the payer can do this", models.ErrUnauthorized)
	}
	return nil
}

// requireActor fails unless the caller may act for participantID on billID:
// the participant's own token, or the payer's.
func requireActor(ctx context.Context, billID, participantID string) error {
	claims := middleware.GetClaims(ctx)
	if claims == nil {
		return auth.ErrMissingToken
	}
	if claims.Identifies(billID, participantID) || claims.IsPayer(billID) {
		return nil
	}
	return fmt.Errorf("%w: cannot act for participant %s", models.ErrUnauthorized, participantID)
}

// loadForPayer loads a bill and checks the caller is its payer.
func (s *BillService) loadForPayer(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := requirePayer(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// newItem converts a wire item, defaulting quantity to 1 and the total to
// quantity * unit price when only the unit price is given.
func newItem(billID string, in *api.NewItem) models.Item {
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	total := in.TotalPrice
	if total.IsZero() && !in.UnitPrice.IsZero() {
		total = in.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	}
	return models.Item{
		BillID:     billID,
		Name:       strings.TrimSpace(in.Name),
		Quantity:   quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: total,
		Notes:      in.Notes,
	}
}

// CreateBill creates a bill with its payer and returns the payer token.
func (s *BillService) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("CreateBill", "", err)
	}

	currency := strings.ToUpper(req.Msg.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	payerName := strings.TrimSpace(req.Msg.PayerDisplayName)

	bill := &models.Bill{
		Title:             strings.TrimSpace(req.Msg.Title),
		Currency:          currency,
		PayerDisplayName:  payerName,
		TaxPercentage:     req.Msg.TaxPercentage,
		ServicePercentage: req.Msg.ServicePercentage,
		TipAmount:         req.Msg.TipAmount,
		Participants:      []models.Participant{{DisplayName: payerName, IsPayer: true}},
		Items:             make([]models.Item, len(req.Msg.Items)),
	}
	for i, item := range req.Msg.Items {
		bill.Items[i] = newItem("", item)
	}

	// Save to storage (generates IDs, code and CreatedAt)
	if err := s.store.CreateBill(ctx, bill); err != nil {
		return nil, connectError("CreateBill", "", err)
	}

	payer := &bill.Participants[0]
	token, err := s.tokens.Generate(payer)
	if err != nil {
		return nil, connectError("CreateBill", bill.ID, err)
	}

	slog.Info("Bill created", "bill_id", bill.ID, "code", bill.Code, "items", len(bill.Items))
	return connect.NewResponse(&api.CreateBillResponse{
		Bill:       toAPIBill(bill),
		PayerID:    payer.ID,
		PayerToken: token,
	}), nil
}

// GetBill retrieves a bill by ID from storage.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("GetBill", "", err)
	}
	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		return nil, connectError("GetBill", req.Msg.BillID, err)
	}
	return connect.NewResponse(&api.GetBillResponse{Bill: toAPIBill(bill)}), nil
}

// GetBillByCode retrieves a bill by its share code.
func (s *BillService) GetBillByCode(ctx context.Context, req *connect.Request[api.GetBillByCodeRequest]) (*connect.Response[api.GetBillByCodeResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("GetBillByCode", "", err)
	}
	bill, err := s.store.GetBillByCode(ctx, req.Msg.Code)
	if err != nil {
		return nil, connectError("GetBillByCode", "", err)
	}
	return connect.NewResponse(&api.GetBillByCodeResponse{Bill: toAPIBill(bill)}), nil
}

// UpdateBill changes title, tax, service or tip. Payer only.
func (s *BillService) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("UpdateBill", billID, err)
	}
	if _, err := s.loadForPayer(ctx, billID); err != nil {
		return nil, connectError("UpdateBill", billID, err)
	}

	settings := models.BillSettings{
		TaxPercentage:     req.Msg.TaxPercentage,
		ServicePercentage: req.Msg.ServicePercentage,
		TipAmount:         req.Msg.TipAmount,
	}
	if req.Msg.Title != nil {
		title := strings.TrimSpace(*req.Msg.Title)
		settings.Title = &title
	}

	bill, err := s.store.UpdateBillSettings(ctx, billID, settings)
	if err != nil {
		return nil, connectError("UpdateBill", billID, err)
	}
	return connect.NewResponse(&api.UpdateBillResponse{Bill: toAPIBill(bill)}), nil
}

// JoinBill adds a participant and returns their token. A caller that
// already holds a token for the bill is renamed instead.
func (s *BillService) JoinBill(ctx context.Context, req *connect.Request[api.JoinBillRequest]) (*connect.Response[api.JoinBillResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("JoinBill", billID, err)
	}
	displayName := strings.TrimSpace(req.Msg.DisplayName)

	var participant *models.Participant
	if claims := middleware.GetClaims(ctx); claims != nil && claims.BillID == billID {
		p, err := s.store.RenameParticipant(ctx, billID, claims.ParticipantID, displayName)
		if err != nil {
			return nil, connectError("JoinBill", billID, err)
		}
		participant = p
	} else {
		participant = &models.Participant{BillID: billID, DisplayName: displayName}
		if err := s.store.AddParticipant(ctx, participant); err != nil {
			return nil, connectError("JoinBill", billID, err)
		}
		slog.Info("Participant joined", "bill_id", billID, "participant_id", participant.ID)
	}

	token, err := s.tokens.Generate(participant)
	if err != nil {
		return nil, connectError("JoinBill", billID, err)
	}
	return connect.NewResponse(&api.JoinBillResponse{
		Participant: toAPIParticipant(participant),
		Token:       token,
	}), nil
}

// ListParticipants lists a bill's participants in join order.
func (s *BillService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("ListParticipants", "", err)
	}
	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if err != nil {
		return nil, connectError("ListParticipants", req.Msg.BillID, err)
	}
	return connect.NewResponse(&api.ListParticipantsResponse{
		Participants: toAPIParticipants(bill.Participants),
	}), nil
}

// AddItem adds an item. Payer only.
func (s *BillService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("AddItem", billID, err)
	}
	if _, err := s.loadForPayer(ctx, billID); err != nil {
		return nil, connectError("AddItem", billID, err)
	}

	item := newItem(billID, req.Msg.Item)
	if err := s.store.AddItem(ctx, &item); err != nil {
		return nil, connectError("AddItem", billID, err)
	}
	return connect.NewResponse(&api.AddItemResponse{Item: toAPIItem(&item)}), nil
}

// UpdateItem edits an item. Payer only. Claims are kept.
func (s *BillService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("UpdateItem", billID, err)
	}
	bill, err := s.loadForPayer(ctx, billID)
	if err != nil {
		return nil, connectError("UpdateItem", billID, err)
	}
	existing := bill.Item(req.Msg.ItemID)
	if existing == nil {
		err := fmt.Errorf("item %s on bill %s: %w", req.Msg.ItemID, billID, models.ErrNotFound)
		return nil, connectError("UpdateItem", billID, err)
	}

	item := *existing
	if req.Msg.Name != nil {
		item.Name = strings.TrimSpace(*req.Msg.Name)
	}
	if req.Msg.Quantity != nil {
		item.Quantity = *req.Msg.Quantity
	}
	if req.Msg.UnitPrice != nil {
		item.UnitPrice = *req.Msg.UnitPrice
	}
	if req.Msg.TotalPrice != nil {
		item.TotalPrice = *req.Msg.TotalPrice
	}
	if req.Msg.Notes != nil {
		item.Notes = *req.Msg.Notes
	}

	if err := s.store.UpdateItem(ctx, &item); err != nil {
		return nil, connectError("UpdateItem", billID, err)
	}
	return connect.NewResponse(&api.UpdateItemResponse{Item: toAPIItem(&item)}), nil
}

// DeleteItem removes an item and its claims. Payer only.
func (s *BillService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("DeleteItem", billID, err)
	}
	if _, err := s.loadForPayer(ctx, billID); err != nil {
		return nil, connectError("DeleteItem", billID, err)
	}
	if err := s.store.DeleteItem(ctx, billID, req.Msg.ItemID); err != nil {
		return nil, connectError("DeleteItem", billID, err)
	}
	return connect.NewResponse(&api.DeleteItemResponse{}), nil
}

// actingParticipant resolves the participant a claim request is for.
func actingParticipant(ctx context.Context, requested string) string {
	if requested != "" {
		return requested
	}
	return middleware.GetParticipantID(ctx)
}

// ClaimItem records a claim. Claiming twice is a no-op.
func (s *BillService) ClaimItem(ctx context.Context, req *connect.Request[api.ClaimItemRequest]) (*connect.Response[api.ClaimItemResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("ClaimItem", billID, err)
	}
	participantID := actingParticipant(ctx, req.Msg.ParticipantID)
	if err := requireActor(ctx, billID, participantID); err != nil {
		return nil, connectError("ClaimItem", billID, err)
	}

	created, err := s.store.AddClaim(ctx, &models.Claim{
		BillID:        billID,
		ItemID:        req.Msg.ItemID,
		ParticipantID: participantID,
	})
	if err != nil {
		return nil, connectError("ClaimItem", billID, err)
	}

	item, err := s.reloadItem(ctx, billID, req.Msg.ItemID)
	if err != nil {
		return nil, connectError("ClaimItem", billID, err)
	}
	return connect.NewResponse(&api.ClaimItemResponse{Created: created, Item: item}), nil
}

// UnclaimItem removes a claim. Removing a missing claim succeeds.
func (s *BillService) UnclaimItem(ctx context.Context, req *connect.Request[api.UnclaimItemRequest]) (*connect.Response[api.UnclaimItemResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("UnclaimItem", billID, err)
	}
	participantID := actingParticipant(ctx, req.Msg.ParticipantID)
	if err := requireActor(ctx, billID, participantID); err != nil {
		return nil, connectError("UnclaimItem", billID, err)
	}

	if err := s.store.RemoveClaim(ctx, billID, req.Msg.ItemID, participantID); err != nil {
		return nil, connectError("UnclaimItem", billID, err)
	}

	item, err := s.reloadItem(ctx, billID, req.Msg.ItemID)
	if err != nil {
		return nil, connectError("UnclaimItem", billID, err)
	}
	return connect.NewResponse(&api.UnclaimItemResponse{Item: item}), nil
}

func (s *BillService) reloadItem(ctx context.Context, billID, itemID string) (*api.Item, error) {
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	item := bill.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("item %s on bill %s: %w", itemID, billID, models.ErrNotFound)
	}
	return toAPIItem(item), nil
}

// GetTotals returns provisional totals for an open bill and the frozen
// totals once it is finalized. A frozen bill is never recomputed.
func (s *BillService) GetTotals(ctx context.Context, req *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("GetTotals", billID, err)
	}
	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, connectError("GetTotals", billID, err)
	}

	var totals []models.ParticipantTotal
	final := bill.Status.Frozen()
	if final {
		frozen, err := s.store.GetFinalTotals(ctx, billID)
		if err != nil {
			return nil, connectError("GetTotals", billID, err)
		}
		totals = participantTotals(frozen)
	} else {
		totals, err = s.compute(bill)
		if err != nil {
			return nil, connectError("GetTotals", billID, err)
		}
	}

	summary := calculator.Summarize(totals)
	resp := &api.GetTotalsResponse{
		IsFinal:       final,
		Totals:        toAPITotals(totals),
		Subtotal:      summary.Subtotal,
		TaxAmount:     summary.TaxAmount,
		ServiceAmount: summary.ServiceAmount,
		TipAmount:     summary.TipAmount,
		GrandTotal:    summary.Total,
		Transfers:     []*api.Transfer{},
	}
	if payer := bill.Payer(); payer != nil {
		resp.Transfers = toAPITransfers(calculator.TransfersToPayer(totals, payer.ID))
	}
	return connect.NewResponse(resp), nil
}

// FinalizeBill freezes the bill's totals. Payer only, exactly once.
func (s *BillService) FinalizeBill(ctx context.Context, req *connect.Request[api.FinalizeBillRequest]) (*connect.Response[api.FinalizeBillResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("FinalizeBill", billID, err)
	}
	if _, err := s.loadForPayer(ctx, billID); err != nil {
		return nil, connectError("FinalizeBill", billID, err)
	}

	fin, err := s.finalizer.Finalize(ctx, billID)
	if err != nil {
		return nil, connectError("FinalizeBill", billID, err)
	}

	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, connectError("FinalizeBill", billID, err)
	}
	return connect.NewResponse(&api.FinalizeBillResponse{
		Bill:   toAPIBill(bill),
		Totals: toAPITotals(participantTotals(fin.Totals)),
	}), nil
}

// GetFinalTotals returns the frozen totals. It fails before finalization.
func (s *BillService) GetFinalTotals(ctx context.Context, req *connect.Request[api.GetFinalTotalsRequest]) (*connect.Response[api.GetFinalTotalsResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("GetFinalTotals", billID, err)
	}
	totals, err := s.store.GetFinalTotals(ctx, billID)
	if err != nil {
		return nil, connectError("GetFinalTotals", billID, err)
	}

	resp := &api.GetFinalTotalsResponse{Totals: toAPITotals(participantTotals(totals))}
	if len(totals) > 0 {
		resp.FinalizedAt = totals[0].CreatedAt
	}
	return connect.NewResponse(resp), nil
}

// ArchiveBill moves a finalized bill to ARCHIVED. Payer only.
func (s *BillService) ArchiveBill(ctx context.Context, req *connect.Request[api.ArchiveBillRequest]) (*connect.Response[api.ArchiveBillResponse], error) {
	billID := req.Msg.BillID
	if err := validateRequest(req.Msg); err != nil {
		return nil, connectError("ArchiveBill", billID, err)
	}
	if _, err := s.loadForPayer(ctx, billID); err != nil {
		return nil, connectError("ArchiveBill", billID, err)
	}
	if err := s.store.ArchiveBill(ctx, billID); err != nil {
		return nil, connectError("ArchiveBill", billID, err)
	}

	bill, err := s.store.GetBill(ctx, billID)
	if err != nil {
		return nil, connectError("ArchiveBill", billID, err)
	}
	slog.Info("Bill archived", "bill_id", billID)
	return connect.NewResponse(&api.ArchiveBillResponse{Bill: toAPIBill(bill)}), nil
}
