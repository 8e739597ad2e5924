// Package apiconnect wires the splitbill.v1.BillService messages to connect.
//
// It follows the layout of protoc-gen-connect-go output, with the api.Codec
// JSON codec standing in for protobuf.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitbill/pkg/api"
)

// BillServiceName is the fully-qualified name of the BillService service.
const BillServiceName = "splitbill.v1.BillService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	// BillServiceCreateBillProcedure is the fully-qualified name of the BillService's CreateBill RPC.
	BillServiceCreateBillProcedure = "/splitbill.v1.BillService/CreateBill"
	// BillServiceGetBillProcedure is the fully-qualified name of the BillService's GetBill RPC.
	BillServiceGetBillProcedure = "/splitbill.v1.BillService/GetBill"
	// BillServiceGetBillByCodeProcedure is the fully-qualified name of the BillService's GetBillByCode RPC.
	BillServiceGetBillByCodeProcedure = "/splitbill.v1.BillService/GetBillByCode"
	// BillServiceUpdateBillProcedure is the fully-qualified name of the BillService's UpdateBill RPC.
	BillServiceUpdateBillProcedure = "/splitbill.v1.BillService/UpdateBill"
	// BillServiceJoinBillProcedure is the fully-qualified name of the BillService's JoinBill RPC.
	BillServiceJoinBillProcedure = "/splitbill.v1.BillService/JoinBill"
	// BillServiceListParticipantsProcedure is the fully-qualified name of the BillService's ListParticipants RPC.
	BillServiceListParticipantsProcedure = "/splitbill.v1.BillService/ListParticipants"
	// BillServiceAddItemProcedure is the fully-qualified name of the BillService's AddItem RPC.
	BillServiceAddItemProcedure = "/splitbill.v1.BillService/AddItem"
	// BillServiceUpdateItemProcedure is the fully-qualified name of the BillService's UpdateItem RPC.
	BillServiceUpdateItemProcedure = "/splitbill.v1.BillService/UpdateItem"
	// BillServiceDeleteItemProcedure is the fully-qualified name of the BillService's DeleteItem RPC.
	BillServiceDeleteItemProcedure = "/splitbill.v1.BillService/DeleteItem"
	// BillServiceClaimItemProcedure is the fully-qualified name of the BillService's ClaimItem RPC.
	BillServiceClaimItemProcedure = "/splitbill.v1.BillService/ClaimItem"
	// BillServiceUnclaimItemProcedure is the fully-qualified name of the BillService's UnclaimItem RPC.
	BillServiceUnclaimItemProcedure = "/splitbill.v1.BillService/UnclaimItem"
	// BillServiceGetTotalsProcedure is the fully-qualified name of the BillService's GetTotals RPC.
	BillServiceGetTotalsProcedure = "/splitbill.v1.BillService/GetTotals"
	// BillServiceFinalizeBillProcedure is the fully-qualified name of the BillService's FinalizeBill RPC.
	BillServiceFinalizeBillProcedure = "/splitbill.v1.BillService/FinalizeBill"
	// BillServiceGetFinalTotalsProcedure is the fully-qualified name of the BillService's GetFinalTotals RPC.
	BillServiceGetFinalTotalsProcedure = "/splitbill.v1.BillService/GetFinalTotals"
	// BillServiceArchiveBillProcedure is the fully-qualified name of the BillService's ArchiveBill RPC.
	BillServiceArchiveBillProcedure = "/splitbill.v1.BillService/ArchiveBill"
)

// BillServiceClient is a client for the splitbill.v1.BillService service.
type BillServiceClient interface {
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	GetBillByCode(context.Context, *connect.Request[api.GetBillByCodeRequest]) (*connect.Response[api.GetBillByCodeResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	JoinBill(context.Context, *connect.Request[api.JoinBillRequest]) (*connect.Response[api.JoinBillResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ClaimItem(context.Context, *connect.Request[api.ClaimItemRequest]) (*connect.Response[api.ClaimItemResponse], error)
	UnclaimItem(context.Context, *connect.Request[api.UnclaimItemRequest]) (*connect.Response[api.UnclaimItemResponse], error)
	GetTotals(context.Context, *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error)
	FinalizeBill(context.Context, *connect.Request[api.FinalizeBillRequest]) (*connect.Response[api.FinalizeBillResponse], error)
	GetFinalTotals(context.Context, *connect.Request[api.GetFinalTotalsRequest]) (*connect.Response[api.GetFinalTotalsResponse], error)
	ArchiveBill(context.Context, *connect.Request[api.ArchiveBillRequest]) (*connect.Response[api.ArchiveBillResponse], error)
}

// NewBillServiceClient constructs a client for the splitbill.v1.BillService service. The
// JSON codec is always installed; further options are applied after it.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
	return &billServiceClient{
		createBill: connect.NewClient[api.CreateBillRequest, api.CreateBillResponse](
			httpClient,
			baseURL+BillServiceCreateBillProcedure,
			opts...,
		),
		getBill: connect.NewClient[api.GetBillRequest, api.GetBillResponse](
			httpClient,
			baseURL+BillServiceGetBillProcedure,
			opts...,
		),
		getBillByCode: connect.NewClient[api.GetBillByCodeRequest, api.GetBillByCodeResponse](
			httpClient,
			baseURL+BillServiceGetBillByCodeProcedure,
			opts...,
		),
		updateBill: connect.NewClient[api.UpdateBillRequest, api.UpdateBillResponse](
			httpClient,
			baseURL+BillServiceUpdateBillProcedure,
			opts...,
		),
		joinBill: connect.NewClient[api.JoinBillRequest, api.JoinBillResponse](
			httpClient,
			baseURL+BillServiceJoinBillProcedure,
			opts...,
		),
		listParticipants: connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](
			httpClient,
			baseURL+BillServiceListParticipantsProcedure,
			opts...,
		),
		addItem: connect.NewClient[api.AddItemRequest, api.AddItemResponse](
			httpClient,
			baseURL+BillServiceAddItemProcedure,
			opts...,
		),
		updateItem: connect.NewClient[api.UpdateItemRequest, api.UpdateItemResponse](
			httpClient,
			baseURL+BillServiceUpdateItemProcedure,
			opts...,
		),
		deleteItem: connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](
			httpClient,
			baseURL+BillServiceDeleteItemProcedure,
			opts...,
		),
		claimItem: connect.NewClient[api.ClaimItemRequest, api.ClaimItemResponse](
			httpClient,
			baseURL+BillServiceClaimItemProcedure,
			opts...,
		),
		unclaimItem: connect.NewClient[api.UnclaimItemRequest, api.UnclaimItemResponse](
			httpClient,
			baseURL+BillServiceUnclaimItemProcedure,
			opts...,
		),
		getTotals: connect.NewClient[api.GetTotalsRequest, api.GetTotalsResponse](
			httpClient,
			baseURL+BillServiceGetTotalsProcedure,
			opts...,
		),
		finalizeBill: connect.NewClient[api.FinalizeBillRequest, api.FinalizeBillResponse](
			httpClient,
			baseURL+BillServiceFinalizeBillProcedure,
			opts...,
		),
		getFinalTotals: connect.NewClient[api.GetFinalTotalsRequest, api.GetFinalTotalsResponse](
			httpClient,
			baseURL+BillServiceGetFinalTotalsProcedure,
			opts...,
		),
		archiveBill: connect.NewClient[api.ArchiveBillRequest, api.ArchiveBillResponse](
			httpClient,
			baseURL+BillServiceArchiveBillProcedure,
			opts...,
		),
	}
}

// billServiceClient implements BillServiceClient.
type billServiceClient struct {
	createBill *connect.Client[api.CreateBillRequest, api.CreateBillResponse]
	getBill *connect.Client[api.GetBillRequest, api.GetBillResponse]
	getBillByCode *connect.Client[api.GetBillByCodeRequest, api.GetBillByCodeResponse]
	updateBill *connect.Client[api.UpdateBillRequest, api.UpdateBillResponse]
	joinBill *connect.Client[api.JoinBillRequest, api.JoinBillResponse]
	listParticipants *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	addItem *connect.Client[api.AddItemRequest, api.AddItemResponse]
	updateItem *connect.Client[api.UpdateItemRequest, api.UpdateItemResponse]
	deleteItem *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	claimItem *connect.Client[api.ClaimItemRequest, api.ClaimItemResponse]
	unclaimItem *connect.Client[api.UnclaimItemRequest, api.UnclaimItemResponse]
	getTotals *connect.Client[api.GetTotalsRequest, api.GetTotalsResponse]
	finalizeBill *connect.Client[api.FinalizeBillRequest, api.FinalizeBillResponse]
	getFinalTotals *connect.Client[api.GetFinalTotalsRequest, api.GetFinalTotalsResponse]
	archiveBill *connect.Client[api.ArchiveBillRequest, api.ArchiveBillResponse]
}

// CreateBill calls splitbill.v1.BillService.CreateBill.
func (c *billServiceClient) CreateBill(ctx context.Context, req *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

// GetBill calls splitbill.v1.BillService.GetBill.
func (c *billServiceClient) GetBill(ctx context.Context, req *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return c.getBill.CallUnary(ctx, req)
}

// GetBillByCode calls splitbill.v1.BillService.GetBillByCode.
func (c *billServiceClient) GetBillByCode(ctx context.Context, req *connect.Request[api.GetBillByCodeRequest]) (*connect.Response[api.GetBillByCodeResponse], error) {
	return c.getBillByCode.CallUnary(ctx, req)
}

// UpdateBill calls splitbill.v1.BillService.UpdateBill.
func (c *billServiceClient) UpdateBill(ctx context.Context, req *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

// JoinBill calls splitbill.v1.BillService.JoinBill.
func (c *billServiceClient) JoinBill(ctx context.Context, req *connect.Request[api.JoinBillRequest]) (*connect.Response[api.JoinBillResponse], error) {
	return c.joinBill.CallUnary(ctx, req)
}

// ListParticipants calls splitbill.v1.BillService.ListParticipants.
func (c *billServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

// AddItem calls splitbill.v1.BillService.AddItem.
func (c *billServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return c.addItem.CallUnary(ctx, req)
}

// UpdateItem calls splitbill.v1.BillService.UpdateItem.
func (c *billServiceClient) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

// DeleteItem calls splitbill.v1.BillService.DeleteItem.
func (c *billServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

// ClaimItem calls splitbill.v1.BillService.ClaimItem.
func (c *billServiceClient) ClaimItem(ctx context.Context, req *connect.Request[api.ClaimItemRequest]) (*connect.Response[api.ClaimItemResponse], error) {
	return c.claimItem.CallUnary(ctx, req)
}

// UnclaimItem calls splitbill.v1.BillService.UnclaimItem.
func (c *billServiceClient) UnclaimItem(ctx context.Context, req *connect.Request[api.UnclaimItemRequest]) (*connect.Response[api.UnclaimItemResponse], error) {
	return c.unclaimItem.CallUnary(ctx, req)
}

// GetTotals calls splitbill.v1.BillService.GetTotals.
func (c *billServiceClient) GetTotals(ctx context.Context, req *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error) {
	return c.getTotals.CallUnary(ctx, req)
}

// FinalizeBill calls splitbill.v1.BillService.FinalizeBill.
func (c *billServiceClient) FinalizeBill(ctx context.Context, req *connect.Request[api.FinalizeBillRequest]) (*connect.Response[api.FinalizeBillResponse], error) {
	return c.finalizeBill.CallUnary(ctx, req)
}

// GetFinalTotals calls splitbill.v1.BillService.GetFinalTotals.
func (c *billServiceClient) GetFinalTotals(ctx context.Context, req *connect.Request[api.GetFinalTotalsRequest]) (*connect.Response[api.GetFinalTotalsResponse], error) {
	return c.getFinalTotals.CallUnary(ctx, req)
}

// ArchiveBill calls splitbill.v1.BillService.ArchiveBill.
func (c *billServiceClient) ArchiveBill(ctx context.Context, req *connect.Request[api.ArchiveBillRequest]) (*connect.Response[api.ArchiveBillResponse], error) {
	return c.archiveBill.CallUnary(ctx, req)
}

// BillServiceHandler is an implementation of the splitbill.v1.BillService service.
type BillServiceHandler interface {
	CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error)
	GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error)
	GetBillByCode(context.Context, *connect.Request[api.GetBillByCodeRequest]) (*connect.Response[api.GetBillByCodeResponse], error)
	UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error)
	JoinBill(context.Context, *connect.Request[api.JoinBillRequest]) (*connect.Response[api.JoinBillResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ClaimItem(context.Context, *connect.Request[api.ClaimItemRequest]) (*connect.Response[api.ClaimItemResponse], error)
	UnclaimItem(context.Context, *connect.Request[api.UnclaimItemRequest]) (*connect.Response[api.UnclaimItemResponse], error)
	GetTotals(context.Context, *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error)
	FinalizeBill(context.Context, *connect.Request[api.FinalizeBillRequest]) (*connect.Response[api.FinalizeBillResponse], error)
	GetFinalTotals(context.Context, *connect.Request[api.GetFinalTotalsRequest]) (*connect.Response[api.GetFinalTotalsResponse], error)
	ArchiveBill(context.Context, *connect.Request[api.ArchiveBillRequest]) (*connect.Response[api.ArchiveBillResponse], error)
}

// NewBillServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the JSON codec.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
	createBillHandler := connect.NewUnaryHandler(
		BillServiceCreateBillProcedure,
		svc.CreateBill,
		opts...,
	)
	getBillHandler := connect.NewUnaryHandler(
		BillServiceGetBillProcedure,
		svc.GetBill,
		opts...,
	)
	getBillByCodeHandler := connect.NewUnaryHandler(
		BillServiceGetBillByCodeProcedure,
		svc.GetBillByCode,
		opts...,
	)
	updateBillHandler := connect.NewUnaryHandler(
		BillServiceUpdateBillProcedure,
		svc.UpdateBill,
		opts...,
	)
	joinBillHandler := connect.NewUnaryHandler(
		BillServiceJoinBillProcedure,
		svc.JoinBill,
		opts...,
	)
	listParticipantsHandler := connect.NewUnaryHandler(
		BillServiceListParticipantsProcedure,
		svc.ListParticipants,
		opts...,
	)
	addItemHandler := connect.NewUnaryHandler(
		BillServiceAddItemProcedure,
		svc.AddItem,
		opts...,
	)
	updateItemHandler := connect.NewUnaryHandler(
		BillServiceUpdateItemProcedure,
		svc.UpdateItem,
		opts...,
	)
	deleteItemHandler := connect.NewUnaryHandler(
		BillServiceDeleteItemProcedure,
		svc.DeleteItem,
		opts...,
	)
	claimItemHandler := connect.NewUnaryHandler(
		BillServiceClaimItemProcedure,
		svc.ClaimItem,
		opts...,
	)
	unclaimItemHandler := connect.NewUnaryHandler(
		BillServiceUnclaimItemProcedure,
		svc.UnclaimItem,
		opts...,
	)
	getTotalsHandler := connect.NewUnaryHandler(
		BillServiceGetTotalsProcedure,
		svc.GetTotals,
		opts...,
	)
	finalizeBillHandler := connect.NewUnaryHandler(
		BillServiceFinalizeBillProcedure,
		svc.FinalizeBill,
		opts...,
	)
	getFinalTotalsHandler := connect.NewUnaryHandler(
		BillServiceGetFinalTotalsProcedure,
		svc.GetFinalTotals,
		opts...,
	)
	archiveBillHandler := connect.NewUnaryHandler(
		BillServiceArchiveBillProcedure,
		svc.ArchiveBill,
		opts...,
	)
	return "/splitbill.v1.BillService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BillServiceCreateBillProcedure:
			createBillHandler.ServeHTTP(w, r)
		case BillServiceGetBillProcedure:
			getBillHandler.ServeHTTP(w, r)
		case BillServiceGetBillByCodeProcedure:
			getBillByCodeHandler.ServeHTTP(w, r)
		case BillServiceUpdateBillProcedure:
			updateBillHandler.ServeHTTP(w, r)
		case BillServiceJoinBillProcedure:
			joinBillHandler.ServeHTTP(w, r)
		case BillServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case BillServiceAddItemProcedure:
			addItemHandler.ServeHTTP(w, r)
		case BillServiceUpdateItemProcedure:
			updateItemHandler.ServeHTTP(w, r)
		case BillServiceDeleteItemProcedure:
			deleteItemHandler.ServeHTTP(w, r)
		case BillServiceClaimItemProcedure:
			claimItemHandler.ServeHTTP(w, r)
		case BillServiceUnclaimItemProcedure:
			unclaimItemHandler.ServeHTTP(w, r)
		case BillServiceGetTotalsProcedure:
			getTotalsHandler.ServeHTTP(w, r)
		case BillServiceFinalizeBillProcedure:
			finalizeBillHandler.ServeHTTP(w, r)
		case BillServiceGetFinalTotalsProcedure:
			getFinalTotalsHandler.ServeHTTP(w, r)
		case BillServiceArchiveBillProcedure:
			archiveBillHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBillServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBillServiceHandler struct{}

func (UnimplementedBillServiceHandler) CreateBill(context.Context, *connect.Request[api.CreateBillRequest]) (*connect.Response[api.CreateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.CreateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBill(context.Context, *connect.Request[api.GetBillRequest]) (*connect.Response[api.GetBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.GetBill is not implemented"))
}

func (UnimplementedBillServiceHandler) GetBillByCode(context.Context, *connect.Request[api.GetBillByCodeRequest]) (*connect.Response[api.GetBillByCodeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.GetBillByCode is not implemented"))
}

func (UnimplementedBillServiceHandler) UpdateBill(context.Context, *connect.Request[api.UpdateBillRequest]) (*connect.Response[api.UpdateBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.UpdateBill is not implemented"))
}

func (UnimplementedBillServiceHandler) JoinBill(context.Context, *connect.Request[api.JoinBillRequest]) (*connect.Response[api.JoinBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.JoinBill is not implemented"))
}

func (UnimplementedBillServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.ListParticipants is not implemented"))
}

func (UnimplementedBillServiceHandler) AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.AddItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.AddItem is not implemented"))
}

func (UnimplementedBillServiceHandler) UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.UpdateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.UpdateItem is not implemented"))
}

func (UnimplementedBillServiceHandler) DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.DeleteItem is not implemented"))
}

func (UnimplementedBillServiceHandler) ClaimItem(context.Context, *connect.Request[api.ClaimItemRequest]) (*connect.Response[api.ClaimItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.ClaimItem is not implemented"))
}

func (UnimplementedBillServiceHandler) UnclaimItem(context.Context, *connect.Request[api.UnclaimItemRequest]) (*connect.Response[api.UnclaimItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.UnclaimItem is not implemented"))
}

func (UnimplementedBillServiceHandler) GetTotals(context.Context, *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.GetTotals is not implemented"))
}

func (UnimplementedBillServiceHandler) FinalizeBill(context.Context, *connect.Request[api.FinalizeBillRequest]) (*connect.Response[api.FinalizeBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.FinalizeBill is not implemented"))
}

func (UnimplementedBillServiceHandler) GetFinalTotals(context.Context, *connect.Request[api.GetFinalTotalsRequest]) (*connect.Response[api.GetFinalTotalsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.GetFinalTotals is not implemented"))
}

func (UnimplementedBillServiceHandler) ArchiveBill(context.Context, *connect.Request[api.ArchiveBillRequest]) (*connect.Response[api.ArchiveBillResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitbill.v1.BillService.ArchiveBill is not implemented"))
}
