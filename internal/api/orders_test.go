package api_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/api"
	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func TestOrdersService_Stats_DateRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newBackendMocks(ctrl)
	recorded := &recordedRequest{}
	mocks.respond(http.StatusOK, `{}`, recorded)

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	client, _ := mocks.client(t)
	if _, err := client.Orders.Stats(context.Background(), api.StatsParams{
		StartDate: start,
		EndDate:   end,
	}); err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	query, err := url.ParseQuery(recorded.query)
	if err != nil {
		t.Fatalf("ParseQuery(%q) error = %v", recorded.query, err)
	}
	if got := query.Get("start_date"); got != start.Format(time.RFC3339) {
		t.Errorf("start_date = %q; want %q", got, start.Format(time.RFC3339))
	}
	if got := query.Get("end_date"); got != end.Format(time.RFC3339) {
		t.Errorf("end_date = %q; want %q", got, end.Format(time.RFC3339))
	}
}

func TestOrdersService_ListByStatus_KeepsCallerFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newBackendMocks(ctrl)
	recorded := &recordedRequest{}
	mocks.respond(http.StatusOK, `[]`, recorded)

	client, _ := mocks.client(t)
	_, err := client.Orders.ListByStatus(
		context.Background(),
		entity.OrderStatusDelivered,
		api.OrderListParams{Page: 3, Limit: 25},
	)
	if err != nil {
		t.Fatalf("ListByStatus() error = %v", err)
	}

	if recorded.query != "limit=25&page=3&status=delivered" {
		t.Errorf("query = %q; want limit=25&page=3&status=delivered", recorded.query)
	}
}

func TestOrdersService_List_PropagatesBackendError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newBackendMocks(ctrl)
	mocks.respond(http.StatusInternalServerError, `{"detail":"database unavailable"}`, nil)

	client, _ := mocks.client(t)
	orders, err := client.Orders.List(context.Background(), api.OrderListParams{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if orders != nil {
		t.Error("expected nil orders on error")
	}
}

func TestOrdersService_List_DecodesOrders(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newBackendMocks(ctrl)
	mocks.respond(http.StatusOK, `[
		{"id":"5695ed68-06a3-4c9e-9862-33bf6077d929","status":"pending","total_amount":"38.50"},
		{"id":"c2cc10e1-57d6-4b6f-9899-38d972112d8c","status":"shipped","total_amount":"7"}
	]`, nil)

	client, _ := mocks.client(t)
	orders, err := client.Orders.List(context.Background(), api.OrderListParams{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("len(orders) = %d; want 2", len(orders))
	}
	if orders[0].Status != entity.OrderStatusPending {
		t.Errorf("orders[0].Status = %s; want pending", orders[0].Status)
	}
	if !orders[0].TotalAmount.Equal(decimal.RequireFromString("38.50")) {
		t.Errorf("orders[0].TotalAmount = %s; want 38.50", orders[0].TotalAmount)
	}
	if orders[1].Status != entity.OrderStatusShipped {
		t.Errorf("orders[1].Status = %s; want shipped", orders[1].Status)
	}
}
