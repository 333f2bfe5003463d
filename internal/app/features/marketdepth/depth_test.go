package marketdepth_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/tradedesk/internal/app/features/marketdepth"
	"github.com/dalemusser/tradedesk/internal/domain/models"
)

func order(side models.OrderSide, price, amount float64) models.Order {
	return models.Order{Side: side, Price: price, Amount: amount, Status: models.OrderStatusOpen}
}

func TestBuild_AggregatesAndAccumulates(t *testing.T) {
	orders := []models.Order{
		order(models.SideBuy, 100, 1),
		order(models.SideBuy, 99, 2),
		order(models.SideBuy, 100, 0.5),
		order(models.SideSell, 102, 1),
		order(models.SideSell, 101, 3),
		order(models.SideSell, 102, 1),
	}
	c := marketdepth.Build("Kraken", "BTCUSD", orders)

	wantBids := []marketdepth.Level{
		{Price: 100, Amount: 1.5, Cumulative: 1.5, Orders: 2},
		{Price: 99, Amount: 2, Cumulative: 3.5, Orders: 1},
	}
	wantAsks := []marketdepth.Level{
		{Price: 101, Amount: 3, Cumulative: 3, Orders: 1},
		{Price: 102, Amount: 2, Cumulative: 5, Orders: 2},
	}
	if !reflect.DeepEqual(c.Bids, wantBids) {
		t.Errorf("Bids:\n got %+v\nwant %+v", c.Bids, wantBids)
	}
	if !reflect.DeepEqual(c.Asks, wantAsks) {
		t.Errorf("Asks:\n got %+v\nwant %+v", c.Asks, wantAsks)
	}
	if c.Spread != 1 {
		t.Errorf("Spread: got %v, want 1", c.Spread)
	}
	if c.Exchange != "Kraken" || c.Pair != "BTCUSD" {
		t.Errorf("labels: %q %q", c.Exchange, c.Pair)
	}
}

func TestBuild_SkipsClosedAndEmptyOrders(t *testing.T) {
	cancelled := order(models.SideBuy, 100, 1)
	cancelled.Status = models.OrderStatusCancelled
	orders := []models.Order{
		cancelled,
		order(models.SideBuy, 100, 0),
		order(models.SideSell, 0, 1),
		{Side: "short", Price: 1, Amount: 1, Status: models.OrderStatusOpen},
	}
	c := marketdepth.Build("Kraken", "BTCUSD", orders)
	if len(c.Bids) != 0 || len(c.Asks) != 0 {
		t.Errorf("expected empty chart, got %+v", c)
	}
	if c.Spread != 0 {
		t.Errorf("Spread: got %v", c.Spread)
	}
}

func TestBuild_OneSidedBookHasNoSpread(t *testing.T) {
	c := marketdepth.Build("Kraken", "BTCUSD", []models.Order{order(models.SideBuy, 100, 1)})
	if len(c.Bids) != 1 || len(c.Asks) != 0 || c.Spread != 0 {
		t.Errorf("unexpected chart: %+v", c)
	}
}
