package service

import (
	"testing"

	"github.com/gudangops/whmonitor/internal/domain"
)

func TestBuildInboundSummary(t *testing.T) {
	arrivals := []domain.Arrival{
		{Date: "2026-08-01", ArrivalTime: "08:00", ReceiptNo: "R-1", PoNo: "PO-1", Brand: "Acme", PoQty: 100},
		{Date: "2026-08-01", ArrivalTime: "08:00", ReceiptNo: "R-1", PoNo: "PO-1", Brand: "Acme", PoQty: 50},
		{Date: "2026-08-01", ArrivalTime: "09:30", ReceiptNo: "R-2", PoNo: "PO-2", Brand: "Bolt", PoQty: 80},
		{Date: "2026-08-02", ArrivalTime: "07:15", ReceiptNo: "R-3", PoNo: "PO-2", Brand: "Bolt", PoQty: 40},
	}
	transactions := []domain.Transaction{
		{Date: "2026-08-01", TimeTransaction: "08:30", ReceiptNo: "R-1", OperateType: "Receive", Qty: 150},
		{Date: "2026-08-01", TimeTransaction: "10:00", ReceiptNo: "R-1", OperateType: "Putaway", Qty: 150},
		{Date: "2026-08-01", TimeTransaction: "09:45", ReceiptNo: "R-2", OperateType: "Receive", Qty: 80},
		{Date: "2026-08-01", TimeTransaction: "11:30", ReceiptNo: "R-2", OperateType: "Put Away", Qty: 30},
		{Date: "2026-08-02", TimeTransaction: "07:40", ReceiptNo: "R-3", OperateType: "Inspect", Qty: 40},
	}
	vas := []domain.Vas{
		{Date: "2026-08-01", VasType: "Labeling", Brand: "Acme", Qty: 40},
		{Date: "2026-08-01", VasType: "Labeling", Brand: "Bolt", Qty: 10},
		{Date: "2026-08-01", VasType: "Bundling", Brand: "Acme", Qty: 5},
	}
	unloadings := []domain.Unloading{
		{Date: "2026-08-01", Brand: "Acme", TotalVehicles: 3},
	}

	got := BuildInboundSummary(arrivals, transactions, vas, unloadings)

	// R-1 spans two lines with the same brand/date/time tuple.
	if got.TotalArrivals != 3 {
		t.Errorf("TotalArrivals = %d, want 3", got.TotalArrivals)
	}
	if got.TotalPOs != 2 {
		t.Errorf("TotalPOs = %d, want 2", got.TotalPOs)
	}
	if got.TotalBrands != 2 {
		t.Errorf("TotalBrands = %d, want 2", got.TotalBrands)
	}
	if got.TotalPoQty != 270 {
		t.Errorf("TotalPoQty = %d, want 270", got.TotalPoQty)
	}
	if got.ReceiveQty != 230 || got.PutawayQty != 180 {
		t.Errorf("receive/putaway = %d/%d, want 230/180", got.ReceiveQty, got.PutawayQty)
	}
	if got.PendingPutawayQty != 50 {
		t.Errorf("PendingPutawayQty = %d, want 50", got.PendingPutawayQty)
	}

	// R-1: 08:00 arrival to 10:00 last putaway = 120m; R-2: 09:30 to 11:30 =
	// 120m; R-3 has no putaway and is skipped.
	if got.AvgDockToStock != "2h 0m" {
		t.Errorf("AvgDockToStock = %q, want 2h 0m", got.AvgDockToStock)
	}

	// R-1: 08:30 first receive to 10:00 last putaway = 90m; R-2: 09:45 to
	// 11:30 = 105m; truncated average 97m.
	if got.AvgReceiveToStock != "1h 37m" {
		t.Errorf("AvgReceiveToStock = %q, want 1h 37m", got.AvgReceiveToStock)
	}

	// 180 of 270 PO pieces put away.
	if want := 180.0 / 270 * 100; got.CompletedPct < want-1e-9 || got.CompletedPct > want+1e-9 {
		t.Errorf("CompletedPct = %v, want %v", got.CompletedPct, want)
	}

	if len(got.PendingReceipts) != 2 {
		t.Fatalf("got %d pending receipts, want 2", len(got.PendingReceipts))
	}
	if got.PendingReceipts[0].ReceiptNo != "R-2" || got.PendingReceipts[0].Status != domain.ReceiptStatusPartialPutaway {
		t.Errorf("first pending = %+v", got.PendingReceipts[0])
	}
	if got.PendingReceipts[1].ReceiptNo != "R-3" || got.PendingReceipts[1].Status != domain.ReceiptStatusPendingReceive {
		t.Errorf("second pending = %+v", got.PendingReceipts[1])
	}

	if v := pivotCell(got.ByBrand, "Acme", "PO Qty"); v != 150 {
		t.Errorf("Acme PO Qty = %d, want 150", v)
	}
	if v := pivotCell(got.ByBrand, "Bolt", "Receive"); v != 80 {
		t.Errorf("Bolt Receive = %d, want 80", v)
	}
	if v := pivotCell(got.ByBrand, "Bolt", "Putaway"); v != 30 {
		t.Errorf("Bolt Putaway = %d, want 30", v)
	}

	if v := pivotCell(got.VasByType, "Labeling", "Acme"); v != 40 {
		t.Errorf("Labeling Acme = %d, want 40", v)
	}
	if v := pivotCell(got.VasByType, "Labeling", "Bolt"); v != 10 {
		t.Errorf("Labeling Bolt = %d, want 10", v)
	}
	if v := pivotCell(got.VasByType, "Bundling", "Acme"); v != 5 {
		t.Errorf("Bundling Acme = %d, want 5", v)
	}

	// Arrivals carry no item type, so everything lands under Barang Jual.
	if v := pivotCell(got.ByItemType, "Acme", "Barang Jual"); v != 150 {
		t.Errorf("Acme Barang Jual = %d, want 150", v)
	}
	if v := pivotCell(got.ByItemType, "Bolt", "Barang Jual"); v != 120 {
		t.Errorf("Bolt Barang Jual = %d, want 120", v)
	}
	if v := pivotCell(got.VasByBrand, "Acme", "Barang Jual"); v != 45 {
		t.Errorf("VAS Acme Barang Jual = %d, want 45", v)
	}

	if len(got.Unloadings) != 1 || got.Unloadings[0].TotalVehicles != 3 {
		t.Errorf("Unloadings = %+v", got.Unloadings)
	}
}

func TestBuildInboundSummaryShortReceipt(t *testing.T) {
	arrivals := []domain.Arrival{
		{Date: "2026-08-01", ReceiptNo: "R-1", PoNo: "PO-1", Brand: "Acme", PoQty: 100},
	}
	transactions := []domain.Transaction{
		{Date: "2026-08-01", ReceiptNo: "R-1", OperateType: "Receive", Qty: 50},
		{Date: "2026-08-01", ReceiptNo: "R-1", OperateType: "Putaway", Qty: 50},
	}

	got := BuildInboundSummary(arrivals, transactions, nil, nil)

	// Half the PO received and put away: the receipt is still short against
	// the PO and must stay on the pending list.
	if len(got.PendingReceipts) != 1 {
		t.Fatalf("got %d pending receipts, want 1", len(got.PendingReceipts))
	}
	p := got.PendingReceipts[0]
	if p.ReceiptNo != "R-1" || p.Status != domain.ReceiptStatusPendingReceive {
		t.Errorf("pending = %+v", p)
	}
	if got.CompletedPct != 50 {
		t.Errorf("CompletedPct = %v, want 50", got.CompletedPct)
	}
}

func TestBuildInboundSummaryOperatorAliases(t *testing.T) {
	arrivals := []domain.Arrival{
		{Date: "2026-08-01", ReceiptNo: "rcp-10", PoNo: "PO-1", Brand: "Acme", PoQty: 30},
	}
	transactions := []domain.Transaction{
		{Date: "2026-08-01", ReceiptNo: "RCP-10", OperateType: "Receiving", Qty: 30},
		{Date: "2026-08-01", ReceiptNo: " RCP-10 ", OperateType: "Put Away", Qty: 30},
	}

	got := BuildInboundSummary(arrivals, transactions, nil, nil)

	// "Receiving" counts as a receive and the receipt join ignores case.
	if got.ReceiveQty != 30 || got.PutawayQty != 30 {
		t.Errorf("receive/putaway = %d/%d, want 30/30", got.ReceiveQty, got.PutawayQty)
	}
	if len(got.PendingReceipts) != 0 {
		t.Errorf("pending = %+v, want none", got.PendingReceipts)
	}
	if v := pivotCell(got.ByBrand, "Acme", "Receive"); v != 30 {
		t.Errorf("Acme Receive = %d, want 30", v)
	}
}

func TestBuildInboundSummaryEmpty(t *testing.T) {
	got := BuildInboundSummary(nil, nil, nil, nil)
	if got.TotalArrivals != 0 || got.TotalPoQty != 0 {
		t.Errorf("empty summary = %+v", got)
	}
	if got.AvgDockToStock != "0h 0m" {
		t.Errorf("AvgDockToStock = %q, want 0h 0m", got.AvgDockToStock)
	}
	if len(got.PendingReceipts) != 0 {
		t.Errorf("expected no pending receipts")
	}
}
