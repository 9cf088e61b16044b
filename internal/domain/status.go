package domain

// Receipt putaway statuses shown on the inbound pending table.
const (
	ReceiptStatusPendingReceive = "Pending Receive"
	ReceiptStatusPendingPutaway = "Pending Putaway"
	ReceiptStatusPartialPutaway = "Partial Putaway"
	ReceiptStatusCompleted      = "Completed"
)

// ReceiptStatus derives the putaway progress label for one receipt. A
// receipt is receive-pending until the received quantity covers the PO
// quantity, and completed only once the putaway quantity covers it too.
func ReceiptStatus(poQty, receiveQty, putawayQty int) string {
	switch {
	case receiveQty < poQty:
		return ReceiptStatusPendingReceive
	case putawayQty >= poQty:
		return ReceiptStatusCompleted
	case putawayQty == 0:
		return ReceiptStatusPendingPutaway
	default:
		return ReceiptStatusPartialPutaway
	}
}
