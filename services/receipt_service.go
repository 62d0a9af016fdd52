package services

// DefaultReceiptStart is the first receipt number of a fresh process.
const DefaultReceiptStart = 1001

// ReceiptCounter numbers consolidated receipts. It lives for the whole
// process and is shared by every session.
type ReceiptCounter struct {
	next int
}

func NewReceiptCounter(start int) *ReceiptCounter {
	return &ReceiptCounter{next: start}
}

// Current is the number the next receipt will carry.
func (c *ReceiptCounter) Current() int {
	return c.next
}

// Issue hands out the current number and advances the counter by one.
func (c *ReceiptCounter) Issue() int {
	n := c.next
	c.next++
	return n
}
