package cashdrawer

// PaymentMethod represents how a sale was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentVoucher  PaymentMethod = "voucher"
)

// ParsePaymentMethod maps a raw method string to a known PaymentMethod.
// Unknown values degrade to PaymentCard so they never inflate the drawer.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch PaymentMethod(raw) {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentVoucher:
		return PaymentMethod(raw)
	default:
		return PaymentCard
	}
}

// AffectsDrawer reports whether the method moves physical cash. Only cash
// sales participate in drawer reconciliation.
func (p PaymentMethod) AffectsDrawer() bool {
	return p == PaymentCash
}

// String returns the method as a string
func (p PaymentMethod) String() string {
	return string(p)
}
