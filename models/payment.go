package models

// CheckoutSession is returned by POST /payments/create-checkout. The
// client opens CheckoutURL in a browser; the processor redirects back
// with the session id once payment completes.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}

// CheckoutStatus is the processor-side state of a checkout session as
// reported by GET /payments/status/{session_id}. AmountTotal is in the
// currency's minor unit.
type CheckoutStatus struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}
