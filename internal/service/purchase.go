package service

type PurchaseOutcome int

const (
	PurchaseSucceeded PurchaseOutcome = iota
	PurchaseAlreadySold
	PurchaseOutOfRange
)

func (o PurchaseOutcome) String() string {
	switch o {
	case PurchaseSucceeded:
		return "succeeded"
	case PurchaseAlreadySold:
		return "already_sold"
	case PurchaseOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// PurchaseResult reports what a purchase attempt did. None of the outcomes is
// an error; an out-of-range index leaves every item untouched.
type PurchaseResult struct {
	Outcome PurchaseOutcome
	// Name is the purchased item's name. Empty for PurchaseOutOfRange.
	Name string
}

func (r PurchaseResult) OK() bool {
	return r.Outcome == PurchaseSucceeded
}
