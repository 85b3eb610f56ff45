package order

// Status is an order's position in the kitchen workflow.
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

// Statuses lists the workflow states in order.
var Statuses = []Status{StatusReceived, StatusPreparing, StatusReady, StatusCompleted}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusCompleted:
		return true
	}
	return false
}

// Next returns the following workflow state. Completed is terminal and
// returns itself. The dashboard advances one step at a time through this;
// the persistence layer itself accepts any known status and does not check
// the current one.
func (s Status) Next() Status {
	switch s {
	case StatusReceived:
		return StatusPreparing
	case StatusPreparing:
		return StatusReady
	case StatusReady:
		return StatusCompleted
	default:
		return StatusCompleted
	}
}

// Terminal reports whether no further transition is expected.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// PaymentStatus values. The modeled payment flow is simulated and always
// lands on completed.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)
