package order

// Status is free text; only the initial value is fixed.
type Status string

const StatusPending Status = "pending"

func InitialStatus() Status {
	return StatusPending
}
