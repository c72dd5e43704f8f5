package booking

// Status follows the lifecycle pendente → confirmada → em_andamento →
// concluida, with cancelada reachable from any non-terminal state. Transitions
// are driven by the booking workflow outside this service; here status only
// gates conflict checks and review eligibility.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusConfirmada  Status = "confirmada"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluida   Status = "concluida"
	StatusCancelada   Status = "cancelada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendente, StatusConfirmada, StatusEmAndamento, StatusConcluida, StatusCancelada:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking still occupies its date range for
// conflict purposes.
func (s Status) IsActive() bool {
	switch s {
	case StatusPendente, StatusConfirmada, StatusEmAndamento:
		return true
	default:
		return false
	}
}

// ActiveStatuses is the status set the store is queried with when searching
// for conflicting bookings.
func ActiveStatuses() []Status {
	return []Status{StatusPendente, StatusConfirmada, StatusEmAndamento}
}
