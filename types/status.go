package types

// Status is the validity of a parsed value. Statuses are totally ordered,
// a later Status is worse: StatusValid < StatusIncomplete < StatusError.
type Status int

const (
	// StatusValid means the value is ready to use.
	StatusValid Status = iota
	// StatusIncomplete means more input could make the value valid.
	StatusIncomplete
	// StatusError means the input cannot be made valid by appending to it.
	StatusError
)

var statusNames = map[Status]string{
	StatusValid:      "VALID",
	StatusIncomplete: "INCOMPLETE",
	StatusError:      "ERROR",
}

func (s Status) String() string {
	name, ok := statusNames[s]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

// WorseThan reports whether s is later than other in the lattice.
func (s Status) WorseThan(other Status) bool {
	return s > other
}

// Combine returns the worst of statuses, StatusValid when there are none.
func Combine(statuses ...Status) Status {
	combined := StatusValid
	for _, status := range statuses {
		if status.WorseThan(combined) {
			combined = status
		}
	}
	return combined
}
