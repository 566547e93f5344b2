package solve

// Status tags an Outcome.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

// String provides a human-readable representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of attempting one part: pending, an answer, or a
// failure detail. The zero value is Pending.
type Outcome struct {
	Status Status
	Answer string
	Detail string
}

// Pending returns the "not attempted" outcome.
func Pending() Outcome { return Outcome{Status: StatusPending} }

// Success wraps an engine answer.
func Success(answer string) Outcome { return Outcome{Status: StatusSuccess, Answer: answer} }

// Failure wraps an engine failure detail.
func Failure(detail string) Outcome { return Outcome{Status: StatusFailure, Detail: detail} }

func (o Outcome) IsPending() bool { return o.Status == StatusPending }
func (o Outcome) IsSuccess() bool { return o.Status == StatusSuccess }
func (o Outcome) IsFailure() bool { return o.Status == StatusFailure }
