package notify

import "fmt"

// Status is the visual state of the release message. The set is closed:
// a run moves from pending to exactly one of success or failure.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

// String returns the machine-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// template maps a status to its fixed display attributes.
type template struct {
	glyph string
	label string
	color string
}

func templateFor(status Status) template {
	switch status {
	case StatusPending:
		return template{glyph: ":hourglass_flowing_sand:", label: "In Progress", color: "#DAA038"}
	case StatusSuccess:
		return template{glyph: ":white_check_mark:", label: "Released", color: "#2EB67D"}
	case StatusFailure:
		return template{glyph: ":x:", label: "Failed", color: "#E01E5A"}
	}
	panic(fmt.Sprintf("notify: no template for %s", status))
}

// Label returns the human-readable status label used in fallback text.
func (s Status) Label() string {
	return templateFor(s).label
}
