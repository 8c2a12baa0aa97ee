package entity

import (
	"time"

	"github.com/douanani/rihladz-admin/pkg/status"
)

// Report is an abuse or complaint ticket filed against an agency or a
// published tour.
type Report struct {
	ID         string        `json:"id"`
	Reporter   string        `json:"reporter"`
	TargetType string        `json:"targetType,omitempty"`
	TargetName string        `json:"targetName,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	Status     status.Report `json:"status"`
	CreatedAt  time.Time     `json:"createdAt,omitempty"`
}

// EntityID implements Record.
func (r Report) EntityID() string { return r.ID }

// Field implements Record.
func (r Report) Field(name string) string {
	switch name {
	case "id":
		return r.ID
	case "reporter":
		return r.Reporter
	case "targetType":
		return r.TargetType
	case "targetName":
		return r.TargetName
	case "reason":
		return r.Reason
	case "status":
		return string(r.Status)
	}
	return ""
}

// MergeReport folds form fields into a report. Status values are
// validated against the closed vocabulary before being applied.
func MergeReport(r Report, fields map[string]string) Report {
	for name, value := range fields {
		switch name {
		case "reporter":
			r.Reporter = value
		case "targetType":
			r.TargetType = value
		case "targetName":
			r.TargetName = value
		case "reason":
			r.Reason = value
		case "status":
			if next, err := status.ParseReport(value); err == nil {
				r.Status = next
			}
		}
	}
	return r
}
