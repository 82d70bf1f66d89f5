package model

import (
	"time"
)

// Order is stored as a single document keyed by its serial number.
// Field names match the wire format the frontend already speaks.
type Order struct {
	SerialNumber string           `json:"serialNumber" bson:"serialNumber"`
	PatientName  string           `json:"patientName" bson:"patientName"`
	PhoneNumber  string           `json:"phoneNumber" bson:"phoneNumber"`
	EmailAddress string           `json:"emailAddress" bson:"emailAddress"`
	Tests        []map[string]any `json:"tests" bson:"tests"` // opaque, stored and echoed verbatim
	OrderDate    time.Time        `json:"orderDate" bson:"orderDate"`
}

const displayTimeLayout = "2006-01-02 15:04:05"

// DisplayFields renders the order for the status response, with the
// timestamp as a plain display string instead of RFC 3339.
func (o Order) DisplayFields() map[string]any {
	return map[string]any{
		"serialNumber": o.SerialNumber,
		"patientName":  o.PatientName,
		"phoneNumber":  o.PhoneNumber,
		"emailAddress": o.EmailAddress,
		"tests":        o.Tests,
		"orderDate":    o.OrderDate.Format(displayTimeLayout),
	}
}
