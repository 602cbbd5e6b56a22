package model

import "strings"

// CalendarType selects which date field of a bill header is in use.
type CalendarType string

const (
	CalendarAD CalendarType = "AD"
	CalendarBS CalendarType = "BS"
)

// Toggle flips between AD and BS.
func (c CalendarType) Toggle() CalendarType {
	if c == CalendarBS {
		return CalendarAD
	}
	return CalendarBS
}

// ParseCalendar accepts "ad"/"bs" in any case; anything else is AD.
func ParseCalendar(s string) CalendarType {
	if strings.EqualFold(strings.TrimSpace(s), string(CalendarBS)) {
		return CalendarBS
	}
	return CalendarAD
}

// BillHeader holds the free-text fields printed above the line items.
// None of them are validated.
type BillHeader struct {
	BillNo   string       `json:"bill_no"`
	Customer string       `json:"customer"`
	Address  string       `json:"address"`
	Calendar CalendarType `json:"calendar"`
	ADDate   string       `json:"ad_date"`
	BSDate   string       `json:"bs_date"`
}

// Date returns whichever date matches the selected calendar.
func (h BillHeader) Date() string {
	if h.Calendar == CalendarBS {
		return h.BSDate
	}
	return h.ADDate
}
