package billing

import (
	"fmt"
	"time"

	"github.com/idilsaglam/partbill/internal/model"
)

// Key is a navigation event delivered by the form while the search box has focus.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyConfirm
)

// SavedMessage is the status shown after Save.
const SavedMessage = "Bill saved!"

// Session owns all state of one billing form: the catalog, the bill being
// built, the search query with its suggestions and highlight, and the header
// fields. It is not safe for concurrent use; the form drives it from a single
// event loop.
type Session struct {
	catalog     []model.Part
	ledger      *Ledger
	query       string
	suggestions []model.Part
	cursor      Cursor
	header      model.BillHeader
	now         func() time.Time
}

// NewSession starts a bill over catalog. now may be nil, in which case the
// wall clock is used for the bill number and default date.
func NewSession(catalog []model.Part, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		catalog: catalog,
		ledger:  NewLedger(),
		cursor:  NewCursor(),
		now:     now,
		header:  model.BillHeader{Calendar: model.CalendarAD},
	}
	s.stampHeader()
	return s
}

func (s *Session) stampHeader() {
	t := s.now()
	s.header.BillNo = fmt.Sprintf("BILL-%d", t.UnixMilli())
	s.header.ADDate = t.Format(time.DateOnly)
}

func (s *Session) Catalog() []model.Part { return s.catalog }

// CurrentSuggestions returns the parts matching the current query.
func (s *Session) CurrentSuggestions() []model.Part {
	out := make([]model.Part, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// CurrentLedger returns the line items in the order they were first added.
func (s *Session) CurrentLedger() []model.LineItem { return s.ledger.Items() }

// Total is recomputed from the ledger on every call.
func (s *Session) Total() float64 { return Total(s.ledger.items) }

func (s *Session) Query() string { return s.query }

// Highlight is the highlighted suggestion index or NoSelection.
func (s *Session) Highlight() int { return s.cursor.Index() }

// OnQueryChanged recomputes suggestions for text. The highlight is dropped
// in the same call so a stale index can never be confirmed.
func (s *Session) OnQueryChanged(text string) {
	s.query = text
	s.suggestions = Suggest(s.catalog, text)
	s.cursor.Reset()
}

// OnKey applies a navigation key to the suggestion list. On KeyConfirm with a
// valid highlight the part is added to the bill and returned with true.
func (s *Session) OnKey(k Key) (model.Part, bool) {
	n := len(s.suggestions)
	if n == 0 {
		return model.Part{}, false
	}
	switch k {
	case KeyDown:
		s.cursor.Down(n)
	case KeyUp:
		s.cursor.Up(n)
	case KeyConfirm:
		if !s.cursor.Selected(n) {
			return model.Part{}, false
		}
		p := s.suggestions[s.cursor.Index()]
		s.AddPart(p)
		return p, true
	}
	return model.Part{}, false
}

// AddPart puts p on the bill and clears the search.
func (s *Session) AddPart(p model.Part) {
	s.ledger.Add(p)
	s.OnQueryChanged("")
}

// AdjustQuantity changes the quantity of a line item; see Ledger.AdjustQuantity.
func (s *Session) AdjustQuantity(id int64, delta int) {
	s.ledger.AdjustQuantity(id, delta)
}

// Quantity is how many of id are on the bill.
func (s *Session) Quantity(id int64) int { return s.ledger.Quantity(id) }

// Remove drops a line item regardless of its quantity.
func (s *Session) Remove(id int64) {
	s.ledger.AdjustQuantity(id, -s.ledger.Quantity(id))
}

func (s *Session) Header() model.BillHeader { return s.header }

// SetHeader replaces the header fields. An empty calendar means AD.
func (s *Session) SetHeader(h model.BillHeader) {
	if h.Calendar == "" {
		h.Calendar = model.CalendarAD
	}
	s.header = h
}

// ToggleCalendar switches the header between AD and BS dates.
func (s *Session) ToggleCalendar() model.CalendarType {
	s.header.Calendar = s.header.Calendar.Toggle()
	return s.header.Calendar
}

// Save acknowledges the bill and clears the search. Bills are not persisted.
func (s *Session) Save() string {
	s.OnQueryChanged("")
	return SavedMessage
}

// NewBill empties the bill, clears the search and issues a new bill number.
// Customer fields are cleared as well.
func (s *Session) NewBill() {
	s.ledger.Clear()
	s.OnQueryChanged("")
	s.header = model.BillHeader{Calendar: s.header.Calendar}
	s.stampHeader()
}
