package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/partbill/internal/billing"
	"github.com/idilsaglam/partbill/internal/model"
	"github.com/idilsaglam/partbill/internal/ui"
)

// field identifies the focusable parts of the form, in tab order.
type field int

const (
	fieldSearch field = iota
	fieldBill
	fieldCustomer
	fieldAddress
	fieldDate
	fieldCount
)

// Options configure the form.
type Options struct {
	Shop     string
	Currency string
	Log      zerolog.Logger
	Status   string // shown until the first status change
}

// Model is the Bubble Tea model for the billing form. All bill state lives in
// the session; the model only holds widgets and presentation state.
type Model struct {
	session *billing.Session
	opts    Options
	keys    keyMap

	focus    field
	search   textinput.Model
	customer textinput.Model
	address  textinput.Model
	date     textinput.Model
	bill     table.Model
	help     help.Model

	status string
	print  bool // quit was caused by the print key
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

// New builds a form over s with the search box focused.
func New(s *billing.Session, opts Options) Model {
	m := Model{
		session:  s,
		opts:     opts,
		keys:     defaultKeys(),
		search:   newInput("Search parts...", 100),
		customer: newInput("Enter name", 120),
		address:  newInput("Enter address", 200),
		date:     newInput("YYYY-MM-DD", 40),
		help:     help.New(),
		status:   opts.Status,
	}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle

	m.bill = table.New(
		table.WithColumns([]table.Column{
			{Title: "S.No", Width: 4},
			{Title: "Parts", Width: 28},
			{Title: "Qty", Width: 5},
			{Title: "Price", Width: 12},
			{Title: "Total", Width: 12},
		}),
		table.WithHeight(8),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	st.Selected = selectedStyle
	m.bill.SetStyles(st)

	h := s.Header()
	m.customer.SetValue(h.Customer)
	m.address.SetValue(h.Address)
	m.date.SetValue(h.Date())
	m.search.SetValue(s.Query())

	m.syncBill()
	m.setFocus(fieldSearch)
	return m
}

// Run shows the form until the user quits. It reports whether the user asked
// for the bill to be printed.
func Run(s *billing.Session, opts Options) (bool, error) {
	p := tea.NewProgram(New(s, opts), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return fm.print, nil
}

// PrintRequested reports whether the form was closed with the print key.
func (m Model) PrintRequested() bool { return m.print }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Print):
			m.print = true
			m.opts.Log.Info().Str("bill_no", m.session.Header().BillNo).Int("items", len(m.session.CurrentLedger())).Msg("bill_print")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			m.status = m.session.Save()
			m.search.SetValue("")
			m.opts.Log.Info().Str("bill_no", m.session.Header().BillNo).Float64("total", m.session.Total()).Msg("bill_saved")
			return m, nil
		case key.Matches(msg, m.keys.NewBill):
			m.session.NewBill()
			m.resetFields()
			m.status = "New bill " + m.session.Header().BillNo
			return m, m.setFocus(fieldSearch)
		case key.Matches(msg, m.keys.Calendar):
			cal := m.session.ToggleCalendar()
			m.date.SetValue(m.session.Header().Date())
			m.date.CursorEnd()
			m.status = "Date: " + string(cal)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}

		switch m.focus {
		case fieldSearch:
			return m.updateSearch(msg)
		case fieldBill:
			return m.updateBill(msg)
		}
	}
	return m.updateFocusedInput(msg)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var k billing.Key
	switch {
	case key.Matches(msg, m.keys.Down):
		k = billing.KeyDown
	case key.Matches(msg, m.keys.Up):
		k = billing.KeyUp
	case key.Matches(msg, m.keys.Confirm):
		k = billing.KeyConfirm
	default:
		return m.updateFocusedInput(msg)
	}
	if p, added := m.session.OnKey(k); added {
		m.search.SetValue("")
		m.syncBill()
		m.status = "Added " + p.Name
		m.opts.Log.Debug().Int64("part_id", p.ID).Msg("part_added")
	}
	return m, nil
}

func (m Model) updateBill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.session.CurrentLedger()
	i := m.bill.Cursor()
	if i < 0 || i >= len(items) {
		var cmd tea.Cmd
		m.bill, cmd = m.bill.Update(msg)
		return m, cmd
	}
	id := items[i].ID

	switch {
	case key.Matches(msg, m.keys.Inc):
		m.session.AdjustQuantity(id, 1)
	case key.Matches(msg, m.keys.Dec):
		m.session.AdjustQuantity(id, -1)
	case key.Matches(msg, m.keys.Remove):
		m.session.Remove(id)
	default:
		var cmd tea.Cmd
		m.bill, cmd = m.bill.Update(msg)
		return m, cmd
	}
	m.opts.Log.Debug().Int64("part_id", id).Int("quantity", m.session.Quantity(id)).Msg("quantity_adjusted")
	m.syncBill()
	return m, nil
}

// updateFocusedInput forwards msg to the focused text field and copies the
// result into the session.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldSearch:
		m.search, cmd = m.search.Update(msg)
		if v := m.search.Value(); v != m.session.Query() {
			m.session.OnQueryChanged(v)
		}
	case fieldCustomer, fieldAddress, fieldDate:
		switch m.focus {
		case fieldCustomer:
			m.customer, cmd = m.customer.Update(msg)
		case fieldAddress:
			m.address, cmd = m.address.Update(msg)
		case fieldDate:
			m.date, cmd = m.date.Update(msg)
		}
		h := m.session.Header()
		h.Customer = m.customer.Value()
		h.Address = m.address.Value()
		if h.Calendar == model.CalendarBS {
			h.BSDate = m.date.Value()
		} else {
			h.ADDate = m.date.Value()
		}
		m.session.SetHeader(h)
	case fieldBill:
		m.bill, cmd = m.bill.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.search.Blur()
	m.customer.Blur()
	m.address.Blur()
	m.date.Blur()
	m.bill.Blur()
	switch f {
	case fieldSearch:
		return m.search.Focus()
	case fieldBill:
		m.bill.Focus()
	case fieldCustomer:
		return m.customer.Focus()
	case fieldAddress:
		return m.address.Focus()
	case fieldDate:
		return m.date.Focus()
	}
	return nil
}

func (m *Model) resetFields() {
	h := m.session.Header()
	m.search.SetValue("")
	m.customer.SetValue(h.Customer)
	m.address.SetValue(h.Address)
	m.date.SetValue(h.Date())
	m.syncBill()
}

// syncBill rebuilds the table rows from the ledger, keeping the cursor on a
// valid row.
func (m *Model) syncBill() {
	items := m.session.CurrentLedger()
	rows := make([]table.Row, 0, len(items))
	for i, it := range items {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			it.Name,
			strconv.Itoa(it.Quantity),
			ui.Money(m.opts.Currency, it.Price),
			ui.Money(m.opts.Currency, it.Subtotal()),
		})
	}
	m.bill.SetRows(rows)
	if n := len(rows); n > 0 && m.bill.Cursor() >= n {
		m.bill.SetCursor(n - 1)
	}
	if len(rows) > 0 && m.bill.Cursor() < 0 {
		m.bill.SetCursor(0)
	}
}

func (m Model) View() string {
	h := m.session.Header()

	head := titleStyle.Render(m.opts.Shop) + "   " + mutedStyle.Render("Bill No. ") + h.BillNo

	dateLabel := fmt.Sprintf("Date (%s)", h.Calendar)
	customer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Name"), m.customer.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Address"), m.address.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Width(12).Render(dateLabel), m.date.View()),
	)
	custFocused := m.focus == fieldCustomer || m.focus == fieldAddress || m.focus == fieldDate

	searchBox := lipgloss.JoinVertical(lipgloss.Left,
		accentStyle.Render("Search Parts"),
		m.search.View(),
		m.suggestionsView(),
		mutedStyle.Render("↑/↓ to navigate, enter to add"),
	)

	billBody := m.bill.View()
	if len(m.session.CurrentLedger()) == 0 {
		billBody = mutedStyle.Render("No items added.")
	}
	grand := totalStyle.Render("Grand Total: " + ui.Money(m.opts.Currency, m.session.Total()))
	billBox := lipgloss.JoinVertical(lipgloss.Left, accentStyle.Render("Bill"), billBody, grand)

	status := ""
	if m.status != "" {
		status = successStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		head,
		section(customer, custFocused),
		lipgloss.JoinHorizontal(lipgloss.Top,
			section(searchBox, m.focus == fieldSearch),
			section(billBox, m.focus == fieldBill),
		),
		status,
		m.help.View(contextHelp{keys: m.keys, focus: m.focus}),
	)
}

func (m Model) suggestionsView() string {
	parts := m.session.CurrentSuggestions()
	if len(parts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(parts))
	for i, p := range parts {
		line := fmt.Sprintf("%-28s %s", p.Name, ui.Money(m.opts.Currency, p.Price))
		if i == m.session.Highlight() {
			lines = append(lines, selectedStyle.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
