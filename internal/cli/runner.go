package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/partbill/internal/billing"
	"github.com/idilsaglam/partbill/internal/config"
	"github.com/idilsaglam/partbill/internal/model"
	"github.com/idilsaglam/partbill/internal/store/catalogstore"
	"github.com/idilsaglam/partbill/internal/tui"
	"github.com/idilsaglam/partbill/internal/ui"
)

// FormFunc runs the interactive form and reports whether printing was requested.
type FormFunc func(*billing.Session, tui.Options) (bool, error)

// Options carry configuration and I/O for a single invocation.
type Options struct {
	Config  *config.Config
	Log     zerolog.Logger // non-interactive commands
	FormLog zerolog.Logger // while the form owns the terminal
	Out     io.Writer
	Err     io.Writer
	Now     func() time.Time
	Form    FormFunc
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doForm(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "form":
		return doForm(opt)

	case "catalog":
		return doCatalog(opt)

	case "search":
		if len(a) == 0 {
			ui.Fail(opt.Err, "usage: partbill search <query...>")
			return 2
		}
		return doSearch(strings.Join(a, " "), opt)

	case "bill":
		return doBill(a, opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `partbill - spare-parts billing form

Usage:
  partbill [flags] [subcommand] [args]

Subcommands:
  form                     Open the interactive billing form (default)
  catalog                  List the parts catalog
  search <query...>        Show the parts a query would suggest
  bill [bill flags] <id>[xN]...
                           Build a bill from part ids and print it

Flags:
  -catalog <path>          Parts catalog (overrides PARTBILL_CATALOG_PATH)
  -theme classic|neon|mono Output theme
  -no-color                Disable colored output

Bill flags:
  -name, -address          Customer details
  -calendar AD|BS          Calendar of -date (default AD)
  -date <text>             Bill date (default today for AD)

Examples:
  partbill
  partbill search filter
  partbill bill -name "Ram" 1 7x2
`)
}

// -------------- subcommand impls ----------------

func loadCatalog(opt Options) []model.Part {
	return catalogstore.LoadOrEmpty(opt.Config.CatalogPath, opt.Log)
}

func printBill(s *billing.Session, opt Options) {
	ui.Panel(opt.Out, ui.BillLines(opt.Out, ui.Bill{
		Shop:     opt.Config.ShopName,
		Currency: opt.Config.Currency,
		Header:   s.Header(),
		Items:    s.CurrentLedger(),
		Total:    s.Total(),
	}))
}

func doForm(opt Options) int {
	// The form owns the terminal; only FormLog may write while it runs.
	parts := catalogstore.LoadOrEmpty(opt.Config.CatalogPath, opt.FormLog)
	s := billing.NewSession(parts, opt.Now)

	status := ""
	if len(parts) == 0 {
		status = "catalog empty or unavailable: " + opt.Config.CatalogPath
		opt.Log.Warn().Str("path", opt.Config.CatalogPath).Msg("form_without_catalog")
	}

	form := opt.Form
	if form == nil {
		form = tui.Run
	}
	printReq, err := form(s, tui.Options{
		Shop:     opt.Config.ShopName,
		Currency: opt.Config.Currency,
		Log:      opt.FormLog,
		Status:   status,
	})
	if err != nil {
		ui.Fail(opt.Err, "form: "+err.Error())
		return 1
	}
	if printReq {
		printBill(s, opt)
	}
	return 0
}

func doCatalog(opt Options) int {
	parts := loadCatalog(opt)
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s", ui.Cw(opt.Out, t.Title, opt.Config.ShopName), ui.Cw(opt.Out, t.Muted, fmt.Sprintf("%d parts", len(parts)))),
		"",
	}
	lines = append(lines, ui.CatalogLines(opt.Out, parts, opt.Config.Currency)...)
	ui.Panel(opt.Out, lines)
	return 0
}

func doSearch(query string, opt Options) int {
	matches := billing.Suggest(loadCatalog(opt), query)
	t := ui.Current()
	lines := []string{ui.Cw(opt.Out, t.Accent, fmt.Sprintf("Search %q", query)), ""}
	lines = append(lines, ui.CatalogLines(opt.Out, matches, opt.Config.Currency)...)
	ui.Panel(opt.Out, lines)
	return 0
}

func doBill(args []string, opt Options) int {
	fs := flag.NewFlagSet("bill", flag.ContinueOnError)
	fs.SetOutput(opt.Err)
	name := fs.String("name", "", "customer name")
	address := fs.String("address", "", "customer address")
	calendar := fs.String("calendar", "AD", "calendar of -date: AD or BS")
	date := fs.String("date", "", "bill date")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		ui.Fail(opt.Err, "usage: partbill bill [flags] <id>[xN]...")
		return 2
	}

	parts := loadCatalog(opt)
	byID := make(map[int64]model.Part, len(parts))
	for _, p := range parts {
		byID[p.ID] = p
	}

	s := billing.NewSession(parts, opt.Now)
	for _, tok := range fs.Args() {
		id, n, err := parseBillToken(tok)
		if err != nil {
			ui.Fail(opt.Err, "bill: "+err.Error())
			return 2
		}
		p, found := byID[id]
		if !found {
			ui.Fail(opt.Err, fmt.Sprintf("bill: unknown part id %d", id))
			fmt.Fprintln(opt.Err, ui.Cw(opt.Err, ui.Current().Muted, "Hint: run `partbill catalog` to see valid ids"))
			return 2
		}
		s.AddPart(p)
		s.AdjustQuantity(p.ID, n-1)
	}

	h := s.Header()
	h.Customer = strings.TrimSpace(*name)
	h.Address = strings.TrimSpace(*address)
	h.Calendar = model.ParseCalendar(*calendar)
	if d := strings.TrimSpace(*date); d != "" {
		if h.Calendar == model.CalendarBS {
			h.BSDate = d
		} else {
			h.ADDate = d
		}
	}
	s.SetHeader(h)

	opt.Log.Debug().Str("bill_no", h.BillNo).Int("items", len(s.CurrentLedger())).Float64("total", s.Total()).Msg("bill_built")
	printBill(s, opt)
	return 0
}

// maxTokenQuantity bounds the count in a single "<id>x<count>" token.
const maxTokenQuantity = 1_000_000

// parseBillToken reads "<id>" or "<id>x<count>".
func parseBillToken(tok string) (id int64, n int, err error) {
	idText, countText, hasCount := strings.Cut(strings.ToLower(tok), "x")
	id, err = strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("not a part id: %s", tok)
	}
	n = 1
	if hasCount {
		n, err = strconv.Atoi(countText)
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("bad quantity in %s", tok)
		}
		if n > maxTokenQuantity {
			return 0, 0, fmt.Errorf("quantity in %s exceeds %d", tok, maxTokenQuantity)
		}
	}
	return id, n, nil
}
