package tui

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
	"github.com/jask/staydesk/internal/booking"
	"github.com/jask/staydesk/internal/calendar"
	"github.com/jask/staydesk/internal/config"
)

const appName = "staydesk"

type appState string

const (
	viewSearch       appState = "search"
	viewResults      appState = "results"
	viewHotel        appState = "hotel"
	viewCheckout     appState = "checkout"
	viewConfirmation appState = "confirmation"
	viewSignIn       appState = "signin"
	viewSignUp       appState = "signup"
)

type modalState string

const (
	modalNone   modalState = ""
	modalDates  modalState = "dates"
	modalGuests modalState = "guests"
)

// search form focus order
const (
	focusQuery = iota
	focusDates
	focusGuests
	focusButton
	searchFocusCount
)

// checkout form field indexes
const (
	coFirstName = iota
	coLastName
	coEmail
	coAddress
	coCity
	coZip
	coCountry
	coPhone
	coRequests
)

// App is the root bubbletea model.
type App struct {
	ctx    context.Context
	cfg    config.Config
	client *api.Client
	log    *zap.Logger
	loc    *time.Location
	keys   keyMap

	help    help.Model
	spinner spinner.Model
	width   int
	height  int

	state     appState
	modal     modalState
	status    string
	statusErr bool
	loading   string

	search      booking.SearchState
	query       textinput.Model
	searchFocus int
	picker      *calendar.Picker
	guestsDraft booking.Guests
	guestCursor booking.GuestKind

	resultCursor int

	hotel      *api.HotelDetails
	roomCursor int
	cart       booking.Cart

	checkout     form
	batch        *checkoutBatch
	confirmation *booking.Confirmation

	signIn   form
	signUp   form
	user     *api.User
	returnTo appState
}

// Option configures an App.
type Option func(*options)

type options struct {
	today func() civil.Date
}

// WithToday overrides the clock behind the date picker's past-date rule.
func WithToday(fn func() civil.Date) Option {
	return func(o *options) { o.today = fn }
}

func New(ctx context.Context, cfg config.Config, client *api.Client, log *zap.Logger, opts ...Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Warn("falling back to local time zone", zap.String("timezone", cfg.UI.Timezone), zap.Error(err))
		loc = time.Local
	}
	o := options{today: calendar.TodayIn(loc)}
	for _, opt := range opts {
		opt(&o)
	}

	q := textinput.New()
	q.Prompt = ""
	q.Placeholder = "Where are you going?"
	q.CharLimit = 80
	q.Width = 40
	q.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(cursorStyle))

	h := help.New()
	h.Width = 60

	guests := booking.NewGuests(cfg.Search.Adults, cfg.Search.Children, cfg.Search.Rooms)

	return &App{
		ctx:     ctx,
		cfg:     cfg,
		client:  client,
		log:     log,
		loc:     loc,
		keys:    newKeyMap(),
		help:    h,
		spinner: sp,
		state:   viewSearch,
		status:  "Where to next? Type a destination, then pick your dates.",
		search:  booking.NewSearchState(guests),
		query:   q,
		picker: calendar.NewPicker(
			calendar.WithToday(o.today),
			calendar.WithStyles(pickerStyles()),
			calendar.WithOnSelect(func(start, end civil.Date) {
				log.Debug("dates proposed", zap.Stringer("start", start), zap.Stringer("end", end))
			}),
		),
		checkout: newForm(
			newField("First name", ""),
			newField("Last name", ""),
			newField("Email", "you@example.com"),
			newField("Address", ""),
			newField("City", ""),
			newField("Zip code", ""),
			newField("Country", "name or ISO code"),
			newField("Phone", ""),
			optionalField("Special requests", "late arrival, cot, ..."),
		),
		signIn: newForm(
			newField("Email", "you@example.com"),
			passwordField("Password"),
		),
		signUp: newForm(
			newField("First name", ""),
			newField("Last name", ""),
			newField("Email", "you@example.com"),
			passwordField("Password"),
		),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type searchDoneMsg struct {
	hotels []api.Hotel
	err    error
}

type hotelLoadedMsg struct {
	hotel api.HotelDetails
	err   error
}

type loginDoneMsg struct {
	res api.LoginResponse
	err error
}

type signupDoneMsg struct {
	res   api.SignupResponse
	email string
	err   error
}

type bookingDoneMsg struct {
	booked []bookedLine
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

type errMsg struct{ error }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case spinner.TickMsg:
		if a.loading == "" {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case tea.MouseMsg:
		if a.modal == modalDates {
			a.picker.SetOrigin(a.pickerOrigin())
			var cmd tea.Cmd
			a.picker, cmd = a.picker.Update(m)
			return a, cmd
		}
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		switch a.modal {
		case modalDates:
			return a.handleDatesKey(m)
		case modalGuests:
			return a.handleGuestsKey(m)
		}
		return a.handleKey(m)
	case calendar.SelectMsg:
		return a.handleSelect(m)
	case searchDoneMsg:
		return a.handleSearchDone(m)
	case hotelLoadedMsg:
		return a.handleHotelLoaded(m)
	case loginDoneMsg:
		return a.handleLoginDone(m)
	case signupDoneMsg:
		return a.handleSignupDone(m)
	case bookingDoneMsg:
		return a.handleBookingDone(m)
	case exportDoneMsg:
		a.loading = ""
		if m.err != nil {
			a.setError(m.err)
			return a, nil
		}
		a.setStatus("Saved " + m.path)
		return a, nil
	case errMsg:
		a.loading = ""
		a.setError(m.error)
		return a, nil
	}
	return a, a.forwardToFocused(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case viewSearch:
		return a.handleSearchKey(m)
	case viewResults:
		return a.handleResultsKey(m)
	case viewHotel:
		return a.handleHotelKey(m)
	case viewCheckout:
		return a.handleCheckoutKey(m)
	case viewConfirmation:
		return a.handleConfirmationKey(m)
	case viewSignIn:
		return a.handleSignInKey(m)
	case viewSignUp:
		return a.handleSignUpKey(m)
	}
	return a, nil
}

// forwardToFocused passes non-key messages such as cursor blinks to the
// focused text input.
func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case viewSearch:
		a.query, cmd = a.query.Update(msg)
	case viewCheckout:
		cmd = a.checkout.update(msg)
	case viewSignIn:
		cmd = a.signIn.update(msg)
	case viewSignUp:
		cmd = a.signUp.update(msg)
	}
	return cmd
}

func (a *App) goTo(s appState) {
	a.log.Debug("screen", zap.String("from", string(a.state)), zap.String("to", string(s)))
	a.state = s
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.log.Warn("ui error", zap.String("screen", string(a.state)), zap.Error(err))
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// startLoading shows the spinner with label until the matching done message
// clears it.
func (a *App) startLoading(label string, cmd tea.Cmd) tea.Cmd {
	a.loading = label
	return tea.Batch(a.spinner.Tick, cmd)
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (a *App) View() string {
	var body string
	switch a.state {
	case viewResults:
		body = a.resultsView()
	case viewHotel:
		body = a.hotelView()
	case viewCheckout:
		body = a.checkoutView()
	case viewConfirmation:
		body = a.confirmationView()
	case viewSignIn:
		body = a.renderSection("Sign in", a.signIn.view())
	case viewSignUp:
		body = a.renderSection("Create an account", a.signUp.view())
	default:
		body = a.searchView()
	}

	main := a.renderHeader() + "\n\n" + body
	statusLine := a.renderStatus()
	footer := a.renderFooter(a.footerBindings())

	switch a.modal {
	case modalDates:
		return a.composeModal(main, statusLine, footer, a.datesModal())
	case modalGuests:
		return a.composeModal(main, statusLine, footer, a.guestsModal())
	}
	return a.placeWithFooter(main, statusLine, footer)
}
