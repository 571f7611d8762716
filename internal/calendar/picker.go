package calendar

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectMsg carries a selection proposed by a click. The picker does not
// apply it; the owner decides and calls SetSelection.
type SelectMsg struct {
	Selection Selection
}

// Option configures a Picker.
type Option func(*Picker)

// WithToday sets the clock used for the disabled-date rule and the today
// label. It is consulted on every click and render.
func WithToday(fn func() civil.Date) Option {
	return func(p *Picker) { p.today = fn }
}

func WithStyles(s Styles) Option {
	return func(p *Picker) { p.styles = s }
}

func WithKeyMap(k KeyMap) Option {
	return func(p *Picker) { p.keys = k }
}

// WithOnSelect registers a callback run synchronously on each accepted click.
func WithOnSelect(fn func(start, end civil.Date)) Option {
	return func(p *Picker) { p.onSelect = fn }
}

// WithAnchor shows m in the left panel instead of the current month.
func WithAnchor(m Month) Option {
	return func(p *Picker) { p.anchor = m }
}

// TodayIn returns a clock reading the current calendar date in loc.
func TodayIn(loc *time.Location) func() civil.Date {
	if loc == nil {
		loc = time.Local
	}
	return func() civil.Date { return civil.DateOf(time.Now().In(loc)) }
}

// Picker is a bubbletea component showing the anchor month and the month
// after it.
type Picker struct {
	anchor   Month
	sel      Selection
	hover    civil.Date
	cursor   civil.Date
	originX  int
	originY  int
	today    func() civil.Date
	styles   Styles
	keys     KeyMap
	onSelect func(start, end civil.Date)
}

func NewPicker(opts ...Option) *Picker {
	p := &Picker{
		today:  TodayIn(time.Local),
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(p)
	}
	t := p.today()
	if p.anchor == (Month{}) {
		p.anchor = MonthOf(t)
	}
	p.cursor = t
	if cm := MonthOf(t); cm != p.anchor && cm != p.anchor.Add(1) {
		p.cursor = p.anchor.First()
	}
	return p
}

func (p *Picker) Anchor() Month          { return p.anchor }
func (p *Picker) Selection() Selection   { return p.sel }
func (p *Picker) HoverDate() civil.Date  { return p.hover }
func (p *Picker) Cursor() civil.Date     { return p.cursor }
func (p *Picker) Today() civil.Date      { return p.today() }
func (p *Picker) KeyMap() KeyMap         { return p.keys }
func (p *Picker) SetOrigin(x, y int)     { p.originX, p.originY = x, y }
func (p *Picker) Months() (Month, Month) { return p.anchor, p.anchor.Add(1) }

// SetSelection replaces the displayed selection. A complete range drops any
// hover preview.
func (p *Picker) SetSelection(s Selection) {
	p.sel = s
	if s.State() == CompleteRange {
		p.hover = civil.Date{}
	}
	if s.HasStart() {
		p.cursor = s.Start
		if s.HasEnd() {
			p.cursor = s.End
		}
	}
}

// Advance moves the anchor one month in the direction of dir.
func (p *Picker) Advance(dir int) {
	switch {
	case dir > 0:
		p.anchor = p.anchor.Add(1)
	case dir < 0:
		p.anchor = p.anchor.Add(-1)
	}
}

// Hover records d as the hovered date.
func (p *Picker) Hover(d civil.Date) {
	p.hover = d
}

// Leave clears the hover preview.
func (p *Picker) Leave() {
	p.hover = civil.Date{}
}

// Click proposes the selection a click on d produces. Disabled dates return a
// nil command and never reach the callback.
func (p *Picker) Click(d civil.Date) tea.Cmd {
	next, ok := p.sel.Click(d, p.today())
	if !ok {
		return nil
	}
	return p.emit(next)
}

// Quick completes the range with the given number of nights.
func (p *Picker) Quick(nights int) tea.Cmd {
	next, ok := p.sel.Extend(nights, p.cursor, p.today())
	if !ok {
		return nil
	}
	return p.emit(next)
}

func (p *Picker) emit(next Selection) tea.Cmd {
	if p.onSelect != nil {
		p.onSelect(next.Start, next.End)
	}
	return func() tea.Msg { return SelectMsg{Selection: next} }
}

// Cells returns the visual state of both displayed grids.
func (p *Picker) Cells() [2][]Cell {
	today := p.today()
	var out [2][]Cell
	for i := range out {
		days := GenerateDays(p.anchor.Add(i))
		cells := make([]Cell, len(days))
		for j, d := range days {
			cells[j] = CellState(d.Date, d.InMonth, p.sel, p.hover, today)
		}
		out[i] = cells
	}
	return out
}

// DateAt maps terminal coordinates to a grid day using the origin set with
// SetOrigin.
func (p *Picker) DateAt(x, y int) (Day, bool) {
	col, row := x-p.originX, y-p.originY-headerRows
	if col < 0 || row < 0 || row >= GridSize/7 {
		return Day{}, false
	}
	stride := panelWidth + panelGap
	panel, within := col/stride, col%stride
	if panel > 1 || within >= panelWidth {
		return Day{}, false
	}
	days := GenerateDays(p.anchor.Add(panel))
	return days[row*7+within/cellWidth], true
}

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return p, p.handleKey(m)
	case tea.MouseMsg:
		return p, p.handleMouse(m)
	}
	return p, nil
}

func (p *Picker) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, p.keys.Left):
		p.moveCursor(-1)
	case key.Matches(m, p.keys.Right):
		p.moveCursor(1)
	case key.Matches(m, p.keys.Up):
		p.moveCursor(-7)
	case key.Matches(m, p.keys.Down):
		p.moveCursor(7)
	case key.Matches(m, p.keys.PrevMonth):
		p.Advance(-1)
		p.setCursor(AddMonths(p.cursor, -1))
	case key.Matches(m, p.keys.NextMonth):
		p.Advance(1)
		p.setCursor(AddMonths(p.cursor, 1))
	case key.Matches(m, p.keys.Today):
		p.setCursor(p.today())
	case key.Matches(m, p.keys.Select):
		return p.Click(p.cursor)
	case key.Matches(m, p.keys.Quick):
		return p.Quick(QuickNights[m.String()])
	}
	return nil
}

func (p *Picker) handleMouse(m tea.MouseMsg) tea.Cmd {
	day, ok := p.DateAt(m.X, m.Y)
	if !ok {
		if m.Action == tea.MouseActionMotion {
			p.Leave()
		}
		return nil
	}
	switch {
	case m.Action == tea.MouseActionMotion:
		p.Hover(day.Date)
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		p.cursor = day.Date
		return p.Click(day.Date)
	}
	return nil
}

func (p *Picker) moveCursor(days int) {
	p.setCursor(p.cursor.AddDays(days))
}

// setCursor moves the keyboard cursor, which doubles as the hover position,
// and pages the anchor so the cursor stays visible.
func (p *Picker) setCursor(d civil.Date) {
	p.cursor = d
	p.hover = d
	cm := MonthOf(d)
	switch {
	case cm.before(p.anchor):
		p.anchor = cm
	case p.anchor.Add(1).before(cm):
		p.anchor = cm.Add(-1)
	}
}

func (m Month) before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}
