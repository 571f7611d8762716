package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Submit   key.Binding
	Dates    key.Binding
	Guests   key.Binding
	Search   key.Binding
	SignIn   key.Binding
	SignUp   key.Binding
	AddRoom  key.Binding
	DropRoom key.Binding
	Checkout key.Binding
	Export   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/-", "less")),
		Right:    key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/+", "more")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Dates:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "dates")),
		Guests:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "guests")),
		Search:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		SignIn:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "sign in")),
		SignUp:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "sign up")),
		AddRoom:  key.NewBinding(key.WithKeys("a", "enter"), key.WithHelp("a", "reserve")),
		DropRoom: key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove")),
		Checkout: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "checkout")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export .ics")),
	}
}

// footerBindings lists the keys that matter on the current screen.
func (a *App) footerBindings() []key.Binding {
	k := a.keys
	switch a.modal {
	case modalDates:
		return []key.Binding{k.Back, k.Quit}
	case modalGuests:
		return []key.Binding{k.Up, k.Down, k.Left, k.Right, withHelp(k.Enter, "apply"), k.Back}
	}
	account := k.SignIn
	if a.user != nil {
		account = withHelp(k.SignIn, "sign out")
	}
	switch a.state {
	case viewSearch:
		return []key.Binding{k.Next, k.Search, k.Dates, k.Guests, account, k.Quit}
	case viewResults:
		return []key.Binding{k.Up, k.Down, withHelp(k.Enter, "availability"), k.Back, account, k.Quit}
	case viewHotel:
		return []key.Binding{k.Up, k.Down, k.AddRoom, k.DropRoom, k.Checkout, k.Back, k.Quit}
	case viewCheckout:
		return []key.Binding{k.Next, k.Prev, withHelp(k.Submit, "book"), k.Back, k.Quit}
	case viewConfirmation:
		return []key.Binding{k.Export, withHelp(k.Enter, "new search"), k.Quit}
	case viewSignIn:
		return []key.Binding{k.Next, withHelp(k.Enter, "sign in"), k.SignUp, k.Back, k.Quit}
	case viewSignUp:
		return []key.Binding{k.Next, withHelp(k.Enter, "register"), k.Back, k.Quit}
	}
	return []key.Binding{k.Quit}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
