package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/staydesk/internal/api"
)

// sign-in and sign-up field indexes
const (
	siEmail = iota
	siPassword
)

const (
	suFirstName = iota
	suLastName
	suEmail
	suPassword
)

// toggleAccount opens the sign-in screen, or signs out when a session
// exists. Tokens live only in memory.
func (a *App) toggleAccount() tea.Cmd {
	if a.user != nil {
		a.log.Info("signed out", zap.String("user", a.user.ID))
		a.user = nil
		a.client = a.client.WithToken("")
		a.setStatus("Signed out")
		return nil
	}
	if a.state != viewSignIn && a.state != viewSignUp {
		a.returnTo = a.state
	}
	a.goTo(viewSignIn)
	a.query.Blur()
	return a.signIn.setFocus(siEmail)
}

func (a *App) leaveAuth() tea.Cmd {
	back := a.returnTo
	if back == "" || back == viewSignIn || back == viewSignUp {
		back = viewSearch
	}
	a.goTo(back)
	if back == viewSearch && a.searchFocus == focusQuery {
		return a.query.Focus()
	}
	return nil
}

func (a *App) handleSignInKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		return a, a.leaveAuth()
	case key.Matches(m, a.keys.SignUp):
		a.goTo(viewSignUp)
		a.signUp.setValue(suEmail, a.signIn.value(siEmail))
		return a, a.signUp.setFocus(suFirstName)
	case key.Matches(m, a.keys.Next), m.String() == "down":
		return a, a.signIn.next()
	case key.Matches(m, a.keys.Prev), m.String() == "up":
		return a, a.signIn.prev()
	case key.Matches(m, a.keys.Enter):
		if !a.signIn.last() {
			return a, a.signIn.next()
		}
		creds := api.LoginCredentials{
			EmailAddress: a.signIn.value(siEmail),
			Password:     a.signIn.fields[siPassword].input.Value(),
		}
		if creds.EmailAddress == "" || creds.Password == "" {
			a.setError(errors.New("email and password are required"))
			return a, nil
		}
		return a, a.startLoading("Signing in...", a.loginCmd(creds))
	}
	return a, a.signIn.update(m)
}

func (a *App) loginCmd(creds api.LoginCredentials) tea.Cmd {
	client, parent, timeout := a.client, a.ctx, a.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		res, err := client.Login(ctx, creds)
		return loginDoneMsg{res: res, err: err}
	}
}

func (a *App) handleLoginDone(m loginDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = ""
	if m.err != nil || !m.res.Success {
		a.log.Warn("login failed", zap.Error(m.err))
		a.status, a.statusErr = m.res.Message, true
		a.signIn.setValue(siPassword, "")
		return a, nil
	}
	a.client = a.client.WithToken(m.res.Token)
	user := api.User{Email: a.signIn.value(siEmail)}
	if m.res.User != nil {
		user = *m.res.User
		if user.Email == "" {
			user.Email = a.signIn.value(siEmail)
		}
	}
	a.user = &user
	a.signIn.reset()
	a.setStatus(m.res.Message)
	a.log.Info("signed in", zap.String("user", user.ID))
	return a, a.leaveAuth()
}

func (a *App) handleSignUpKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.goTo(viewSignIn)
		return a, a.signIn.setFocus(siEmail)
	case key.Matches(m, a.keys.Next), m.String() == "down":
		return a, a.signUp.next()
	case key.Matches(m, a.keys.Prev), m.String() == "up":
		return a, a.signUp.prev()
	case key.Matches(m, a.keys.Enter):
		if !a.signUp.last() {
			return a, a.signUp.next()
		}
		creds := api.SignupCredentials{
			FirstName:    a.signUp.value(suFirstName),
			LastName:     a.signUp.value(suLastName),
			EmailAddress: a.signUp.value(suEmail),
			Password:     a.signUp.fields[suPassword].input.Value(),
		}
		if creds.FirstName == "" || creds.LastName == "" || creds.EmailAddress == "" || creds.Password == "" {
			a.setError(errors.New("all fields are required"))
			return a, nil
		}
		return a, a.startLoading("Creating your account...", a.signupCmd(creds))
	}
	return a, a.signUp.update(m)
}

func (a *App) signupCmd(creds api.SignupCredentials) tea.Cmd {
	client, parent, timeout := a.client, a.ctx, a.cfg.API.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		res, err := client.Signup(ctx, creds)
		return signupDoneMsg{res: res, email: creds.EmailAddress, err: err}
	}
}

// handleSignupDone sends a new account to the sign-in form with the email
// filled in.
func (a *App) handleSignupDone(m signupDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = ""
	if m.err != nil || !m.res.Success {
		a.log.Warn("signup failed", zap.Error(m.err))
		a.status, a.statusErr = m.res.Message, true
		return a, nil
	}
	a.log.Info("registered", zap.String("user", m.res.UserID))
	a.signUp.reset()
	a.goTo(viewSignIn)
	a.signIn.setValue(siEmail, m.email)
	a.setStatus(m.res.Message + " Please sign in.")
	return a, a.signIn.setFocus(siPassword)
}
