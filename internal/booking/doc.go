// Package booking holds the state behind the booking screens, from the search
// form through to the confirmation and its calendar export.
package booking
