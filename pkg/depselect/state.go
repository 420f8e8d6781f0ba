package depselect

import (
	"strings"

	"golang.org/x/text/language"
)

// StateKind enumerates what the dependent control is currently showing.
type StateKind int

const (
	AwaitingSource StateKind = iota
	Loading
	Populated
	Empty
	Failed
)

func (k StateKind) String() string {
	switch k {
	case AwaitingSource:
		return "awaiting_source"
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State drives rendering of the dependent control. Items is only meaningful
// for Populated and Err only for Failed.
type State struct {
	Kind  StateKind
	Items []Box
	Err   error
}

// StateFor classifies the outcome of a completed lookup.
func StateFor(items []Box, err error) State {
	if err != nil {
		return State{Kind: Failed, Err: err}
	}
	if len(items) == 0 {
		return State{Kind: Empty}
	}
	return State{Kind: Populated, Items: items}
}

// Messages holds the literal strings shown by placeholder options.
type Messages struct {
	SelectSourceFirst string
	Loading           string
	NoItems           string
	LoadFailed        string
	// Unavailable is appended to the label of disabled boxes unless
	// HideUnavailable is set.
	Unavailable     string
	HideUnavailable bool
}

// DefaultMessages returns the English strings.
func DefaultMessages() Messages {
	return Messages{
		SelectSourceFirst: "-- Select a warehouse first --",
		Loading:           "Loading...",
		NoItems:           "No boxes available in this warehouse",
		LoadFailed:        "Failed to load the list",
		Unavailable:       "(unavailable)",
	}
}

// RussianMessages returns the strings used by the storage site pages.
func RussianMessages() Messages {
	return Messages{
		SelectSourceFirst: "-- Сначала выберите склад --",
		Loading:           "Загрузка...",
		NoItems:           "Нет доступных боксов на этом складе",
		LoadFailed:        "Ошибка загрузки списка",
		Unavailable:       "(Недоступен)",
	}
}

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

// MatchLocale reduces a locale or Accept-Language value to one of the
// supported languages, "en" or "ru".
func MatchLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "en"
	}
	if _, idx := language.MatchStrings(localeMatcher, locale); idx == 1 {
		return "ru"
	}
	return "en"
}

// MessagesForLocale picks the message set for locale, falling back to
// DefaultMessages.
func MessagesForLocale(locale string) Messages {
	if MatchLocale(locale) == "ru" {
		return RussianMessages()
	}
	return DefaultMessages()
}

func (m Messages) withDefaults() Messages {
	def := DefaultMessages()
	if m.SelectSourceFirst == "" {
		m.SelectSourceFirst = def.SelectSourceFirst
	}
	if m.Loading == "" {
		m.Loading = def.Loading
	}
	if m.NoItems == "" {
		m.NoItems = def.NoItems
	}
	if m.LoadFailed == "" {
		m.LoadFailed = def.LoadFailed
	}
	if m.Unavailable == "" {
		m.Unavailable = def.Unavailable
	}
	return m
}

// Render maps a state onto the option list of the dependent control. Items
// keep the order in which they were received.
func Render(state State, messages Messages) []Option {
	messages = messages.withDefaults()
	switch state.Kind {
	case AwaitingSource:
		return placeholder(messages.SelectSourceFirst)
	case Loading:
		return placeholder(messages.Loading)
	case Empty:
		return placeholder(messages.NoItems)
	case Failed:
		return placeholder(messages.LoadFailed)
	case Populated:
		if len(state.Items) == 0 {
			return placeholder(messages.NoItems)
		}
		out := make([]Option, 0, len(state.Items))
		for _, box := range state.Items {
			label := box.Label
			if box.Disabled && !messages.HideUnavailable {
				label += " " + messages.Unavailable
			}
			out = append(out, Option{
				Value:    box.ID,
				Label:    label,
				Disabled: box.Disabled,
			})
		}
		return out
	default:
		return placeholder(messages.LoadFailed)
	}
}

func placeholder(label string) []Option {
	return []Option{{Value: "", Label: label, Placeholder: true}}
}
