package viewstate

import (
	"errors"
	"slices"
	"strings"

	"pmdsite/app/service/content"

	"github.com/samber/oops"
)

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrChatClosed     = errors.New("chat is closed")
)

var sections = []string{"home", "services", "about", "team", "contact"}

// Initial is the state of a freshly loaded page.
func Initial() State {
	return State{
		Section:  "home",
		Language: content.DefaultLanguage,
	}
}

func (s State) clone() State {
	s.Conversation = cloneConversation(s.Conversation)
	return s
}

func ToggleMenu(s State) State {
	next := s.clone()
	next.MenuOpen = !s.MenuOpen
	return next
}

func CloseMenu(s State) State {
	next := s.clone()
	next.MenuOpen = false
	return next
}

// NavigateTo scrolls to a section, which also collapses the mobile menu.
func NavigateTo(s State, section string) (State, error) {
	if !slices.Contains(sections, section) {
		return s, oops.With("section", section).Wrap(ErrUnknownSection)
	}

	next := s.clone()
	next.Section = section
	next.MenuOpen = false

	return next, nil
}

func SetLanguage(s State, catalog Catalog, lang content.Language) (State, error) {
	if !catalog.Has(lang) {
		return s, oops.With("language", lang).Wrap(content.ErrUnknownLanguage)
	}

	next := s.clone()
	next.Language = lang

	return next, nil
}

// OpenChat opens the widget and greets the visitor on an empty log.
func OpenChat(s State, catalog Catalog) (State, error) {
	next := s.clone()
	next.ChatOpen = true

	if len(next.Conversation) > 0 {
		return next, nil
	}

	table, err := catalog.Get(languageOrDefault(catalog, s.Language))
	if err != nil {
		return s, err
	}

	next.Conversation = appendEntry(nil, Entry{Speaker: SpeakerBot, Text: table.Chat.Greeting})

	return next, nil
}

// CloseChat closes the widget. The conversation only lives while it is open.
func CloseChat(s State) State {
	next := s.clone()
	next.ChatOpen = false
	next.Conversation = nil
	return next
}

// Send appends the utterance and the selected answer. Blank input leaves the state unchanged.
func Send(s State, selector Selector, utterance string) (State, error) {
	text := strings.TrimSpace(utterance)
	if text == "" {
		return s.clone(), nil
	}
	if !s.ChatOpen {
		return s, ErrChatClosed
	}

	next := s.clone()
	next.Conversation = appendEntry(next.Conversation, Entry{Speaker: SpeakerUser, Text: text})
	next.Conversation = appendEntry(next.Conversation, Entry{Speaker: SpeakerBot, Text: selector.Reply(text)})

	return next, nil
}

func SelectMember(s State, catalog Catalog, id string) (State, error) {
	if _, err := catalog.TeamMember(languageOrDefault(catalog, s.Language), id); err != nil {
		return s, err
	}

	next := s.clone()
	next.SelectedMember = id

	return next, nil
}

func CloseMember(s State) State {
	next := s.clone()
	next.SelectedMember = ""
	return next
}

func OpenDashboard(s State, catalog Catalog, id string) (State, error) {
	if _, err := catalog.Project(languageOrDefault(catalog, s.Language), id); err != nil {
		return s, err
	}

	next := s.clone()
	next.DashboardProject = id

	return next, nil
}

func CloseDashboard(s State) State {
	next := s.clone()
	next.DashboardProject = ""
	return next
}

func languageOrDefault(catalog Catalog, lang content.Language) content.Language {
	if catalog.Has(lang) {
		return lang
	}

	return content.DefaultLanguage
}
