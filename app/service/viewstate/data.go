package viewstate

import "pmdsite/app/service/content"

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Entry is one line of the chat widget conversation.
type Entry struct {
	Speaker Speaker `json:"speaker" validate:"required,oneof=user bot"`
	Text    string  `json:"text"`
}

// State is the whole page view state. It is owned by the client and
// round-trips through the API unchanged except by transitions.
type State struct {
	MenuOpen         bool             `json:"menu_open"`
	Section          string           `json:"section"`
	Language         content.Language `json:"language"`
	ChatOpen         bool             `json:"chat_open"`
	Conversation     []Entry          `json:"conversation" validate:"max=50,dive"`
	SelectedMember   string           `json:"selected_member"`
	DashboardProject string           `json:"dashboard_project"`
}

// Selector produces the assistant answer for an utterance.
type Selector interface {
	Reply(utterance string) string
}

// Catalog resolves what a transition needs to know about the site content.
type Catalog interface {
	Has(lang content.Language) bool
	Get(lang content.Language) (*content.Content, error)
	TeamMember(lang content.Language, id string) (*content.TeamMember, error)
	Project(lang content.Language, id string) (*content.Project, error)
}
