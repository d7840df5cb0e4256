package viewstate

import (
	"fmt"
	"testing"

	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"

	"github.com/stretchr/testify/require"
)

func newDeps(t *testing.T) (*content.Service, *responder.Service) {
	t.Helper()

	catalog, err := content.New(nil)
	require.NoError(t, err)
	selector, err := responder.New(nil)
	require.NoError(t, err)

	return catalog, selector
}

func TestInitial(t *testing.T) {
	s := Initial()

	require.Equal(t, "home", s.Section)
	require.Equal(t, content.LanguageEnglish, s.Language)
	require.False(t, s.MenuOpen)
	require.False(t, s.ChatOpen)
	require.Empty(t, s.Conversation)
}

func TestMenuTransitions(t *testing.T) {
	s := Initial()

	opened := ToggleMenu(s)
	require.True(t, opened.MenuOpen)
	require.False(t, s.MenuOpen)

	require.False(t, ToggleMenu(opened).MenuOpen)
	require.False(t, CloseMenu(opened).MenuOpen)

	moved, err := NavigateTo(opened, "team")
	require.NoError(t, err)
	require.Equal(t, "team", moved.Section)
	require.False(t, moved.MenuOpen)

	_, err = NavigateTo(opened, "pricing")
	require.ErrorIs(t, err, ErrUnknownSection)
}

func TestSetLanguage(t *testing.T) {
	catalog, _ := newDeps(t)

	s, err := SetLanguage(Initial(), catalog, content.LanguageFrench)
	require.NoError(t, err)
	require.Equal(t, content.LanguageFrench, s.Language)

	_, err = SetLanguage(s, catalog, "de")
	require.ErrorIs(t, err, content.ErrUnknownLanguage)
}

func TestChatLifecycle(t *testing.T) {
	catalog, selector := newDeps(t)

	s, err := OpenChat(Initial(), catalog)
	require.NoError(t, err)
	require.True(t, s.ChatOpen)
	require.Len(t, s.Conversation, 1)
	require.Equal(t, SpeakerBot, s.Conversation[0].Speaker)

	sent, err := Send(s, selector, "  What services do you offer?  ")
	require.NoError(t, err)
	require.Len(t, sent.Conversation, 3)
	require.Equal(t, Entry{Speaker: SpeakerUser, Text: "What services do you offer?"}, sent.Conversation[1])
	require.Equal(t, SpeakerBot, sent.Conversation[2].Speaker)
	require.Equal(t, selector.Reply("What services do you offer?"), sent.Conversation[2].Text)

	// the previous state is untouched
	require.Len(t, s.Conversation, 1)

	reopened, err := OpenChat(sent, catalog)
	require.NoError(t, err)
	require.Len(t, reopened.Conversation, 3)

	closed := CloseChat(sent)
	require.False(t, closed.ChatOpen)
	require.Empty(t, closed.Conversation)
	require.Len(t, sent.Conversation, 3)
}

func TestOpenChatUsesLanguageGreeting(t *testing.T) {
	catalog, _ := newDeps(t)
	fr, err := catalog.Get(content.LanguageFrench)
	require.NoError(t, err)

	s := Initial()
	s.Language = content.LanguageFrench

	s, err = OpenChat(s, catalog)
	require.NoError(t, err)
	require.Equal(t, fr.Chat.Greeting, s.Conversation[0].Text)
}

func TestSendBlankIsNoop(t *testing.T) {
	catalog, selector := newDeps(t)

	s, err := OpenChat(Initial(), catalog)
	require.NoError(t, err)

	next, err := Send(s, selector, "   \t ")
	require.NoError(t, err)
	require.Equal(t, s, next)
}

func TestSendOnClosedChat(t *testing.T) {
	_, selector := newDeps(t)

	_, err := Send(Initial(), selector, "hello")
	require.ErrorIs(t, err, ErrChatClosed)
}

func TestConversationIsBounded(t *testing.T) {
	catalog, selector := newDeps(t)

	s, err := OpenChat(Initial(), catalog)
	require.NoError(t, err)

	for i := 0; i < maxConversation; i++ {
		s, err = Send(s, selector, fmt.Sprintf("message %d", i))
		require.NoError(t, err)
	}

	require.Len(t, s.Conversation, maxConversation)
	last := s.Conversation[len(s.Conversation)-2]
	require.Equal(t, fmt.Sprintf("message %d", maxConversation-1), last.Text)
}

func TestMemberModal(t *testing.T) {
	catalog, _ := newDeps(t)

	s, err := SelectMember(Initial(), catalog, "michael-chen")
	require.NoError(t, err)
	require.Equal(t, "michael-chen", s.SelectedMember)

	require.Empty(t, CloseMember(s).SelectedMember)

	_, err = SelectMember(Initial(), catalog, "ghost")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestDashboardModal(t *testing.T) {
	catalog, _ := newDeps(t)

	s, err := OpenDashboard(Initial(), catalog, "northwind-energy")
	require.NoError(t, err)
	require.Equal(t, "northwind-energy", s.DashboardProject)

	require.Empty(t, CloseDashboard(s).DashboardProject)

	_, err = OpenDashboard(Initial(), catalog, "missing")
	require.ErrorIs(t, err, content.ErrNotFound)
}

func TestAppendEntryDropsOldest(t *testing.T) {
	var log []Entry
	for i := 0; i < maxConversation+5; i++ {
		log = appendEntry(log, Entry{Speaker: SpeakerUser, Text: fmt.Sprint(i)})
	}

	require.Len(t, log, maxConversation)
	require.Equal(t, "5", log[0].Text)
	require.Equal(t, fmt.Sprint(maxConversation+4), log[len(log)-1].Text)
}
