package viewstate

import (
	"errors"

	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"

	"github.com/elliotchance/pie/v2"
	"github.com/go-playground/validator/v10"
	"github.com/samber/do"
	"github.com/samber/oops"
)

var ErrUnknownAction = errors.New("unknown action")

type transition func(s State, argument string) (State, error)

// Service applies named transitions to a client supplied state.
type Service struct {
	catalog  Catalog
	selector Selector
	validate *validator.Validate
	actions  map[string]transition
}

func New(di *do.Injector) (*Service, error) {
	return NewService(
		do.MustInvoke[*content.Service](di),
		do.MustInvoke[*responder.Service](di),
	), nil
}

func NewService(catalog Catalog, selector Selector) *Service {
	s := &Service{
		catalog:  catalog,
		selector: selector,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	s.actions = map[string]transition{
		"toggle-menu": func(st State, _ string) (State, error) { return ToggleMenu(st), nil },
		"close-menu":  func(st State, _ string) (State, error) { return CloseMenu(st), nil },
		"navigate":    NavigateTo,
		"set-language": func(st State, arg string) (State, error) {
			return SetLanguage(st, s.catalog, content.Language(arg))
		},
		"open-chat":  func(st State, _ string) (State, error) { return OpenChat(st, s.catalog) },
		"close-chat": func(st State, _ string) (State, error) { return CloseChat(st), nil },
		"send": func(st State, arg string) (State, error) {
			return Send(st, s.selector, arg)
		},
		"select-member": func(st State, arg string) (State, error) {
			return SelectMember(st, s.catalog, arg)
		},
		"close-member": func(st State, _ string) (State, error) { return CloseMember(st), nil },
		"open-dashboard": func(st State, arg string) (State, error) {
			return OpenDashboard(st, s.catalog, arg)
		},
		"close-dashboard": func(st State, _ string) (State, error) { return CloseDashboard(st), nil },
	}

	return s
}

// Actions lists the supported transition names, sorted.
func (s *Service) Actions() []string {
	return pie.Sort(pie.Keys(s.actions))
}

// Apply validates the incoming state and runs the named transition on it.
func (s *Service) Apply(state State, action, argument string) (State, error) {
	fn, ok := s.actions[action]
	if !ok {
		return state, oops.With("action", action).Wrap(ErrUnknownAction)
	}

	if err := s.validate.Struct(state); err != nil {
		return state, oops.In("viewstate").Errorf("invalid state: %w", err)
	}

	return fn(state, argument)
}
