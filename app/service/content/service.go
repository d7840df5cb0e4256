package content

import (
	_ "embed"
	"log/slog"

	"github.com/elliotchance/pie/v2"
	"github.com/go-playground/validator/v10"
	"github.com/samber/do"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embeddedContent []byte

type Service struct {
	tables map[Language]*Content
}

func New(_ *do.Injector) (*Service, error) {
	tables, err := Parse(embeddedContent)
	if err != nil {
		return nil, err
	}

	slog.Info("Site content loaded", "languages", pie.Sort(pie.Keys(tables)))

	return &Service{
		tables: tables,
	}, nil
}

// Parse decodes a language table and checks that every language is complete
// and structurally identical to the default one.
func Parse(data []byte) (map[Language]*Content, error) {
	var tables map[Language]*Content
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, oops.In("content").Errorf("failed to parse content table: %w", err)
	}

	base, ok := tables[DefaultLanguage]
	if !ok || base == nil {
		return nil, oops.In("content").With("language", DefaultLanguage).
			Errorf("default language is missing: %w", ErrUnknownLanguage)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	for lang, table := range tables {
		if table == nil {
			return nil, oops.In("content").With("language", lang).Errorf("empty content table")
		}
		if err := validate.Struct(table); err != nil {
			return nil, oops.In("content").With("language", lang).Errorf("invalid content table: %w", err)
		}
		if err := checkParity(base, table); err != nil {
			return nil, oops.In("content").With("language", lang).Wrap(err)
		}
	}

	return tables, nil
}

func checkParity(base, other *Content) error {
	counts := []struct {
		name        string
		left, right int
	}{
		{"services", len(base.Services), len(other.Services)},
		{"about.stats", len(base.About.Stats), len(other.About.Stats)},
		{"team", len(base.Team), len(other.Team)},
		{"testimonials", len(base.Testimonials), len(other.Testimonials)},
		{"projects", len(base.Projects), len(other.Projects)},
	}
	for _, c := range counts {
		if c.left != c.right {
			return oops.With("section", c.name, "expected", c.left, "actual", c.right).
				Errorf("section %s has a different number of entries", c.name)
		}
	}

	teamIDs := func(members []TeamMember) []string {
		return pie.Map(members, func(m TeamMember) string { return m.ID })
	}
	if !pie.Equals(teamIDs(base.Team), teamIDs(other.Team)) {
		return oops.Errorf("team member ids differ")
	}

	for i, project := range base.Projects {
		if project.ID != other.Projects[i].ID {
			return oops.With("expected", project.ID, "actual", other.Projects[i].ID).
				Errorf("project ids differ")
		}
		if len(project.Metrics) != len(other.Projects[i].Metrics) {
			return oops.With("project", project.ID).Errorf("project metrics differ")
		}
	}

	return nil
}

// Get returns the content record for a language tag.
func (s *Service) Get(lang Language) (*Content, error) {
	table, ok := s.tables[lang]
	if !ok {
		return nil, oops.In("content").With("language", lang).Wrap(ErrUnknownLanguage)
	}

	return table, nil
}

func (s *Service) Has(lang Language) bool {
	_, ok := s.tables[lang]
	return ok
}

// Languages returns the available language tags, sorted.
func (s *Service) Languages() []Language {
	return pie.Sort(pie.Keys(s.tables))
}

func (s *Service) TeamMember(lang Language, id string) (*TeamMember, error) {
	table, err := s.Get(lang)
	if err != nil {
		return nil, err
	}

	index := pie.FindFirstUsing(table.Team, func(m TeamMember) bool {
		return m.ID == id
	})
	if index < 0 {
		return nil, oops.In("content").With("member", id).Wrap(ErrNotFound)
	}

	return &table.Team[index], nil
}

func (s *Service) Project(lang Language, id string) (*Project, error) {
	table, err := s.Get(lang)
	if err != nil {
		return nil, err
	}

	index := pie.FindFirstUsing(table.Projects, func(p Project) bool {
		return p.ID == id
	})
	if index < 0 {
		return nil, oops.In("content").With("project", id).Wrap(ErrNotFound)
	}

	return &table.Projects[index], nil
}
