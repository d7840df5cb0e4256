package content

import "errors"

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageFrench  Language = "fr"

	DefaultLanguage = LanguageEnglish
)

var (
	ErrUnknownLanguage = errors.New("unknown language")
	ErrNotFound        = errors.New("not found")
)

// Content is everything the page renders for one language.
type Content struct {
	Meta         Meta          `yaml:"meta" json:"meta" validate:"required"`
	Nav          Nav           `yaml:"nav" json:"nav" validate:"required"`
	Hero         Hero          `yaml:"hero" json:"hero" validate:"required"`
	Services     []Service     `yaml:"services" json:"services" validate:"required,min=1,dive"`
	About        About         `yaml:"about" json:"about" validate:"required"`
	Team         []TeamMember  `yaml:"team" json:"team" validate:"required,min=1,dive"`
	Testimonials []Testimonial `yaml:"testimonials" json:"testimonials" validate:"required,min=1,dive"`
	Contact      Contact       `yaml:"contact" json:"contact" validate:"required"`
	Projects     []Project     `yaml:"projects" json:"projects" validate:"required,min=1,dive"`
	Chat         Chat          `yaml:"chat" json:"chat" validate:"required"`
	Footer       Footer        `yaml:"footer" json:"footer" validate:"required"`
}

type Meta struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Keywords    []string `yaml:"keywords" json:"keywords" validate:"required,min=1,dive,required"`
	Canonical   string   `yaml:"canonical" json:"canonical" validate:"required,url"`
	Image       string   `yaml:"image" json:"image" validate:"required"`
	Locale      string   `yaml:"locale" json:"locale" validate:"required"`
}

type Nav struct {
	Home     string `yaml:"home" json:"home" validate:"required"`
	Services string `yaml:"services" json:"services" validate:"required"`
	About    string `yaml:"about" json:"about" validate:"required"`
	Team     string `yaml:"team" json:"team" validate:"required"`
	Contact  string `yaml:"contact" json:"contact" validate:"required"`
}

type Hero struct {
	Title          string `yaml:"title" json:"title" validate:"required"`
	Highlight      string `yaml:"highlight" json:"highlight" validate:"required"`
	Subtitle       string `yaml:"subtitle" json:"subtitle" validate:"required"`
	PrimaryCTA     string `yaml:"primary_cta" json:"primary_cta" validate:"required"`
	SecondaryCTA   string `yaml:"secondary_cta" json:"secondary_cta" validate:"required"`
	ServicesIntro  string `yaml:"services_intro" json:"services_intro" validate:"required"`
	TeamIntro      string `yaml:"team_intro" json:"team_intro" validate:"required"`
	ContactIntro   string `yaml:"contact_intro" json:"contact_intro" validate:"required"`
	ClientsHeading string `yaml:"clients_heading" json:"clients_heading" validate:"required"`
}

type Service struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Icon        string `yaml:"icon" json:"icon" validate:"required"`
}

type About struct {
	Title      string   `yaml:"title" json:"title" validate:"required"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs" validate:"required,min=1,dive,required"`
	Stats      []Stat   `yaml:"stats" json:"stats" validate:"required,min=1,dive"`
	Tagline    string   `yaml:"tagline" json:"tagline" validate:"required"`
}

type Stat struct {
	Value string `yaml:"value" json:"value" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

type TeamMember struct {
	ID     string `yaml:"id" json:"id" validate:"required"`
	Name   string `yaml:"name" json:"name" validate:"required"`
	Role   string `yaml:"role" json:"role" validate:"required"`
	Bio    string `yaml:"bio" json:"bio" validate:"required"`
	Avatar string `yaml:"avatar" json:"avatar" validate:"required"`
}

type Testimonial struct {
	Quote   string `yaml:"quote" json:"quote" validate:"required"`
	Author  string `yaml:"author" json:"author" validate:"required"`
	Company string `yaml:"company" json:"company" validate:"required"`
}

type Contact struct {
	Heading string      `yaml:"heading" json:"heading" validate:"required"`
	Address string      `yaml:"address" json:"address" validate:"required"`
	Email   string      `yaml:"email" json:"email" validate:"required,email"`
	Phone   string      `yaml:"phone" json:"phone" validate:"required"`
	Form    ContactForm `yaml:"form" json:"form" validate:"required"`
}

type ContactForm struct {
	FirstName string `yaml:"first_name" json:"first_name" validate:"required"`
	LastName  string `yaml:"last_name" json:"last_name" validate:"required"`
	Email     string `yaml:"email" json:"email" validate:"required"`
	Message   string `yaml:"message" json:"message" validate:"required"`
	Submit    string `yaml:"submit" json:"submit" validate:"required"`
}

type Project struct {
	ID      string   `yaml:"id" json:"id" validate:"required"`
	Client  string   `yaml:"client" json:"client" validate:"required"`
	Sector  string   `yaml:"sector" json:"sector" validate:"required"`
	Summary string   `yaml:"summary" json:"summary" validate:"required"`
	Metrics []Metric `yaml:"metrics" json:"metrics" validate:"required,min=1,dive"`
}

type Metric struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

type Chat struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Greeting    string `yaml:"greeting" json:"greeting" validate:"required"`
	Placeholder string `yaml:"placeholder" json:"placeholder" validate:"required"`
	Send        string `yaml:"send" json:"send" validate:"required"`
}

type Footer struct {
	Tagline   string `yaml:"tagline" json:"tagline" validate:"required"`
	Copyright string `yaml:"copyright" json:"copyright" validate:"required"`
}
