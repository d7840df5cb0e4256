package responder

// Rule maps a set of trigger substrings to a canned response.
// Triggers are lower-case.
type Rule struct {
	Name     string   `json:"name"`
	Triggers []string `json:"triggers"`
	Response string   `json:"response"`
}

const (
	servicesResponse = "We offer Strategic Planning, Digital Transformation, Process Optimization, " +
		"Market Analysis, Change Management and Performance Consulting. " +
		"Each engagement is tailored to your business challenges and growth objectives."

	teamResponse = "Our team: Sarah Johnson (Managing Partner), Michael Chen (Senior Consultant), " +
		"Emily Rodriguez (Operations Specialist), David Okafor (Data & Analytics Lead), " +
		"Claire Dubois (Change Management Director) and Marcus Lee (Energy Sector Specialist). " +
		"Click any team member on the page to read their full bio."

	projectsResponse = "Our flagship case study is the energy efficiency program for Northwind Energy: " +
		"a full operations and digital overhaul that delivered a +58.1% ROI, " +
		"22% lower operating costs and a 35% faster reporting cycle. Open the project dashboard for the details."

	contactResponse = "You can reach us at hello@pmdconsulting.com or +1 (555) 123-4567. " +
		"Our office is at 123 Business District, Suite 100, New York, NY 10001."

	originResponse = "PMD Consulting was founded more than a decade ago with a vision to transform businesses " +
		"through strategic innovation. Since then we have completed 500+ projects with 98% client satisfaction."

	defaultResponse = "Thanks for your message! I can tell you about our services, our team, " +
		"our projects or how to contact us. What would you like to know?"
)

// defaultRules is evaluated top to bottom, the first rule with a matching trigger wins.
var defaultRules = []Rule{
	{
		Name:     "services",
		Triggers: []string{"service", "offer", "consulting", "strategy", "transformation", "help with"},
		Response: servicesResponse,
	},
	{
		Name:     "team",
		Triggers: []string{"team", "who", "people", "staff", "consultant"},
		Response: teamResponse,
	},
	{
		Name:     "projects",
		Triggers: []string{"project", "energy", "case study", "roi", "dashboard"},
		Response: projectsResponse,
	},
	{
		Name:     "contact",
		Triggers: []string{"contact", "email", "phone", "reach", "call"},
		Response: contactResponse,
	},
	{
		Name:     "origin",
		Triggers: []string{"start", "begin", "founded", "history"},
		Response: originResponse,
	},
}
