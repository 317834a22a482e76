// Package outreach renders templated outreach emails for scored prospects.
// Template selection follows the detected tech stack: the vulnerability
// angle when vulnerable plugins were found, the WordPress angle when
// WordPress was detected, and a general automation pitch otherwise.
package outreach

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/amosroger91/AI-Marketing-Agent/internal/core"
)

// Sender identifies who the emails come from.
type Sender struct {
	Name  string
	Phone string
	Email string
}

// Email is one rendered outreach message.
type Email struct {
	Company        string
	Domain         string
	Score          int
	Recommendation core.Recommendation
	TemplateUsed   string
	Subject        string
	Body           string
}

type emailTemplate struct {
	name    string
	subject *template.Template
	body    *template.Template
}

type Generator struct {
	wordpressVulnerability emailTemplate
	wordpressGeneral       emailTemplate
	generalAutomation      emailTemplate
}

func NewGenerator() *Generator {
	parse := func(name, subject, body string) emailTemplate {
		return emailTemplate{
			name:    name,
			subject: template.Must(template.New(name + "_subject").Parse(subject)),
			body:    template.Must(template.New(name + "_body").Parse(body)),
		}
	}
	return &Generator{
		wordpressVulnerability: parse("wordpress_vulnerability", wordpressVulnerabilitySubject, wordpressVulnerabilityBody),
		wordpressGeneral:       parse("wordpress_general", wordpressGeneralSubject, wordpressGeneralBody),
		generalAutomation:      parse("general", generalAutomationSubject, generalAutomationBody),
	}
}

type templateData struct {
	CompanyName     string
	ContactName     string
	Website         string
	PluginCount     string
	ServerType      string
	SecurityHeaders string
	Industry        string
	SenderName      string
	SenderPhone     string
	SenderEmail     string
}

// Generate renders one email for the prospect.
func (g *Generator) Generate(p *core.ScoredProspect, sender Sender) (*Email, error) {
	tmpl := g.selectTemplate(p)

	website := p.Business.Website
	if website == "" {
		website = p.Verification.Domain
	}

	pluginCount := "unknown"
	if p.TechStack != nil && len(p.TechStack.WordPress.VulnerablePlugins) > 0 {
		pluginCount = fmt.Sprintf("%d", len(p.TechStack.WordPress.VulnerablePlugins))
	}

	serverType := p.ServerDetected()
	if serverType == "" {
		serverType = "web server"
	}

	securityHeaders := "missing"
	if count := p.SecurityHeaderCount(); count > 0 {
		securityHeaders = fmt.Sprintf("%d headers", count)
	}

	data := templateData{
		CompanyName:     p.Business.Name,
		ContactName:     "Team",
		Website:         website,
		PluginCount:     pluginCount,
		ServerType:      serverType,
		SecurityHeaders: securityHeaders,
		Industry:        GuessIndustry(p.Business.Name),
		SenderName:      sender.Name,
		SenderPhone:     sender.Phone,
		SenderEmail:     sender.Email,
	}

	var subject, body strings.Builder
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	return &Email{
		Company:        p.Business.Name,
		Domain:         p.Verification.Domain,
		Score:          p.Score,
		Recommendation: p.Recommendation,
		TemplateUsed:   tmpl.name,
		Subject:        subject.String(),
		Body:           body.String(),
	}, nil
}

// GenerateBatch renders emails for every CONTACT and MAYBE prospect.
func (g *Generator) GenerateBatch(prospects []core.ScoredProspect, sender Sender) ([]Email, error) {
	var emails []Email
	for i := range prospects {
		p := &prospects[i]
		if p.Recommendation == core.RecommendExclude {
			continue
		}
		email, err := g.Generate(p, sender)
		if err != nil {
			return nil, err
		}
		emails = append(emails, *email)
	}
	return emails, nil
}

func (g *Generator) selectTemplate(p *core.ScoredProspect) emailTemplate {
	if p.TechStack != nil && len(p.TechStack.WordPress.VulnerablePlugins) > 0 {
		return g.wordpressVulnerability
	}
	if p.HasWordPress() {
		return g.wordpressGeneral
	}
	return g.generalAutomation
}
