package outreach

const wordpressVulnerabilitySubject = "Security Alert for {{.CompanyName}} Website"

const wordpressVulnerabilityBody = `Hi {{.ContactName}},

I was reviewing your website at {{.Website}} and noticed something important: your WordPress site has {{.PluginCount}} vulnerable plugins that are actively being exploited by hackers.

This puts your customer data, business reputation, and bottom line at risk.

I help local businesses like {{.CompanyName}} secure their WordPress sites against these threats. Most of my clients are shocked to learn how easily these vulnerabilities can be exploited - and how simple the fixes are.

A few key points:
- Your site detected: {{.ServerType}}
- WordPress site found: yes
- Vulnerable plugins: {{.PluginCount}}
- Security headers: {{.SecurityHeaders}}

Would you be open to a quick 15-minute call this week to discuss how to protect {{.CompanyName}}? No sales pitch - just honest security advice.

Best regards,
{{.SenderName}}
WordPress Security & Automation Specialist
{{.SenderPhone}}
{{.SenderEmail}}
`

const wordpressGeneralSubject = "Quick Security & Automation Opportunity for {{.CompanyName}}"

const wordpressGeneralBody = `Hi {{.ContactName}},

I noticed {{.CompanyName}} has a WordPress-powered website - great platform choice!

I work with local {{.Industry}} businesses to:
- Secure WordPress sites against common vulnerabilities
- Automate repetitive business processes
- Improve website performance & security

Based on {{.CompanyName}}'s profile, I think there are probably some quick wins we could find:

- Website security assessment (usually reveals 2-3 quick fixes)
- Automation opportunities (process efficiency, time savings)
- Performance optimization

Would you be interested in a quick 15-minute conversation? I typically find immediate improvements that save time and money.

Best regards,
{{.SenderName}}
WordPress Security & Automation Specialist
{{.SenderPhone}}
{{.SenderEmail}}
`

const generalAutomationSubject = "Efficiency Opportunity for {{.CompanyName}}"

const generalAutomationBody = `Hi {{.ContactName}},

I work with local {{.Industry}} businesses to automate repetitive tasks and save them 5-10 hours per week.

For {{.Industry}} businesses like {{.CompanyName}}, common automation opportunities include:
- Customer communication workflows
- Data entry and form processing
- Scheduling and appointment management
- Invoice generation and follow-ups
- Lead tracking and follow-up

The process is low-risk - we typically start with a free consultation to identify quick wins.

Would you have 15 minutes this week to explore what might work for {{.CompanyName}}?

Best regards,
{{.SenderName}}
Business Process & Automation Consultant
{{.SenderPhone}}
{{.SenderEmail}}
`
