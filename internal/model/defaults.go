package model

import "time"

// Shared defaults used by both the server and TUI binaries.
const (
	DefaultTypingDelay  = 40 * time.Millisecond
	DefaultStartDelay   = 500 * time.Millisecond
	DefaultHTTPAddr     = "127.0.0.1:8080"
	DefaultHeroSection  = "hero"
	DefaultAboutSection = "about"
)

// DefaultProfile returns the built-in portfolio content.
func DefaultProfile() Profile {
	return Profile{
		Name:    "Melissa Adu-Poku",
		Heading: "Hi, I'm Melissa Adu-Poku",
		Tagline: "A Fullstack Software Engineer",
		Bio: "I specialise in building powerful performant applications and user " +
			"experiences that solve real world painpoints, improve and automate " +
			"workflows, and leverage AI innovation to solve complex problems.",
		TechStack: []string{
			"TypeScript", "React", "Next.js", "Python",
			"React Native", "JavaScript", "HTML/CSS", "AI/ML",
		},
		Contacts: []ContactLink{
			{Label: "GitHub", Href: "https://github.com/mpokumt", Icon: "⌥"},
			{Label: "LinkedIn", Href: "https://linkedin.com/in/melissa19", Icon: "in"},
			{Label: "Email", Href: "mailto:melissaadupoku@gmail.com", Icon: "✉"},
		},
		Resume: Resume{
			Path:         "static/my_resume.pdf",
			DownloadName: "Melissa Adu-Poku.pdf",
		},
		Sections: []NavItem{
			{ID: DefaultHeroSection, Label: "Home"},
			{ID: DefaultAboutSection, Label: "About"},
			{ID: "projects", Label: "Projects"},
			{ID: "experience", Label: "Experience"},
			{ID: "contact", Label: "Contact"},
		},
		Bodies: map[string]string{
			DefaultAboutSection: "Fullstack engineer focused on product quality, " +
				"accessible interfaces and pragmatic automation.",
			"projects":   "Selected work lives on GitHub.",
			"experience": "Frontend, backend and mobile delivery across product teams.",
			"contact":    "Reach out by email or LinkedIn.",
		},
	}
}
