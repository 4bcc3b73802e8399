// Package portfolio declares the portfolio's command registry and binds it
// to whichever host (TUI or CLI) runs it.
package portfolio

import (
	"strings"

	"github.com/oakwood-commons/folio/pkg/palette"
)

// Host is the set of capabilities the commands act on.
type Host interface {
	// ScrollTo shows a section and reports whether it exists.
	ScrollTo(section string) bool
	ScrollTop()
	ChangeTheme(name string)
	ChangeAccent(name string)
	DownloadResume()
	CopyEmail()
	OpenSocial(platform string)
	// Close hides the palette.
	Close()
}

var navSpecs = []palette.Spec{
	{ID: "nav-home", Label: "Go to Home", Description: "Navigate to home section", Icon: "🏠", Keywords: []string{"home", "hero", "start", "top"}},
	{ID: "nav-about", Label: "Go to About", Description: "Learn more about me", Icon: "👤", Keywords: []string{"about", "bio", "profile", "me"}},
	{ID: "nav-skills", Label: "Go to Skills", Description: "View my technical skills", Icon: "⚡", Keywords: []string{"skills", "tech", "stack", "technologies"}},
	{ID: "nav-projects", Label: "Go to Projects", Description: "Explore my work", Icon: "💼", Keywords: []string{"projects", "work", "portfolio", "showcase"}},
	{ID: "nav-experience", Label: "Go to Experience", Description: "View my work experience", Icon: "🎯", Keywords: []string{"experience", "work", "timeline", "career"}},
	{ID: "nav-testimonials", Label: "Go to Testimonials", Description: "Read what others say", Icon: "💬", Keywords: []string{"testimonials", "reviews", "feedback"}},
	{ID: "nav-contact", Label: "Go to Contact", Description: "Get in touch with me", Icon: "📧", Keywords: []string{"contact", "email", "reach", "message"}},
}

var themeSpecs = []palette.Spec{
	{ID: "theme-neo-dark", Label: "Theme: Neo Dark", Description: "Switch to Neo Dark theme", Icon: "🌙", Keywords: []string{"theme", "dark", "neo", "black"}},
	{ID: "theme-minimal-light", Label: "Theme: Minimal Light", Description: "Switch to Minimal Light theme", Icon: "☀️", Keywords: []string{"theme", "light", "minimal", "white"}},
	{ID: "theme-aurora", Label: "Theme: Aurora", Description: "Switch to Aurora Dynamic theme", Icon: "🌈", Keywords: []string{"theme", "aurora", "dynamic", "colorful"}},
	{ID: "accent-blue", Label: "Accent: Blue", Description: "Set accent color to blue", Icon: "🔵", Keywords: []string{"accent", "color", "blue"}},
	{ID: "accent-purple", Label: "Accent: Purple", Description: "Set accent color to purple", Icon: "🟣", Keywords: []string{"accent", "color", "purple"}},
	{ID: "accent-pink", Label: "Accent: Pink", Description: "Set accent color to pink", Icon: "🩷", Keywords: []string{"accent", "color", "pink"}},
	{ID: "accent-green", Label: "Accent: Green", Description: "Set accent color to green", Icon: "🟢", Keywords: []string{"accent", "color", "green"}},
	{ID: "accent-orange", Label: "Accent: Orange", Description: "Set accent color to orange", Icon: "🟠", Keywords: []string{"accent", "color", "orange"}},
}

var actionSpecs = []palette.Spec{
	{ID: "action-resume", Label: "Download Resume", Description: "Download my resume PDF", Icon: "📄", Keywords: []string{"resume", "cv", "download", "pdf"}, Shortcut: "⌘D"},
	{ID: "action-email", Label: "Copy Email", Description: "Copy email address to clipboard", Icon: "📋", Keywords: []string{"email", "copy", "clipboard", "contact"}},
	{ID: "action-scroll-top", Label: "Scroll to Top", Description: "Go back to the top of the page", Icon: "⬆️", Keywords: []string{"scroll", "top", "up", "home"}},
}

var socialSpecs = []palette.Spec{
	{ID: "social-github", Label: "Open GitHub", Description: "Visit my GitHub profile", Icon: "💻", Keywords: []string{"github", "code", "repository"}},
	{ID: "social-linkedin", Label: "Open LinkedIn", Description: "Visit my LinkedIn profile", Icon: "💼", Keywords: []string{"linkedin", "professional", "network"}},
	{ID: "social-twitter", Label: "Open Twitter", Description: "Visit my Twitter profile", Icon: "🐦", Keywords: []string{"twitter", "x", "tweets"}},
}

// Specs returns the registry in display order: navigation, themes and
// accents, actions, social links.
func Specs() []palette.Spec {
	var out []palette.Spec
	for _, group := range []struct {
		category palette.Category
		specs    []palette.Spec
	}{
		{palette.CategoryNavigation, navSpecs},
		{palette.CategoryTheme, themeSpecs},
		{palette.CategoryAction, actionSpecs},
		{palette.CategorySocial, socialSpecs},
	} {
		for _, s := range group.specs {
			s.Category = group.category
			s.Keywords = append([]string(nil), s.Keywords...)
			out = append(out, s)
		}
	}
	return out
}

// Bindings maps every command id to its action on host. Navigation, resume,
// email and social actions close the palette; theme, accent and scroll to
// top leave it open.
func Bindings(host Host) map[string]func() {
	actions := make(map[string]func())
	for _, s := range navSpecs {
		section := strings.TrimPrefix(s.ID, "nav-")
		actions[s.ID] = func() {
			if host.ScrollTo(section) {
				host.Close()
			}
		}
	}
	for _, s := range themeSpecs {
		switch {
		case strings.HasPrefix(s.ID, "theme-"):
			name := strings.TrimPrefix(s.ID, "theme-")
			actions[s.ID] = func() { host.ChangeTheme(name) }
		case strings.HasPrefix(s.ID, "accent-"):
			name := strings.TrimPrefix(s.ID, "accent-")
			actions[s.ID] = func() { host.ChangeAccent(name) }
		}
	}
	actions["action-resume"] = func() {
		host.DownloadResume()
		host.Close()
	}
	actions["action-email"] = func() {
		host.CopyEmail()
		host.Close()
	}
	actions["action-scroll-top"] = host.ScrollTop
	for _, s := range socialSpecs {
		platform := strings.TrimPrefix(s.ID, "social-")
		actions[s.ID] = func() {
			host.OpenSocial(platform)
			host.Close()
		}
	}
	return actions
}

// Registry builds the bound command list for host.
func Registry(host Host) []palette.Command {
	return palette.BuildRegistry(Specs(), Bindings(host))
}
