package services

import (
	"slices"

	"portfolio/internal/models"
)

// Every resolve function below implements the same rule: a nil section is
// replaced by a copy of its default, and inside a present section each empty
// field takes the default for that field. Populated fields are never
// overwritten.

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orSlice[T any](v, def []T) []T {
	if len(v) == 0 {
		return slices.Clone(def)
	}
	return v
}

func orRichText(v, def *models.RichText) *models.RichText {
	if v.IsEmpty() {
		return def
	}
	return v
}

func resolveSiteSettings(s *models.SiteSettings, def models.SiteSettings) models.SiteSettings {
	if s == nil {
		s = &models.SiteSettings{}
	}
	return models.SiteSettings{
		Title:       orString(s.Title, def.Title),
		Description: orString(s.Description, def.Description),
		LogoText:    orString(s.LogoText, def.LogoText),
		FooterText:  orString(s.FooterText, def.FooterText),
		NavItems:    orSlice(s.NavItems, def.NavItems),
	}
}

func resolveHome(h *models.HomeContent, def models.HomeContent) models.HomeContent {
	if h == nil {
		h = &models.HomeContent{}
	}
	return models.HomeContent{
		Hero:     resolveHero(h.Hero, *def.Hero),
		About:    resolveAbout(h.About, *def.About),
		Skills:   resolveSkills(h.Skills, *def.Skills),
		Projects: resolveProjectsLabel(h.Projects, *def.Projects),
		Contact:  resolveContact(h.Contact, *def.Contact),
	}
}

func resolveHero(h *models.Hero, def models.Hero) *models.Hero {
	if h == nil {
		h = &models.Hero{}
	}
	return &models.Hero{
		TopText:     orString(h.TopText, def.TopText),
		Headline:    orRichText(h.Headline, def.Headline),
		Subheadline: orString(h.Subheadline, def.Subheadline),
		Buttons:     orSlice(h.Buttons, def.Buttons),
	}
}

func resolveAbout(a *models.About, def models.About) *models.About {
	if a == nil {
		a = &models.About{}
	}
	return &models.About{
		Title:   orString(a.Title, def.Title),
		Content: orRichText(a.Content, def.Content),
		Stats:   orSlice(a.Stats, def.Stats),
	}
}

func resolveSkills(s *models.Skills, def models.Skills) *models.Skills {
	if s == nil {
		s = &models.Skills{}
	}
	return &models.Skills{
		Title:      orString(s.Title, def.Title),
		Categories: orSlice(s.Categories, def.Categories),
	}
}

func resolveProjectsLabel(p *models.ProjectsLabel, def models.ProjectsLabel) *models.ProjectsLabel {
	if p == nil {
		p = &models.ProjectsLabel{}
	}
	return &models.ProjectsLabel{
		Title:       orString(p.Title, def.Title),
		Description: orString(p.Description, def.Description),
	}
}

func resolveContact(c *models.Contact, def models.Contact) *models.Contact {
	if c == nil {
		c = &models.Contact{}
	}
	return &models.Contact{
		Title:       orString(c.Title, def.Title),
		Heading:     orString(c.Heading, def.Heading),
		Content:     orString(c.Content, def.Content),
		Email:       orString(c.Email, def.Email),
		SocialLinks: orSlice(c.SocialLinks, def.SocialLinks),
	}
}
