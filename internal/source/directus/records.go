package directus

import (
	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
)

// ProjectRecord is a row of the projects collection. Tech is the M2M alias
// populated through projects_technologies.
type ProjectRecord struct {
	ID                 normalize.ID        `json:"id"`
	Slug               string              `json:"slug"`
	Title              string              `json:"title"`
	Subtitle           *string             `json:"subtitle"`
	Description        string              `json:"description"`
	Tech               []normalize.TechRef `json:"tech"`
	LinkCode           *string             `json:"link_code"`
	LinkDemo           *string             `json:"link_demo"`
	Image              *string             `json:"image"`
	Icon               *string             `json:"icon"`
	Featured           *bool               `json:"featured"`
	Client             *string             `json:"client"`
	Location           *string             `json:"location"`
	ServiceType        *string             `json:"service_type"`
	Overview           *string             `json:"overview"` // HTML from the WYSIWYG interface
	Process            []normalize.Step    `json:"process"`
	Results            []models.Metric     `json:"results"`
	TestimonialContent *string             `json:"testimonial_content"`
	TestimonialAuthor  *string             `json:"testimonial_author"`
	TestimonialRole    *string             `json:"testimonial_role"`
	FinalThoughts      *string             `json:"final_thoughts"`
}

// HomeRecord is the flat home singleton. Repeaters are JSON columns.
type HomeRecord struct {
	HeroTopText        *string             `json:"hero_top_text"`
	HeroHeadline       *string             `json:"hero_headline"`
	HeroSubheadline    *string             `json:"hero_subheadline"`
	HeroButtons        []models.Button     `json:"hero_buttons"`
	AboutTitle         *string             `json:"about_title"`
	AboutContent       *string             `json:"about_content"`
	AboutStats         []models.Stat       `json:"about_stats"`
	SkillsTitle        *string             `json:"skills_title"`
	SkillsCategories   []SkillCategoryRow  `json:"skills_categories"`
	ProjectsTitle      *string             `json:"projects_title"`
	ContactTitle       *string             `json:"contact_title"`
	ContactHeading     *string             `json:"contact_heading"`
	ContactContent     *string             `json:"contact_content"`
	ContactEmail       *string             `json:"contact_email"`
	ContactSocialLinks []models.SocialLink `json:"contact_social_links"`
}

type SkillCategoryRow struct {
	Category string              `json:"category"`
	Items    []normalize.TechRef `json:"items"`
}

type SiteSettingsRecord struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	LogoText    *string          `json:"logo_text"`
	FooterText  *string          `json:"footer_text"`
	NavItems    []models.NavItem `json:"nav_items"`
}

// Normalizer maps Directus-shaped records onto canonical entities. The
// Postgres repositories read the same schema and reuse it.
type Normalizer struct {
	Assets source.AssetResolver
}

func (n Normalizer) Project(r ProjectRecord) (models.Project, error) {
	p := models.Project{
		ID:          string(r.ID),
		Slug:        r.Slug,
		Title:       r.Title,
		Subtitle:    str(r.Subtitle),
		Description: r.Description,
		Tech:        normalize.Tech(r.Tech),
		Links: models.Links{
			Code: str(r.LinkCode),
			Demo: str(r.LinkDemo),
		},
		Image:         n.Assets.Resolve(str(r.Image)),
		Icon:          str(r.Icon),
		Featured:      r.Featured != nil && *r.Featured,
		Client:        str(r.Client),
		Location:      str(r.Location),
		ServiceType:   str(r.ServiceType),
		Process:       normalize.Process(r.Process),
		Results:       r.Results,
		Testimonial:   normalize.Testimonial(str(r.TestimonialContent), str(r.TestimonialAuthor), str(r.TestimonialRole)),
		FinalThoughts: str(r.FinalThoughts),
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	if o := str(r.Overview); o != "" {
		p.Overview = models.HTML(o)
	}
	return p, nil
}

// Home splits the flat record into sections. A section whose fields are all
// empty is reported as absent.
func (n Normalizer) Home(r HomeRecord) *models.HomeContent {
	h := &models.HomeContent{}

	hero := models.Hero{
		TopText:     str(r.HeroTopText),
		Subheadline: str(r.HeroSubheadline),
		Buttons:     r.HeroButtons,
	}
	if s := str(r.HeroHeadline); s != "" {
		hero.Headline = models.HTML(s)
	}
	if hero.TopText != "" || hero.Headline != nil || hero.Subheadline != "" || len(hero.Buttons) > 0 {
		h.Hero = &hero
	}

	about := models.About{Title: str(r.AboutTitle), Stats: r.AboutStats}
	if s := str(r.AboutContent); s != "" {
		about.Content = models.HTML(s)
	}
	if about.Title != "" || about.Content != nil || len(about.Stats) > 0 {
		h.About = &about
	}

	skills := models.Skills{Title: str(r.SkillsTitle)}
	for _, c := range r.SkillsCategories {
		skills.Categories = append(skills.Categories, models.SkillCategory{
			Category: c.Category,
			Items:    normalize.Tech(c.Items),
		})
	}
	if skills.Title != "" || len(skills.Categories) > 0 {
		h.Skills = &skills
	}

	if t := str(r.ProjectsTitle); t != "" {
		h.Projects = &models.ProjectsLabel{Title: t}
	}

	contact := models.Contact{
		Title:       str(r.ContactTitle),
		Heading:     str(r.ContactHeading),
		Content:     str(r.ContactContent),
		Email:       str(r.ContactEmail),
		SocialLinks: r.ContactSocialLinks,
	}
	if contact.Title != "" || contact.Heading != "" || contact.Content != "" || contact.Email != "" || len(contact.SocialLinks) > 0 {
		h.Contact = &contact
	}
	return h
}

func (n Normalizer) SiteSettings(r SiteSettingsRecord) *models.SiteSettings {
	return &models.SiteSettings{
		Title:       str(r.Title),
		Description: str(r.Description),
		LogoText:    str(r.LogoText),
		FooterText:  str(r.FooterText),
		NavItems:    r.NavItems,
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
