package payload

import (
	"bytes"
	"encoding/json"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
)

// Upload is an upload field: the populated media document, or its bare id
// when depth is 0.
type Upload struct {
	URL string
}

func (u *Upload) UnmarshalJSON(data []byte) error {
	*u = Upload{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	var doc struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	u.URL = doc.URL
	return nil
}

type ProjectDoc struct {
	ID          normalize.ID        `json:"id"`
	Slug        string              `json:"slug"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle"`
	Description string              `json:"description"`
	Tech        []normalize.TechRef `json:"tech"`
	Links       *struct {
		Code string `json:"code"`
		Demo string `json:"demo"`
	} `json:"links"`
	Image         Upload           `json:"image"`
	Icon          string           `json:"icon"`
	Featured      bool             `json:"featured"`
	Client        string           `json:"client"`
	Location      string           `json:"location"`
	ServiceType   string           `json:"serviceType"`
	Overview      json.RawMessage  `json:"overview"`
	Process       []normalize.Step `json:"process"`
	Results       []models.Metric  `json:"results"`
	Testimonial   *struct {
		Content string `json:"content"`
		Author  string `json:"author"`
		Role    string `json:"role"`
	} `json:"testimonial"`
	FinalThoughts string `json:"finalThoughts"`
}

type HomeDoc struct {
	Hero *struct {
		TopText     string          `json:"topText"`
		Headline    json.RawMessage `json:"headline"`
		Subheadline string          `json:"subheadline"`
		Buttons     []models.Button `json:"buttons"`
	} `json:"hero"`
	About *struct {
		Title   string          `json:"title"`
		Content json.RawMessage `json:"content"`
		Stats   []models.Stat   `json:"stats"`
	} `json:"about"`
	Skills *struct {
		Title      string `json:"title"`
		Categories []struct {
			Category string              `json:"category"`
			Items    []normalize.TechRef `json:"items"`
		} `json:"categories"`
	} `json:"skills"`
	Projects *models.ProjectsLabel `json:"projects"`
	Contact  *struct {
		Title       string              `json:"title"`
		Heading     string              `json:"heading"`
		Content     string              `json:"content"`
		Email       string              `json:"email"`
		SocialLinks []models.SocialLink `json:"socialLinks"`
	} `json:"contact"`
}

type SiteSettingsDoc struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	LogoText    string `json:"logoText"`
	FooterText  string `json:"footerText"`
	NavItems    []struct {
		Label string `json:"label"`
		Link  string `json:"link"`
	} `json:"navItems"`
}

// Normalizer maps Payload documents onto canonical entities. Payload groups
// map one to one onto home sections; rich text fields are Lexical documents.
type Normalizer struct {
	Assets source.AssetResolver
}

func (n Normalizer) Project(d ProjectDoc) (models.Project, error) {
	p := models.Project{
		ID:            string(d.ID),
		Slug:          d.Slug,
		Title:         d.Title,
		Subtitle:      d.Subtitle,
		Description:   d.Description,
		Tech:          normalize.Tech(d.Tech),
		Image:         n.Assets.Resolve(d.Image.URL),
		Icon:          d.Icon,
		Featured:      d.Featured,
		Client:        d.Client,
		Location:      d.Location,
		ServiceType:   d.ServiceType,
		Overview:      document(d.Overview),
		Process:       normalize.Process(d.Process),
		Results:       d.Results,
		FinalThoughts: d.FinalThoughts,
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	if d.Links != nil {
		p.Links = models.Links{Code: d.Links.Code, Demo: d.Links.Demo}
	}
	if t := d.Testimonial; t != nil {
		p.Testimonial = normalize.Testimonial(t.Content, t.Author, t.Role)
	}
	return p, nil
}

func (n Normalizer) Home(d HomeDoc) *models.HomeContent {
	h := &models.HomeContent{}
	if d.Hero != nil {
		h.Hero = &models.Hero{
			TopText:     d.Hero.TopText,
			Headline:    document(d.Hero.Headline),
			Subheadline: d.Hero.Subheadline,
			Buttons:     d.Hero.Buttons,
		}
	}
	if d.About != nil {
		h.About = &models.About{
			Title:   d.About.Title,
			Content: document(d.About.Content),
			Stats:   d.About.Stats,
		}
	}
	if d.Skills != nil {
		skills := &models.Skills{Title: d.Skills.Title}
		for _, c := range d.Skills.Categories {
			skills.Categories = append(skills.Categories, models.SkillCategory{
				Category: c.Category,
				Items:    normalize.Tech(c.Items),
			})
		}
		h.Skills = skills
	}
	h.Projects = d.Projects
	if d.Contact != nil {
		h.Contact = &models.Contact{
			Title:       d.Contact.Title,
			Heading:     d.Contact.Heading,
			Content:     d.Contact.Content,
			Email:       d.Contact.Email,
			SocialLinks: d.Contact.SocialLinks,
		}
	}
	return h
}

func (n Normalizer) SiteSettings(d SiteSettingsDoc) *models.SiteSettings {
	s := &models.SiteSettings{
		Title:       d.Title,
		Description: d.Description,
		LogoText:    d.LogoText,
		FooterText:  d.FooterText,
	}
	for _, item := range d.NavItems {
		s.NavItems = append(s.NavItems, models.NavItem{Label: item.Label, Href: item.Link})
	}
	return s
}

func document(raw json.RawMessage) *models.RichText {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			return nil
		}
		return models.HTML(s)
	}
	return models.Document(raw)
}
