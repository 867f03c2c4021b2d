package models

import (
	"github.com/Azu-ul/portfolio-back/internal/domain/content"
)

// GORM models for the site content singletons. Each table is meant to
// hold exactly one row with id = 1.

// SiteHeaderModel is the GORM database model for the header section
type SiteHeaderModel struct {
	ID          int64  `gorm:"primaryKey"`
	MainTitle   string `gorm:"type:varchar(255)"`
	Subtitle    string `gorm:"type:varchar(255)"`
	CtaText     string `gorm:"type:varchar(255)"`
	LinkedinURL string `gorm:"type:varchar(512);column:linkedin_url"`
	WebsiteURL  string `gorm:"type:varchar(512);column:website_url"`
}

// TableName specifies the table name for GORM
func (SiteHeaderModel) TableName() string {
	return "site_header"
}

// ToDomain converts GORM model to domain entity
func (m *SiteHeaderModel) ToDomain() *content.Header {
	return &content.Header{
		MainTitle:   m.MainTitle,
		Subtitle:    m.Subtitle,
		CtaText:     m.CtaText,
		LinkedinURL: m.LinkedinURL,
		WebsiteURL:  m.WebsiteURL,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SiteHeaderModel) FromDomain(h *content.Header) {
	m.MainTitle = h.MainTitle
	m.Subtitle = h.Subtitle
	m.CtaText = h.CtaText
	m.LinkedinURL = h.LinkedinURL
	m.WebsiteURL = h.WebsiteURL
}

// SiteAboutModel is the GORM database model for the about section
type SiteAboutModel struct {
	ID         int64  `gorm:"primaryKey"`
	Title      string `gorm:"type:varchar(255)"`
	Paragraph1 string `gorm:"type:text;column:paragraph_1"`
	Paragraph2 string `gorm:"type:text;column:paragraph_2"`
}

// TableName specifies the table name for GORM
func (SiteAboutModel) TableName() string {
	return "site_about"
}

// ToDomain converts GORM model to domain entity
func (m *SiteAboutModel) ToDomain() *content.About {
	return &content.About{
		Title:      m.Title,
		Paragraph1: m.Paragraph1,
		Paragraph2: m.Paragraph2,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SiteAboutModel) FromDomain(a *content.About) {
	m.Title = a.Title
	m.Paragraph1 = a.Paragraph1
	m.Paragraph2 = a.Paragraph2
}

// SiteContactModel is the GORM database model for the contact section
type SiteContactModel struct {
	ID       int64  `gorm:"primaryKey"`
	Title    string `gorm:"type:varchar(255)"`
	Email    string `gorm:"type:varchar(255)"`
	Website  string `gorm:"type:varchar(512)"`
	Location string `gorm:"type:varchar(255)"`
	Linkedin string `gorm:"type:varchar(512)"`
}

// TableName specifies the table name for GORM
func (SiteContactModel) TableName() string {
	return "site_contact"
}

// ToDomain converts GORM model to domain entity
func (m *SiteContactModel) ToDomain() *content.Contact {
	return &content.Contact{
		Title:    m.Title,
		Email:    m.Email,
		Website:  m.Website,
		Location: m.Location,
		Linkedin: m.Linkedin,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SiteContactModel) FromDomain(c *content.Contact) {
	m.Title = c.Title
	m.Email = c.Email
	m.Website = c.Website
	m.Location = c.Location
	m.Linkedin = c.Linkedin
}

// SiteFooterModel is the GORM database model for the footer section
type SiteFooterModel struct {
	ID            int64  `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(255)"`
	Description   string `gorm:"type:varchar(512)"`
	LocationText  string `gorm:"type:varchar(255);column:location_text"`
	SpecialtyText string `gorm:"type:varchar(255);column:specialty_text"`
}

// TableName specifies the table name for GORM
func (SiteFooterModel) TableName() string {
	return "site_footer"
}

// ToDomain converts GORM model to domain entity
func (m *SiteFooterModel) ToDomain() *content.Footer {
	return &content.Footer{
		Name:          m.Name,
		Description:   m.Description,
		LocationText:  m.LocationText,
		SpecialtyText: m.SpecialtyText,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SiteFooterModel) FromDomain(f *content.Footer) {
	m.Name = f.Name
	m.Description = f.Description
	m.LocationText = f.LocationText
	m.SpecialtyText = f.SpecialtyText
}
