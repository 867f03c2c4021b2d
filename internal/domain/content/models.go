package content

// Site content singletons. Each table holds exactly one row (id = 1) of
// copy-editable text; readers receive the same shape whether the row is
// seeded or synthesized from defaults.

// Header is the editable copy of the page header section.
type Header struct {
	MainTitle   string `json:"main_title"`
	Subtitle    string `json:"subtitle"`
	CtaText     string `json:"cta_text"`
	LinkedinURL string `json:"linkedin_url"`
	WebsiteURL  string `json:"website_url"`
}

// About is the editable copy of the about section.
type About struct {
	Title      string `json:"title"`
	Paragraph1 string `json:"paragraph_1"`
	Paragraph2 string `json:"paragraph_2"`
}

// Contact is the editable copy of the contact section.
type Contact struct {
	Title    string `json:"title"`
	Email    string `json:"email"`
	Website  string `json:"website"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
}

// Footer is the editable copy of the page footer section.
type Footer struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	LocationText  string `json:"location_text"`
	SpecialtyText string `json:"specialty_text"`
}
