package content

// Fixed payloads returned when a section row has not been seeded yet.

// DefaultHeader returns the fallback header copy.
func DefaultHeader() *Header {
	return &Header{
		MainTitle:   "Dra. Clara Keller",
		Subtitle:    "Neuróloga & Investigadora Especialista en Parkinson",
		CtaText:     "Conocer más →",
		LinkedinURL: "https://linkedin.com/in/clara-keller-neuro",
		WebsiteURL:  "http://www.drakeller-neuro.com",
	}
}

// DefaultAbout returns the fallback about copy.
func DefaultAbout() *About {
	return &About{
		Title:      "About Me",
		Paragraph1: "Soy Dra. Clara Keller, médica neuróloga con formación en bioquímica.",
		Paragraph2: "Desarrollo investigación en enfermedad de Parkinson.",
	}
}

// DefaultContact returns the fallback contact copy.
func DefaultContact() *Contact {
	return &Contact{
		Title:    "Contact Me",
		Email:    "clara.keller.neuro@example.com",
		Website:  "www.drakeller-neuro.com",
		Location: "Viena, Austria",
		Linkedin: "linkedin.com/in/clara-keller-neuro",
	}
}

// DefaultFooter returns the fallback footer copy.
func DefaultFooter() *Footer {
	return &Footer{
		Name:          "Dra. Clara Keller",
		Description:   "Neuróloga & Investigadora en Parkinson",
		LocationText:  "Based in Viena, Austria",
		SpecialtyText: "Especialista en Neurología y Enfermedad de Parkinson",
	}
}
