package model

// Go models that match the resume.schema.json used for validation and rendering.
// Field names follow the wire format produced by the completion service.

type Experience struct {
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Duration    string     `json:"duration"`
	Description BulletList `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
	Coursework  string `json:"relevant_coursework"`
}

type Project struct {
	Name         string     `json:"name"`
	Description  BulletList `json:"description"`
	Technologies []string   `json:"technologies"`
	URL          string     `json:"url"`
	Duration     string     `json:"duration"`
}

type Publication struct {
	Title   string `json:"title"`
	Journal string `json:"journal"`
	Year    string `json:"year"`
	Authors string `json:"authors"`
	URL     string `json:"url"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
	Expiry string `json:"expiry"`
}

type VolunteerExperience struct {
	Position     string     `json:"position"`
	Organization string     `json:"organization"`
	Duration     string     `json:"duration"`
	Description  BulletList `json:"description"`
}

type Reference struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Contact string `json:"contact"`
}

type ResumeDocument struct {
	Name                string                `json:"name"`
	Email               string                `json:"email"`
	Phone               string                `json:"phone"`
	Location            string                `json:"location"`
	Summary             string                `json:"summary"`
	GithubProfile       string                `json:"github_profile"`
	LinkedinProfile     string                `json:"linkedin_profile"`
	Website             string                `json:"website"`
	Skills              []string              `json:"skills"`
	Experience          []Experience          `json:"experience"`
	Education           []Education           `json:"education"`
	Projects            []Project             `json:"projects"`
	Publications        []Publication         `json:"publications"`
	Certifications      []Certification       `json:"certifications"`
	VolunteerExperience []VolunteerExperience `json:"volunteer_experience"`
	Awards              []string              `json:"awards"`
	Languages           []string              `json:"languages"`
	References          []Reference           `json:"references"`
}

// ApplyDefaults replaces nil sequences with empty ones so consumers can
// branch on emptiness alone. Scalar fields already zero to "".
func (d *ResumeDocument) ApplyDefaults() {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
	if d.Publications == nil {
		d.Publications = []Publication{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.VolunteerExperience == nil {
		d.VolunteerExperience = []VolunteerExperience{}
	}
	if d.Awards == nil {
		d.Awards = []string{}
	}
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if d.References == nil {
		d.References = []Reference{}
	}
	for i := range d.Experience {
		if d.Experience[i].Description == nil {
			d.Experience[i].Description = BulletList{}
		}
	}
	for i := range d.Projects {
		if d.Projects[i].Description == nil {
			d.Projects[i].Description = BulletList{}
		}
		if d.Projects[i].Technologies == nil {
			d.Projects[i].Technologies = []string{}
		}
	}
	for i := range d.VolunteerExperience {
		if d.VolunteerExperience[i].Description == nil {
			d.VolunteerExperience[i].Description = BulletList{}
		}
	}
}
