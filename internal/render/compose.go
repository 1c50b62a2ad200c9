package render

import (
	"strings"

	"resume-composer/internal/model"
	"resume-composer/internal/resolve"
)

// Section heading literals. The summary and skills sections always render;
// every other section is skipped when it has no backing data.
const (
	headingSummary        = "PROFESSIONAL SUMMARY"
	headingSkills         = "SKILLS & OTHER"
	headingExperience     = "PROFESSIONAL EXPERIENCE"
	headingEducation      = "EDUCATION"
	headingProjects       = "PROJECTS & PUBLICATIONS"
	headingCertifications = "CERTIFICATIONS"
	headingAwards         = "AWARDS & HONORS"
	headingLanguages      = "LANGUAGES"
	headingReferences     = "REFERENCES"
)

const contactSeparator = " • "

func (e *Engine) compose(doc *model.ResumeDocument, w Writer) {
	res := resolve.Resolve(doc)

	if doc.Name != "" {
		w.Title(strings.ToUpper(doc.Name))
	}
	if contact := joinNonEmpty(contactSeparator, doc.Location, doc.Phone, doc.Email, doc.LinkedinProfile); contact != "" {
		w.ContactLine(contact)
	}
	if links := joinNonEmpty(contactSeparator, labeled("GitHub: ", doc.GithubProfile), labeled("Website: ", doc.Website)); links != "" {
		w.ContactLine(links)
	}

	e.summary(doc, w)
	e.skills(doc, w)
	e.experience(doc, w)
	e.education(doc, w)
	e.projects(doc, res, w)
	e.certifications(doc, w)
	e.awards(doc, w)
	e.languages(doc, w)
	e.references(doc, w)
}

func section(w Writer, title string) {
	w.SectionHeading(title)
	w.Rule()
}

func (e *Engine) summary(doc *model.ResumeDocument, w Writer) {
	section(w, headingSummary)
	if doc.Summary != "" {
		w.Line(doc.Summary)
	}
}

func (e *Engine) skills(doc *model.ResumeDocument, w Writer) {
	section(w, headingSkills)
	if line := joinNonEmpty(contactSeparator, doc.Skills...); line != "" {
		w.Line(line)
	}
	if len(doc.VolunteerExperience) > 0 {
		entries := make([]string, 0, len(doc.VolunteerExperience))
		for _, v := range doc.VolunteerExperience {
			if entry := volunteerEntry(v); entry != "" {
				entries = append(entries, entry)
			}
		}
		if len(entries) > 0 {
			w.Line("Volunteering: " + strings.Join(entries, "; "))
		}
	}
}

func (e *Engine) experience(doc *model.ResumeDocument, w Writer) {
	if len(doc.Experience) == 0 {
		return
	}
	section(w, headingExperience)
	for _, exp := range doc.Experience {
		w.EntryHeading(parenthetical(joinNonEmpty(", ", exp.Company, exp.Location), exp.Duration))
		if exp.Position != "" {
			w.Indented(exp.Position)
		}
		bullets(w, exp.Description)
	}
}

func (e *Engine) education(doc *model.ResumeDocument, w Writer) {
	if len(doc.Education) == 0 {
		return
	}
	section(w, headingEducation)
	for _, edu := range doc.Education {
		w.EntryHeading(parenthetical(joinNonEmpty(", ", edu.Institution, edu.Location), edu.Year))
		if edu.Degree != "" {
			w.Indented(edu.Degree)
		}
		if edu.GPA != "" {
			w.Bullet("Awards: " + edu.GPA)
		}
		if edu.Coursework != "" {
			w.Bullet("Relevant Coursework: " + edu.Coursework)
		}
	}
}

func (e *Engine) projects(doc *model.ResumeDocument, res resolve.Result, w Writer) {
	if len(doc.Projects) == 0 && len(doc.Publications) == 0 {
		return
	}
	section(w, headingProjects)

	for i, p := range doc.Projects {
		w.EntryHeading(parenthetical(p.Name, p.Duration))
		bullets(w, p.Description)
		if j, ok := res.PublicationFor(i); ok {
			pub := doc.Publications[j]
			if pub.Journal != "" {
				w.Bullet("Published in: " + parenthetical(pub.Journal, pub.Year))
			}
			if pub.URL != "" {
				w.Bullet("Publication URL: " + pub.URL)
			}
		}
	}

	for _, j := range res.Standalone {
		pub := doc.Publications[j]
		head := parenthetical(pub.Title, "Publication")
		if pub.Journal != "" {
			head += " - " + pub.Journal
		}
		if pub.Year != "" {
			head += " (" + pub.Year + ")"
		}
		w.EntryHeading(head)
		if pub.URL != "" {
			w.Bullet("URL: " + pub.URL)
		}
	}
}

func (e *Engine) certifications(doc *model.ResumeDocument, w Writer) {
	if len(doc.Certifications) == 0 {
		return
	}
	section(w, headingCertifications)
	for _, c := range doc.Certifications {
		line := joinNonEmpty(" - ", c.Name, c.Issuer)
		line = parenthetical(line, c.Year)
		if c.Expiry != "" {
			if line != "" {
				line += " | "
			}
			line += "Expires: " + c.Expiry
		}
		if line != "" {
			w.EntryHeading(line)
		}
	}
}

func (e *Engine) awards(doc *model.ResumeDocument, w Writer) {
	if len(doc.Awards) == 0 {
		return
	}
	section(w, headingAwards)
	for _, a := range doc.Awards {
		if a != "" {
			w.Bullet(a)
		}
	}
}

func (e *Engine) languages(doc *model.ResumeDocument, w Writer) {
	if len(doc.Languages) == 0 {
		return
	}
	section(w, headingLanguages)
	if line := joinNonEmpty(contactSeparator, doc.Languages...); line != "" {
		w.Line(line)
	}
}

func (e *Engine) references(doc *model.ResumeDocument, w Writer) {
	if len(doc.References) == 0 {
		return
	}
	section(w, headingReferences)
	for _, r := range doc.References {
		if head := joinNonEmpty(", ", r.Name, atCompany(r.Title, r.Company)); head != "" {
			w.EntryHeading(head)
		}
		if r.Contact != "" {
			w.Line(r.Contact)
		}
	}
}

func bullets(w Writer, items model.BulletList) {
	for _, b := range items {
		if b != "" {
			w.Bullet(b)
		}
	}
}

// joinNonEmpty joins the non-empty parts with sep, preserving order.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// parenthetical appends " (paren)" to head, dropping whichever side is
// empty so no stray punctuation survives.
func parenthetical(head, paren string) string {
	switch {
	case paren == "":
		return head
	case head == "":
		return "(" + paren + ")"
	default:
		return head + " (" + paren + ")"
	}
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value
}

// atCompany renders "{role} at {org}", degrading to whichever side exists.
func atCompany(role, org string) string {
	switch {
	case role != "" && org != "":
		return role + " at " + org
	case org != "":
		return org
	default:
		return role
	}
}

func volunteerEntry(v model.VolunteerExperience) string {
	return parenthetical(atCompany(v.Position, v.Organization), v.Duration)
}
