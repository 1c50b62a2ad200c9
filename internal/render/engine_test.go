package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-composer/internal/model"
)

// recordingWriter captures emit calls so composition can be asserted
// independently of any output format.
type recordingWriter struct {
	calls []string
}

func (r *recordingWriter) add(op, s string) { r.calls = append(r.calls, op+"|"+s) }

func (r *recordingWriter) Title(s string)          { r.add("title", s) }
func (r *recordingWriter) ContactLine(s string)    { r.add("contact", s) }
func (r *recordingWriter) SectionHeading(s string) { r.add("section", s) }
func (r *recordingWriter) Rule()                   { r.add("rule", "") }
func (r *recordingWriter) EntryHeading(s string)   { r.add("entry", s) }
func (r *recordingWriter) Indented(s string)       { r.add("indent", s) }
func (r *recordingWriter) Bullet(s string)         { r.add("bullet", s) }
func (r *recordingWriter) Line(s string)           { r.add("line", s) }
func (r *recordingWriter) Bytes() ([]byte, error)  { return []byte("recorded"), nil }

func sampleDoc() *model.ResumeDocument {
	doc := &model.ResumeDocument{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Location:        "Boston, MA",
		LinkedinProfile: "linkedin.com/in/janedoe",
		GithubProfile:   "github.com/janedoe",
		Summary:         "Systems engineer focused on data pipelines.",
		Skills:          []string{"Go", "Python"},
		Experience: []model.Experience{
			{
				Position:    "Senior Engineer",
				Company:     "Acme Corp",
				Location:    "Boston",
				Duration:    "2020 - 2023",
				Description: model.BulletList{"Built ingestion service", "Cut latency in half"},
			},
			{
				Position:    "Engineer",
				Company:     "Initech",
				Duration:    "2017 - 2020",
				Description: model.BulletList{"Maintained reporting pipeline"},
			},
		},
		Education: []model.Education{
			{
				Degree:      "BSc Computer Science",
				Institution: "MIT",
				Location:    "Cambridge",
				Year:        "2017",
				GPA:         "3.9",
				Coursework:  "Distributed Systems",
			},
		},
		Projects: []model.Project{
			{Name: "Tracker", Duration: "2021", Description: model.BulletList{"Realtime event tracker"}},
		},
		Publications: []model.Publication{
			{Title: "tracker", Journal: "IEEE Micro", Year: "2022", URL: "https://doi.org/10.0/x"},
			{Title: "Other Paper", Journal: "ACM Queue", Year: "2019"},
		},
		Languages: []string{"English", "Spanish"},
	}
	doc.ApplyDefaults()
	return doc
}

func sectionsOf(calls []string) []string {
	var out []string
	for _, c := range calls {
		if len(c) > 8 && c[:8] == "section|" {
			out = append(out, c[8:])
		}
	}
	return out
}

func TestComposeSectionOrderAndConditionals(t *testing.T) {
	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(sampleDoc(), w)

	assert.Equal(t, []string{
		"PROFESSIONAL SUMMARY",
		"SKILLS & OTHER",
		"PROFESSIONAL EXPERIENCE",
		"EDUCATION",
		"PROJECTS & PUBLICATIONS",
		"LANGUAGES",
	}, sectionsOf(w.calls))

	require.NotEmpty(t, w.calls)
	assert.Equal(t, "title|JANE DOE", w.calls[0])
	assert.Contains(t, w.calls, "contact|Boston, MA • 555-0100 • jane@example.com • linkedin.com/in/janedoe")
	assert.Contains(t, w.calls, "contact|GitHub: github.com/janedoe")
}

func TestComposeExperienceEntries(t *testing.T) {
	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(sampleDoc(), w)

	assert.Contains(t, w.calls, "entry|Acme Corp, Boston (2020 - 2023)")
	assert.Contains(t, w.calls, "indent|Senior Engineer")
	assert.Contains(t, w.calls, "bullet|Built ingestion service")
	// Missing location drops its comma segment.
	assert.Contains(t, w.calls, "entry|Initech (2017 - 2020)")
}

func TestComposeEducationEntries(t *testing.T) {
	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(sampleDoc(), w)

	assert.Contains(t, w.calls, "entry|MIT, Cambridge (2017)")
	assert.Contains(t, w.calls, "indent|BSc Computer Science")
	assert.Contains(t, w.calls, "bullet|Awards: 3.9")
	assert.Contains(t, w.calls, "bullet|Relevant Coursework: Distributed Systems")
}

func TestComposeEducationSkipsEmptyOptionalBullets(t *testing.T) {
	doc := &model.ResumeDocument{
		Name: "Jane Doe",
		Education: []model.Education{
			{Degree: "BS CS", Institution: "State U", Year: "2021", GPA: "3.9"},
		},
	}
	doc.ApplyDefaults()

	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(doc, w)

	assert.Contains(t, w.calls, "section|EDUCATION")
	assert.Contains(t, w.calls, "bullet|Awards: 3.9")
	for _, c := range w.calls {
		assert.NotContains(t, c, "Relevant Coursework")
	}
}

func TestComposeMergesMatchedPublicationIntoProject(t *testing.T) {
	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(sampleDoc(), w)

	assert.Contains(t, w.calls, "entry|Tracker (2021)")
	assert.Contains(t, w.calls, "bullet|Published in: IEEE Micro (2022)")
	assert.Contains(t, w.calls, "bullet|Publication URL: https://doi.org/10.0/x")
	assert.Contains(t, w.calls, "entry|Other Paper (Publication) - ACM Queue (2019)")
	// The claimed publication never appears as its own entry.
	assert.NotContains(t, w.calls, "entry|tracker (Publication) - IEEE Micro (2022)")
}

func TestComposeEmptyDocumentKeepsAnchorSections(t *testing.T) {
	doc := &model.ResumeDocument{}
	doc.ApplyDefaults()

	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(doc, w)

	assert.Equal(t, []string{
		"section|PROFESSIONAL SUMMARY", "rule|",
		"section|SKILLS & OTHER", "rule|",
	}, w.calls)
}

func TestComposeVolunteeringLine(t *testing.T) {
	doc := &model.ResumeDocument{
		VolunteerExperience: []model.VolunteerExperience{
			{Position: "Mentor", Organization: "Code Club", Duration: "2019"},
			{Position: "Coach"},
		},
	}
	doc.ApplyDefaults()

	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(doc, w)

	assert.Contains(t, w.calls, "line|Volunteering: Mentor at Code Club (2019); Coach")
}

func TestComposeCertificationsAndReferences(t *testing.T) {
	doc := &model.ResumeDocument{
		Certifications: []model.Certification{
			{Name: "CKA", Issuer: "CNCF", Year: "2022", Expiry: "2025"},
			{Name: "AWS SA"},
		},
		References: []model.Reference{
			{Name: "Pat Lee", Title: "Director", Company: "Acme Corp", Contact: "pat@acme.example"},
		},
	}
	doc.ApplyDefaults()

	w := &recordingWriter{}
	NewEngine(DefaultStyle()).compose(doc, w)

	assert.Contains(t, w.calls, "entry|CKA - CNCF (2022) | Expires: 2025")
	assert.Contains(t, w.calls, "entry|AWS SA")
	assert.Contains(t, w.calls, "entry|Pat Lee, Director at Acme Corp")
	assert.Contains(t, w.calls, "line|pat@acme.example")
}

func TestRenderRejectsNilDocument(t *testing.T) {
	_, err := NewEngine(DefaultStyle()).Render(nil, FormatPDF)

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, FormatPDF, rerr.Format)
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	_, err := NewEngine(DefaultStyle()).Render(sampleDoc(), Format("txt"))

	var rerr *RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Error(), "unknown format")
}

func TestOutputFilename(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		want   string
	}{
		{"John Doe", FormatPDF, "John_Doe_resume.pdf"},
		{"John Doe", FormatDOCX, "John_Doe_resume.docx"},
		{"  Ana  Maria Silva ", FormatPDF, "Ana__Maria_Silva_resume.pdf"},
		{"", FormatPDF, "_resume.pdf"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_%s", tc.name, tc.format), func(t *testing.T) {
			assert.Equal(t, tc.want, OutputFilename(tc.name, tc.format))
		})
	}
}
