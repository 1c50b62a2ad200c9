package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"resume-composer/internal/model"
)

// OptimizeInput carries everything the section-optimization prompt needs.
type OptimizeInput struct {
	Resume         *model.ResumeDocument
	JobDescription string
	Section        string
	SectionData    json.RawMessage
	CustomPrompt   string
}

const parseSystemPrompt = "You are an expert resume parser. Extract information accurately and return only valid JSON."

const parsePromptTemplate = `Parse the following resume text and extract ALL available information into a JSON format.
Be thorough and accurate in your extraction. If information is not available, use empty strings or empty arrays.

Required JSON structure:
{
    "name": "Full name of the person",
    "email": "Email address",
    "phone": "Phone number",
    "location": "City, State/Country (if mentioned)",
    "summary": "Professional summary or objective (create a concise summary from the content if not explicitly stated)",
    "github_profile": "GitHub profile URL or username",
    "linkedin_profile": "LinkedIn profile URL",
    "website": "Personal website or portfolio URL",
    "experience": [
        {
            "position": "Job title",
            "company": "Company name",
            "location": "Job location (if mentioned)",
            "duration": "Employment duration (e.g., '2020-2023' or 'Jan 2020 - Present')",
            "description": ["Key achievement or responsibility, one item per bullet point"]
        }
    ],
    "education": [
        {
            "degree": "Degree type and field",
            "institution": "School/University name",
            "location": "Institution location (if mentioned)",
            "year": "Graduation year",
            "gpa": "GPA if mentioned",
            "relevant_coursework": "Notable coursework if mentioned"
        }
    ],
    "projects": [
        {
            "name": "Project name",
            "description": ["Project description, one item per bullet point"],
            "technologies": ["Technologies used"],
            "url": "Project URL if mentioned",
            "duration": "Project duration if mentioned"
        }
    ],
    "publications": [
        {
            "title": "Publication title",
            "journal": "Journal or conference name",
            "year": "Publication year",
            "authors": "Authors (include the person if they are an author)",
            "url": "Publication URL if mentioned"
        }
    ],
    "certifications": [
        {
            "name": "Certification name",
            "issuer": "Certifying organization",
            "year": "Year obtained",
            "expiry": "Expiry date if mentioned"
        }
    ],
    "volunteer_experience": [
        {
            "position": "Volunteer position",
            "organization": "Organization name",
            "duration": "Duration of volunteer work",
            "description": ["Description of volunteer activities, one item per bullet point"]
        }
    ],
    "awards": ["List of awards, honors, or recognitions"],
    "languages": ["List of languages and proficiency levels"],
    "references": [
        {
            "name": "Reference name",
            "title": "Reference title/position",
            "company": "Reference company",
            "contact": "Contact information if provided"
        }
    ],
    "skills": ["List of technical and professional skills"]
}

Resume text:
%s

IMPORTANT: Extract ALL information that is present. Look for:
- Social media profiles (GitHub, LinkedIn, Twitter, etc.)
- Personal websites or portfolios
- Location information
- Projects with descriptions and technologies
- Publications, papers, or research
- Certifications and licenses
- Volunteer work
- Awards and honors
- Languages spoken
- References
- Any other relevant professional information

Return only the JSON object, no additional text or formatting.`

func parsePrompt(resumeText string) (system, user string) {
	return parseSystemPrompt, fmt.Sprintf(parsePromptTemplate, resumeText)
}

const analyzeSystemPrompt = "You are an expert ATS analyst. Provide detailed, actionable feedback in JSON format. Be specific and practical in your recommendations."

const analyzePromptTemplate = `You are an expert ATS (Applicant Tracking System) analyst. Analyze the following resume against the job description and provide a comprehensive assessment similar to what a real ATS would generate.

Resume Information:
Name: %s
Email: %s
Location: %s
Professional Summary: %s

Skills: %s

Experience:
%s
Education:
%s
Projects:
%s
Certifications:
%s
Job Description:
%s

Please provide a comprehensive ATS analysis in the following JSON format:

{
    "score": {
        "overall_score": 85,
        "keyword_match_score": 78,
        "experience_relevance": 90,
        "education_fit": 88,
        "skills_alignment": 82
    },
    "insights": [
        {
            "category": "strength",
            "title": "Strong Technical Background",
            "description": "Candidate demonstrates excellent technical skills relevant to the position",
            "impact": "high"
        },
        {
            "category": "weakness",
            "title": "Limited Industry Experience",
            "description": "Candidate lacks specific experience in the target industry",
            "impact": "medium"
        }
    ],
    "recommendations": [
        {
            "title": "Add Industry-Specific Keywords",
            "description": "Include more industry-specific terminology and technologies",
            "priority": "high",
            "effort": "easy"
        }
    ],
    "matched_keywords": ["Python", "Machine Learning", "Data Analysis"],
    "missing_keywords": ["TensorFlow", "AWS", "Docker"],
    "experience_gaps": ["Cloud computing experience", "Team leadership"],
    "strengths": ["Strong technical skills", "Relevant education", "Project experience"]
}

Analysis Guidelines:
1. Score each category 0-100 based on relevance and match quality
2. Identify specific keywords that match and are missing
3. Highlight experience gaps that could be addressed
4. Provide actionable recommendations with priority levels
5. Focus on both technical and soft skills
6. Consider industry-specific requirements
7. Assess cultural fit and career progression potential

Return only the JSON object, no additional text or formatting.`

func analyzePrompt(doc *model.ResumeDocument, jobDescription string) (system, user string) {
	user = fmt.Sprintf(analyzePromptTemplate,
		doc.Name,
		doc.Email,
		doc.Location,
		doc.Summary,
		strings.Join(doc.Skills, ", "),
		experienceLines(doc),
		educationLines(doc),
		projectLines(doc),
		certificationLines(doc),
		jobDescription,
	)
	return analyzeSystemPrompt, user
}

const optimizeSystemPrompt = "You are an expert resume writer. Rewrite the requested section so it targets the job description, and return only valid JSON."

const optimizePromptTemplate = `Optimize one section of the resume below for the given job description.

Resume (JSON):
%s

Job Description:
%s

Section to optimize: %s
Current section content (JSON):
%s
%sReturn a JSON object with exactly this structure:
{
    "explanation": "Why the changes improve this section for the job",
    "changes_made": ["List of specific changes"],
    "optimized_section": "The rewritten section, in the same JSON shape as the current content"
}

Keep every factual claim from the original content. Do not invent employers, dates, or credentials.
Return only the JSON object, no additional text or formatting.`

func optimizePrompt(in OptimizeInput) (system, user string) {
	section := string(in.SectionData)
	if section == "" {
		section = "null"
	}
	custom := ""
	if in.CustomPrompt != "" {
		custom = "Additional instructions: " + in.CustomPrompt + "\n\n"
	}
	user = fmt.Sprintf(optimizePromptTemplate,
		mustMarshal(in.Resume),
		in.JobDescription,
		in.Section,
		section,
		custom,
	)
	return optimizeSystemPrompt, user
}

func experienceLines(doc *model.ResumeDocument) string {
	var b strings.Builder
	for _, exp := range doc.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s): %s\n",
			exp.Position, exp.Company, exp.Duration, strings.Join(exp.Description, "; "))
	}
	return b.String()
}

func educationLines(doc *model.ResumeDocument) string {
	var b strings.Builder
	for _, edu := range doc.Education {
		fmt.Fprintf(&b, "- %s from %s (%s)\n", edu.Degree, edu.Institution, edu.Year)
	}
	return b.String()
}

func projectLines(doc *model.ResumeDocument) string {
	var b strings.Builder
	for _, p := range doc.Projects {
		fmt.Fprintf(&b, "- %s: %s (Technologies: %s)\n",
			p.Name, strings.Join(p.Description, "; "), strings.Join(p.Technologies, ", "))
	}
	return b.String()
}

func certificationLines(doc *model.ResumeDocument) string {
	var b strings.Builder
	for _, c := range doc.Certifications {
		fmt.Fprintf(&b, "- %s from %s (%s)\n", c.Name, c.Issuer, c.Year)
	}
	return b.String()
}

// mustMarshal embeds a value in a prompt; the document model contains
// nothing json.Marshal can reject.
func mustMarshal(v interface{}) string {
	b, _ := json.Marshal(v)
	return string(b)
}
