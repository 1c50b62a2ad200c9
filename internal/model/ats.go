package model

import "encoding/json"

// ATS analysis records returned by the completion service when a resume is
// scored against a job description.

type ATSScore struct {
	OverallScore        int `json:"overall_score"`
	KeywordMatchScore   int `json:"keyword_match_score"`
	ExperienceRelevance int `json:"experience_relevance"`
	EducationFit        int `json:"education_fit"`
	SkillsAlignment     int `json:"skills_alignment"`
}

type ATSInsight struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type ATSRecommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Effort      string `json:"effort"`
}

type ATSReport struct {
	Score           ATSScore            `json:"score"`
	Insights        []ATSInsight        `json:"insights"`
	Recommendations []ATSRecommendation `json:"recommendations"`
	MatchedKeywords []string            `json:"matched_keywords"`
	MissingKeywords []string            `json:"missing_keywords"`
	ExperienceGaps  []string            `json:"experience_gaps"`
	Strengths       []string            `json:"strengths"`
}

func (r *ATSReport) ApplyDefaults() {
	if r.Insights == nil {
		r.Insights = []ATSInsight{}
	}
	if r.Recommendations == nil {
		r.Recommendations = []ATSRecommendation{}
	}
	if r.MatchedKeywords == nil {
		r.MatchedKeywords = []string{}
	}
	if r.MissingKeywords == nil {
		r.MissingKeywords = []string{}
	}
	if r.ExperienceGaps == nil {
		r.ExperienceGaps = []string{}
	}
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
}

// SectionOptimization is the completion service's answer to a targeted
// rewrite of one resume section. OptimizedSection stays raw because its
// shape depends on which section was optimized.
type SectionOptimization struct {
	Explanation      string          `json:"explanation"`
	ChangesMade      []string        `json:"changes_made"`
	OptimizedSection json.RawMessage `json:"optimized_section"`
}

func (s *SectionOptimization) ApplyDefaults() {
	if s.ChangesMade == nil {
		s.ChangesMade = []string{}
	}
	if len(s.OptimizedSection) == 0 {
		s.OptimizedSection = json.RawMessage("null")
	}
}
