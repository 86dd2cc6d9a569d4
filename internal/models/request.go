package models

type WebsiteGeneratorInput struct {
	Description     string `json:"description"`
	Framework       string `json:"framework"`
	WebsiteType     string `json:"websiteType"`
	IncludeDatabase bool   `json:"includeDatabase"`
	SEOOptimization bool   `json:"seoOptimization"`
}

type CodeAssistanceInput struct {
	Code     string `json:"code"`
	Question string `json:"question"`
}
