package model

import "time"

// DefaultProjectType is applied to clients created without a project type.
const DefaultProjectType = "social_media"

// ProjectMetric is one headline number of a case study. Value is free text
// ("1,200+", "0 to 10k") and is never parsed.
type ProjectMetric struct {
	MetricName  string  `json:"metric_name" bson:"metric_name"`
	Value       string  `json:"value" bson:"value"`
	Description *string `json:"description" bson:"description"`
}

// Client is a case study shown on the portfolio. It is created once and never updated.
type Client struct {
	ID                string          `json:"id" bson:"id"`
	Name              string          `json:"name" bson:"name"`
	DisplayName       string          `json:"display_name" bson:"display_name"`
	Description       string          `json:"description" bson:"description"`
	Period            string          `json:"period" bson:"period"`
	Metrics           []ProjectMetric `json:"metrics" bson:"metrics"`
	Testimonial       *string         `json:"testimonial" bson:"testimonial"`
	TestimonialAuthor *string         `json:"testimonial_author" bson:"testimonial_author"`
	ImageURL          *string         `json:"image_url" bson:"image_url"`
	AnalyticsImages   []string        `json:"analytics_images" bson:"analytics_images"`
	ProjectType       string          `json:"project_type" bson:"project_type"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
}

// PortfolioStats is computed on request and never stored.
type PortfolioStats struct {
	TotalClients    int    `json:"total_clients"`
	TotalReach      string `json:"total_reach"`
	SuccessRate     string `json:"success_rate"`
	ExperienceYears int    `json:"experience_years"`
}
