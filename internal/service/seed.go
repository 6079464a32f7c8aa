package service

import (
	"time"

	"portfolioapi/internal/model"
)

func ptr(s string) *string { return &s }

func metric(name, value, description string) model.ProjectMetric {
	return model.ProjectMetric{MetricName: name, Value: value, Description: ptr(description)}
}

// seedClients returns the demonstration case studies, all stamped with the same time.
func seedClients(newID func() string, at time.Time) []model.Client {
	return []model.Client{
		{
			ID:          newID(),
			Name:        "coremarsassetmanagement",
			DisplayName: "CoreMars Asset Management",
			Description: "Investment Management Company focusing on mutual funds and financial products",
			Period:      "November 2024 - June 2025",
			Metrics: []model.ProjectMetric{
				metric("Posts", "135", "Total posts created"),
				metric("Followers", "265", "Followers gained"),
				metric("Following", "2,229", "Strategic following"),
				metric("Average Views", "1,200+", "Per post engagement"),
			},
			Testimonial:       ptr("Tomiwa helped us increase our reach from 77 to 4.4k in just 2 months!"),
			TestimonialAuthor: ptr("CoreMars Team"),
			AnalyticsImages:   []string{},
			ProjectType:       model.DefaultProjectType,
			CreatedAt:         at,
		},
		{
			ID:          newID(),
			Name:        "yellowatlas",
			DisplayName: "Yellow Atlas Properties",
			Description: "Lagos Land Safety Experts specializing in property verification and investment guidance",
			Period:      "6 months in 2025",
			Metrics: []model.ProjectMetric{
				metric("Posts", "23", "Strategic content posts"),
				metric("Followers", "58", "Quality followers"),
				metric("Total Views", "14,162", "Total content views"),
				metric("Accounts Reached", "7,532", "Unique accounts reached"),
				metric("Non-Follower Views", "71.2%", "Organic reach expansion"),
			},
			Testimonial:       ptr("Professional social media management with excellent engagement rates"),
			TestimonialAuthor: ptr("Yellow Atlas Team"),
			AnalyticsImages:   []string{},
			ProjectType:       model.DefaultProjectType,
			CreatedAt:         at,
		},
		{
			ID:          newID(),
			Name:        "bosah_oak_roe",
			DisplayName: "Bosah Oak Roe",
			Description: "Personal brand development and social media growth",
			Period:      "Campaign Duration: 4 months",
			Metrics: []model.ProjectMetric{
				metric("Social Media Reach", "0 to 10k", "Organic reach growth"),
				metric("Engagement Rate", "High", "Quality engagement"),
				metric("Brand Visibility", "Increased", "Enhanced online presence"),
			},
			Testimonial:       ptr("Our social media presence went from 0 to 10k reach. Highly recommended!"),
			TestimonialAuthor: ptr("Bosah Oak Roe"),
			AnalyticsImages:   []string{},
			ProjectType:       model.DefaultProjectType,
			CreatedAt:         at,
		},
	}
}
