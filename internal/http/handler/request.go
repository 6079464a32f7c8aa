package handler

import (
	"encoding/json"
	"time"

	"portfolioapi/internal/model"
)

// Request bodies use pointers so that "required" means the key is present.
// Empty strings are accepted.

type metricRequest struct {
	MetricName  *string `json:"metric_name" validate:"required"`
	Value       *string `json:"value" validate:"required"`
	Description *string `json:"description"`
}

type clientRequest struct {
	ID                string          `json:"id"`
	Name              *string         `json:"name" validate:"required"`
	DisplayName       *string         `json:"display_name" validate:"required"`
	Description       *string         `json:"description" validate:"required"`
	Period            *string         `json:"period" validate:"required"`
	Metrics           []metricRequest `json:"metrics" validate:"required,dive"`
	Testimonial       *string         `json:"testimonial"`
	TestimonialAuthor *string         `json:"testimonial_author"`
	ImageURL          *string         `json:"image_url"`
	AnalyticsImages   []string        `json:"analytics_images"`
	ProjectType       string          `json:"project_type"`
	CreatedAt         *looseTime      `json:"created_at"`
}

func (r clientRequest) toModel() model.Client {
	metrics := make([]model.ProjectMetric, 0, len(r.Metrics))
	for _, m := range r.Metrics {
		metrics = append(metrics, model.ProjectMetric{
			MetricName:  *m.MetricName,
			Value:       *m.Value,
			Description: m.Description,
		})
	}
	c := model.Client{
		ID:                r.ID,
		Name:              *r.Name,
		DisplayName:       *r.DisplayName,
		Description:       *r.Description,
		Period:            *r.Period,
		Metrics:           metrics,
		Testimonial:       r.Testimonial,
		TestimonialAuthor: r.TestimonialAuthor,
		ImageURL:          r.ImageURL,
		AnalyticsImages:   r.AnalyticsImages,
		ProjectType:       r.ProjectType,
	}
	if r.CreatedAt != nil {
		c.CreatedAt = time.Time(*r.CreatedAt)
	}
	return c
}

type contactRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

func (r contactRequest) toModel() model.ContactSubmissionCreate {
	return model.ContactSubmissionCreate{Name: *r.Name, Email: *r.Email, Message: *r.Message}
}

// naiveLayouts are accepted for timestamps without a zone and read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// looseTime decodes RFC 3339 timestamps as well as zone-less ones.
type looseTime time.Time

func (t *looseTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		*t = looseTime(parsed)
		return nil
	}
	for _, layout := range naiveLayouts {
		if p, perr := time.ParseInLocation(layout, s, time.UTC); perr == nil {
			*t = looseTime(p)
			return nil
		}
	}
	return err
}
