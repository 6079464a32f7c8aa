package model

import "time"

// ContactSubmission is a stored contact-form message. ID and Timestamp are
// always assigned by the server.
type ContactSubmission struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ContactSubmissionCreate is the request body of the contact form.
type ContactSubmissionCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
