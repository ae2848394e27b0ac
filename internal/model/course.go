package model

// Course is the host course handle the upload endpoints operate on.
type Course struct {
	Key         string `json:"course_key"`
	DisplayName string `json:"display_name"`
}

// Requester identifies the user calling the API.
type Requester struct {
	UserID string
	Staff  bool
}
