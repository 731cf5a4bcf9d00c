package api

import "time"

type Recommendation struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Priority    string    `json:"priority"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Resolved    bool      `json:"resolved"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ClientRecommendation struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}
