package models

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
}
