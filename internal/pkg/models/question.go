package models

import "time"

// Question is a multiple choice question with four options. Answer holds
// the text of the correct option.
type Question struct {
	ID        int64     `json:"id" db:"id"`
	Text      string    `json:"question" db:"question"`
	Option1   string    `json:"option1" db:"option1"`
	Option2   string    `json:"option2" db:"option2"`
	Option3   string    `json:"option3" db:"option3"`
	Option4   string    `json:"option4" db:"option4"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Options returns the four options in order
func (q *Question) Options() []string {
	return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}

// QuestionRequest represents a create or update payload
type QuestionRequest struct {
	Text    string `json:"question"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`
	Answer  string `json:"answer"`
}
