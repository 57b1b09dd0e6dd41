package model

import "time"

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryPersonal Category = "personal"
)

// Categories lists the valid note categories in display order.
var Categories = []Category{CategoryWork, CategoryStudy, CategoryPersonal}

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryStudy, CategoryPersonal:
		return true
	}
	return false
}

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
