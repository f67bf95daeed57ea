package models

// Course is a catalog entry. LimitStudents is advisory only; nothing checks
// it against the actual enrollment count.
type Course struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"default:''"`
	Category        string `json:"category" gorm:"default:''"`
	Instructor      string `json:"instructor" gorm:"default:''"`
	Description     string `json:"description" gorm:"default:''"`
	LimitStudents   int    `json:"limit" gorm:"column:limit_students;default:0"`
	DurationHours   int    `json:"duration_hours" gorm:"default:0"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	Prerequisites   string `json:"prerequisites" gorm:"default:''"`
}
