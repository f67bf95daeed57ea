package models

import "time"

// Enrollment links a student to a course. Nothing prevents the same student
// enrolling twice in the same course, and CourseID is not checked against the
// catalog at insert time.
type Enrollment struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	StudentID    uint      `json:"student_id" gorm:"index;not null"`
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	Department   string    `json:"department" gorm:"default:''"`
	Batch        string    `json:"batch" gorm:"default:''"`
	EnrolledDate time.Time `json:"enrolled_date"`
	Status       string    `json:"status" gorm:"default:'ongoing'"`
}

// EnrollmentSummary is the row shape returned by the per-user enrollment
// listing: the joined course name plus the enrollment metadata.
type EnrollmentSummary struct {
	Course       string    `json:"course"`
	Department   string    `json:"department"`
	Batch        string    `json:"batch"`
	EnrolledDate time.Time `json:"enrolled_date"`
	Status       string    `json:"status"`
}
