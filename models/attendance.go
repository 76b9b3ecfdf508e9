package models

import "time"

// AttendanceRecord is one session as served by the attendance API.
type AttendanceRecord struct {
	Date                   string    `json:"date"`
	TimeSlot               LooseText `json:"timeslot"`
	RollNoOfStudentPresent []string  `json:"rollnoofstudentpresent"`
	CreatedAt              string    `json:"createdAt"`
}

type AttendanceListResponse struct {
	Data []AttendanceRecord `json:"data"`
}

type RosterQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	Slot *int   `form:"slot" binding:"required,min=1,max=8"`
}

type DefaulterQuery struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

type TimeSlotResponse struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type AttendanceResponse struct {
	Date                   string    `json:"date"`
	TimeSlot               int       `json:"timeslot"`
	TimeSlotLabel          string    `json:"timeslot_label"`
	RollNoOfStudentPresent []string  `json:"rollnoofstudentpresent"`
	CreatedAt              time.Time `json:"created_at"`
}

type RosterResponse struct {
	Date          string   `json:"date"`
	TimeSlot      int      `json:"timeslot"`
	TimeSlotLabel string   `json:"timeslot_label"`
	Matches       int      `json:"matches"`
	Present       []string `json:"present"`
}

type DefaulterResponse struct {
	RollNo     string  `json:"rollno"`
	Present    int     `json:"present"`
	Percentage float64 `json:"percentage"`
}

type DefaulterReportResponse struct {
	Start         string              `json:"start"`
	End           string              `json:"end"`
	TotalSessions int                 `json:"total_sessions"`
	Threshold     float64             `json:"threshold"`
	Defaulters    []DefaulterResponse `json:"defaulters"`
}
