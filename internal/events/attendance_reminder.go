package events

import "time"

const AttendanceReminderTopic = "hr.attendance.reminder.v1"

const AttendanceReminderType = "attendance_reminder"

// AttendanceReminderEvent asks an admin to check today's attendance.
type AttendanceReminderEvent struct {
	EventType  string    `json:"event_type"`
	AdminID    string    `json:"admin_id"`
	AdminEmail string    `json:"admin_email"`
	AdminName  string    `json:"admin_name"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
