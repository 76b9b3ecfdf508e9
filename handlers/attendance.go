package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"attendance_dashboard/attendance"
	"attendance_dashboard/models"

	"github.com/gin-gonic/gin"
)

const noAttendanceMessage = "No attendance recorded for this time slot on the selected date."

type AttendanceHandler struct {
	store     *attendance.Store
	threshold float64
}

func NewAttendanceHandler(store *attendance.Store, threshold float64) *AttendanceHandler {
	return &AttendanceHandler{store: store, threshold: threshold}
}

// GetTimeSlots lists the slot registry
func (h *AttendanceHandler) GetTimeSlots(c *gin.Context) {
	slots := attendance.TimeSlots()
	response := make([]models.TimeSlotResponse, 0, len(slots))
	for _, slot := range slots {
		response = append(response, models.TimeSlotResponse{ID: int(slot.ID), Label: slot.Label})
	}
	c.JSON(http.StatusOK, response)
}

// GetAttendances returns the in-memory attendance list as last fetched
func (h *AttendanceHandler) GetAttendances(c *gin.Context) {
	records := h.store.Snapshot()
	response := make([]models.AttendanceResponse, 0, len(records))
	for _, r := range records {
		response = append(response, models.AttendanceResponse{
			Date:                   r.Date.Format(attendance.DateLayout),
			TimeSlot:               int(r.TimeSlot),
			TimeSlotLabel:          r.TimeSlot.Label(),
			RollNoOfStudentPresent: r.RollNoOfStudentPresent,
			CreatedAt:              r.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// GetRoster returns the roll numbers present for one date and slot
func (h *AttendanceHandler) GetRoster(c *gin.Context) {
	var req models.RosterQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	date, err := attendance.ParseDay(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	slot := attendance.SlotID(*req.Slot)

	records := h.store.Snapshot()
	matches := attendance.FindMatches(records, date, slot)
	if len(matches) > 1 {
		log.Printf("Found %d attendance records for %s slot %d, using the first", len(matches), req.Date, slot)
	}

	c.JSON(http.StatusOK, models.RosterResponse{
		Date:          date.Format(attendance.DateLayout),
		TimeSlot:      int(slot),
		TimeSlotLabel: slot.Label(),
		Matches:       len(matches),
		Present:       attendance.FindPresentRoster(records, date, slot),
	})
}

// GetDefaulters computes the defaulter report for a date range
func (h *AttendanceHandler) GetDefaulters(c *gin.Context) {
	report, err := h.defaulterReport(c)
	if err != nil {
		writeAttendanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReportResponse(report))
}

// ExportDefaulters writes the defaulter report as CSV
func (h *AttendanceHandler) ExportDefaulters(c *gin.Context) {
	report, err := h.defaulterReport(c)
	if err != nil {
		writeAttendanceError(c, err)
		return
	}

	filename := fmt.Sprintf("defaulters_%s_%s.csv",
		report.Start.Format(attendance.DateLayout), report.End.Format(attendance.DateLayout))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"rollno", "present", "total_sessions", "percentage"})
	for _, d := range report.Defaulters {
		_ = w.Write([]string{
			d.RollNo,
			strconv.Itoa(d.Present),
			strconv.Itoa(report.TotalSessions),
			strconv.FormatFloat(d.Percentage, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("Error writing defaulters CSV: %v", err)
	}
}

// RefreshAttendances re-fetches the attendance list from upstream
func (h *AttendanceHandler) RefreshAttendances(c *gin.Context) {
	count, err := h.store.Load(c.Request.Context())
	if err != nil {
		log.Printf("Error refreshing attendance: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to refresh attendance",
			"records": h.store.Status().Records,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance refreshed successfully",
		"records": count,
	})
}

func (h *AttendanceHandler) defaulterReport(c *gin.Context) (attendance.DefaulterReport, error) {
	var req models.DefaulterQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		return attendance.DefaulterReport{}, &attendance.InputError{Message: bindingErrorMessage(err)}
	}
	start, end, err := parseRange(req.Start, req.End)
	if err != nil {
		return attendance.DefaulterReport{}, err
	}
	return attendance.ComputeDefaulters(h.store.Snapshot(), start, end, h.threshold)
}

func parseRange(startValue, endValue string) (*time.Time, *time.Time, error) {
	parse := func(value string) (*time.Time, error) {
		if value == "" {
			return nil, nil
		}
		day, err := attendance.ParseDay(value)
		if err != nil {
			return nil, &attendance.InputError{Message: err.Error()}
		}
		return &day, nil
	}

	start, err := parse(startValue)
	if err != nil {
		return nil, nil, err
	}
	end, err := parse(endValue)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func writeAttendanceError(c *gin.Context, err error) {
	var inputErr *attendance.InputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Message})
		return
	}
	log.Printf("Error computing defaulters: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute defaulters"})
}

func toReportResponse(report attendance.DefaulterReport) models.DefaulterReportResponse {
	response := models.DefaulterReportResponse{
		Start:         report.Start.Format(attendance.DateLayout),
		End:           report.End.Format(attendance.DateLayout),
		TotalSessions: report.TotalSessions,
		Threshold:     report.Threshold,
		Defaulters:    make([]models.DefaulterResponse, 0, len(report.Defaulters)),
	}
	for _, d := range report.Defaulters {
		response.Defaulters = append(response.Defaulters, models.DefaulterResponse{
			RollNo:     d.RollNo,
			Present:    d.Present,
			Percentage: d.Percentage,
		})
	}
	return response
}

type slotTile struct {
	Label    string
	Href     string
	Selected bool
}

type rosterPanel struct {
	Title     string
	Present   []string
	Matches   int
	Message   string
	CloseHref string
}

type attendancePage struct {
	Date           string
	Start          string
	End            string
	Slots          []slotTile
	Roster         *rosterPanel
	Calculated     bool
	DefaulterError string
	Report         *models.DefaulterReportResponse
	Status         attendance.StoreStatus
}

// AttendancePage renders the attendance view. All state lives in the query
// string: date and slot drive the roster panel, start/end/calculate drive
// the defaulter section.
func (h *AttendanceHandler) AttendancePage(c *gin.Context) {
	page := attendancePage{
		Date:   c.Query("date"),
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Status: h.store.Status(),
	}
	records := h.store.Snapshot()

	selected := attendance.SlotID(0)
	if value := c.Query("slot"); value != "" {
		if slot, err := attendance.ParseSlotID(value); err == nil && slot.Valid() {
			selected = slot
		}
	}

	for _, slot := range attendance.TimeSlots() {
		page.Slots = append(page.Slots, slotTile{
			Label:    slot.Label,
			Href:     pageHref(page.Date, slot.ID, page.Start, page.End),
			Selected: slot.ID == selected,
		})
	}

	if selected.Valid() {
		panel := &rosterPanel{
			Title:     fmt.Sprintf("Attendance for %s on %s", selected.Label(), page.Date),
			Present:   []string{},
			CloseHref: pageHref(page.Date, 0, page.Start, page.End),
		}
		if date, err := attendance.ParseDay(page.Date); err != nil {
			panel.Message = "Please select a date."
		} else {
			panel.Matches = len(attendance.FindMatches(records, date, selected))
			panel.Present = attendance.FindPresentRoster(records, date, selected)
			if len(panel.Present) == 0 {
				panel.Message = noAttendanceMessage
			}
		}
		page.Roster = panel
	}

	if _, ok := c.GetQuery("calculate"); ok {
		page.Calculated = true
		start, end, err := parseRange(page.Start, page.End)
		var report attendance.DefaulterReport
		if err == nil {
			report, err = attendance.ComputeDefaulters(records, start, end, h.threshold)
		}
		if err != nil {
			var inputErr *attendance.InputError
			if errors.As(err, &inputErr) {
				page.DefaulterError = inputErr.Message
			} else {
				page.DefaulterError = "Failed to compute defaulters"
			}
		} else {
			response := toReportResponse(report)
			page.Report = &response
		}
	}

	c.HTML(http.StatusOK, "attendance.html", page)
}

func pageHref(date string, slot attendance.SlotID, start, end string) string {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	if slot.Valid() {
		q.Set("slot", strconv.Itoa(int(slot)))
	}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	if len(q) == 0 {
		return "/attendance"
	}
	return "/attendance?" + q.Encode()
}
