package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"minijob/config"
	"minijob/middleware"
	"minijob/models"
	"minijob/store"
	"minijob/timesheet"
)

type EntriesHandler struct {
	config    *config.Config
	templates map[string]*template.Template
	entries   *store.EntryStore
	settings  *store.SettingsStore
}

func NewEntriesHandler(cfg *config.Config, templates map[string]*template.Template, entries *store.EntryStore, settings *store.SettingsStore) *EntriesHandler {
	return &EntriesHandler{
		config:    cfg,
		templates: templates,
		entries:   entries,
		settings:  settings,
	}
}

// Dashboard renders the month's entries together with every overtime
// figure: the selected month, all time, and everything before the
// selected month. It is also the one place that commits the rest-hours
// carry-over after computing the payout.
func (h *EntriesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	month, year := monthYearFromRequest(r)
	data, payout, err := h.overviewData(user, month, year)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	if err := h.settings.SetFloat(models.SettingRestHours, payout.RestHours); err != nil {
		http.Error(w, "Failed to record carry-over", http.StatusInternalServerError)
		return
	}

	data["User"] = user
	data["Error"] = r.URL.Query().Get("error")
	data["Success"] = r.URL.Query().Get("success")
	h.templates["entries"].ExecuteTemplate(w, "base", data)
}

// overviewData assembles the shared view model for the dashboard and the
// edit page. The returned payout is handed back separately so the caller
// decides whether to persist the carry-over.
func (h *EntriesHandler) overviewData(user *models.User, month, year int) (map[string]interface{}, timesheet.Payout, error) {
	wage := h.settings.GetInt(models.SettingHourlyWage, models.DefaultHourlyWage)
	limit := h.settings.GetInt(models.SettingMinijobLimit, models.DefaultMinijobLimit)

	monthlyLimit, err := timesheet.MonthlyLimit(limit, wage)
	if err != nil {
		return nil, timesheet.Payout{}, err
	}

	entries, err := h.entries.ByMonth(user.ID, month, year)
	if err != nil {
		return nil, timesheet.Payout{}, err
	}

	allEntries, err := h.entries.All(user.ID)
	if err != nil {
		return nil, timesheet.Payout{}, err
	}

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	priorEntries, err := h.entries.Before(user.ID, firstOfMonth)
	if err != nil {
		return nil, timesheet.Payout{}, err
	}

	monthWorked := models.Worked(entries)
	allTotals := timesheet.Summarize(models.Worked(allEntries), monthlyLimit)
	priorTotals := timesheet.Summarize(models.Worked(priorEntries), monthlyLimit)

	payout, err := timesheet.ComputePayout(allTotals.Worked, wage, limit)
	if err != nil {
		return nil, timesheet.Payout{}, err
	}

	// Year dropdown starts at the first recorded year.
	firstYear := year
	if earliest, err := h.entries.Earliest(user.ID); err == nil {
		firstYear = earliest.Date.Year()
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, timesheet.Payout{}, err
	}

	data := map[string]interface{}{
		"Entries":                    entries,
		"TotalWorked":                timesheet.SumHours(monthWorked),
		"Overtime":                   timesheet.MonthlyOvertime(monthWorked, monthlyLimit),
		"MonthlyLimit":               monthlyLimit,
		"TotalWorkedAll":             allTotals.Worked,
		"TotalLimitAll":              allTotals.Limit,
		"TotalOvertimeAll":           allTotals.Overtime,
		"TotalOvertimeTillLastMonth": priorTotals.Overtime,
		"CurrentPayout":              payout,
		"HourlyWage":                 wage,
		"MinijobLimit":               limit,
		"Month":                      month,
		"Year":                       year,
		"Years":                      yearRange(firstYear),
		"CurrentYear":                time.Now().Year(),
	}
	return data, payout, nil
}

func (h *EntriesHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.redirectList(w, r, "error", "Invalid form data")
		return
	}

	entry, msg := h.entryFromForm(r)
	if entry == nil {
		h.redirectList(w, r, "error", msg)
		return
	}
	entry.UserID = user.ID

	if err := h.entries.Create(entry); err != nil {
		h.redirectList(w, r, "error", "Failed to create entry")
		return
	}

	h.redirectList(w, r, "success", "Entry saved!")
}

func (h *EntriesHandler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil {
		h.redirectList(w, r, "error", "Invalid entry ID")
		return
	}

	entry, err := h.entries.FindByID(user.ID, uint(id))
	if err != nil {
		h.redirectList(w, r, "error", "Entry not found")
		return
	}

	month, year := monthYearFromRequest(r)
	data, _, err := h.overviewData(user, month, year)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	data["User"] = user
	data["EntryToEdit"] = entry
	data["Error"] = r.URL.Query().Get("error")
	h.templates["entry-edit"].ExecuteTemplate(w, "base", data)
}

func (h *EntriesHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.redirectList(w, r, "error", "Invalid form data")
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		h.redirectList(w, r, "error", "Invalid entry ID")
		return
	}

	entry, err := h.entries.FindByID(user.ID, uint(id))
	if err != nil {
		h.redirectList(w, r, "error", "Entry not found")
		return
	}

	updated, msg := h.entryFromForm(r)
	if updated == nil {
		h.redirectList(w, r, "error", msg)
		return
	}

	entry.Date = updated.Date
	entry.StartTime = updated.StartTime
	entry.EndTime = updated.EndTime
	entry.BreakMinutes = updated.BreakMinutes
	entry.WorkingPlace = updated.WorkingPlace

	if err := h.entries.Update(entry); err != nil {
		h.redirectList(w, r, "error", "Failed to update entry")
		return
	}

	h.redirectList(w, r, "success", "Entry updated!")
}

func (h *EntriesHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.redirectList(w, r, "error", "Invalid form data")
		return
	}

	id, err := strconv.ParseUint(r.FormValue("id"), 10, 32)
	if err != nil {
		h.redirectList(w, r, "error", "Invalid entry ID")
		return
	}

	if err := h.entries.Delete(user.ID, uint(id)); err != nil {
		h.redirectList(w, r, "error", "Entry not found")
		return
	}

	h.redirectList(w, r, "success", "Entry deleted!")
}

// entryFromForm validates the shared create/update fields and builds the
// entry. The break is always derived from the gross shift length via the
// minimum-break rule; the no_break checkbox forces it to zero. Returns
// nil and a message when validation fails.
func (h *EntriesHandler) entryFromForm(r *http.Request) (*models.TimeEntry, string) {
	date, err := time.Parse("2006-01-02", r.FormValue("date"))
	if err != nil {
		return nil, "Invalid date format"
	}

	startTime := r.FormValue("start_time")
	endTime := r.FormValue("end_time")
	if _, err := timesheet.ParseClock(startTime); err != nil {
		return nil, "Invalid start time"
	}
	if _, err := timesheet.ParseClock(endTime); err != nil {
		return nil, "Invalid end time"
	}

	if _, ok := parseBreakField(r.FormValue("break_minutes")); !ok {
		return nil, "Break must be between 0 and 480 minutes"
	}

	workingPlace := r.FormValue("working_place")
	if len(workingPlace) > 255 {
		return nil, "Working place is too long"
	}

	gross, err := timesheet.GrossMinutes(startTime, endTime)
	if err != nil {
		return nil, "Invalid time format"
	}

	breakMinutes := timesheet.MinimumBreak(float64(gross) / 60)
	if r.FormValue("no_break") != "" {
		breakMinutes = 0
	}

	return &models.TimeEntry{
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		BreakMinutes: breakMinutes,
		WorkingPlace: workingPlace,
	}, ""
}

// redirectList sends the browser back to the entries view, keeping the
// month/year filter from the submitted form or query.
func (h *EntriesHandler) redirectList(w http.ResponseWriter, r *http.Request, kind, msg string) {
	month, year := monthYearFromRequest(r)
	if m, err := strconv.Atoi(r.FormValue("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	if y, err := strconv.Atoi(r.FormValue("year")); err == nil && y >= 2000 && y <= 2100 {
		year = y
	}
	target := fmt.Sprintf("/entries?month=%d&year=%d&%s=%s", month, year, kind, template.URLQueryEscaper(msg))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *EntriesHandler) DefaultsPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	data := map[string]interface{}{
		"User":         user,
		"HourlyWage":   h.settings.GetInt(models.SettingHourlyWage, models.DefaultHourlyWage),
		"MinijobLimit": h.settings.GetInt(models.SettingMinijobLimit, models.DefaultMinijobLimit),
		"Error":        r.URL.Query().Get("error"),
		"Success":      r.URL.Query().Get("success"),
	}
	h.templates["defaults"].ExecuteTemplate(w, "base", data)
}

// UpdateDefaults stores the hourly wage and minijob limit. Both must be
// integers of at least 1; this is the boundary that keeps a zero wage
// out of the division downstream.
func (h *EntriesHandler) UpdateDefaults(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/defaults?error=Invalid+form+data", http.StatusSeeOther)
		return
	}

	wage, err := strconv.Atoi(r.FormValue("hourly_wage"))
	if err != nil || wage < 1 {
		http.Redirect(w, r, "/defaults?error=Hourly+wage+must+be+at+least+1", http.StatusSeeOther)
		return
	}

	limit, err := strconv.Atoi(r.FormValue("minijob_limit"))
	if err != nil || limit < 1 {
		http.Redirect(w, r, "/defaults?error=Minijob+limit+must+be+at+least+1", http.StatusSeeOther)
		return
	}

	if err := h.settings.SetInt(models.SettingHourlyWage, wage); err != nil {
		http.Redirect(w, r, "/defaults?error=Failed+to+save", http.StatusSeeOther)
		return
	}
	if err := h.settings.SetInt(models.SettingMinijobLimit, limit); err != nil {
		http.Redirect(w, r, "/defaults?error=Failed+to+save", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/defaults?success=Default+values+updated!", http.StatusSeeOther)
}

func (h *EntriesHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}

	entries, err := h.entries.ByMonth(user.ID, month, year)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("time_entries_%d_%02d.csv", year, month)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Start", "End", "Break Minutes", "Working Place", "Hours Worked"})
	for _, entry := range entries {
		writer.Write([]string{
			entry.Date.Format("2006-01-02"),
			entry.StartTime,
			entry.EndTime,
			strconv.Itoa(entry.BreakMinutes),
			entry.WorkingPlace,
			fmt.Sprintf("%.2f", entry.HoursWorked()),
		})
	}
}
