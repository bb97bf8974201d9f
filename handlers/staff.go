package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// StaffMember is the wire shape of a staff record. Branch fields, when set,
// replace the company address block on quotations issued by that member.
type StaffMember struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Position      string `json:"position"`
	StaffCode     string `json:"staffCode"`
	Branch        string `json:"branch"`
	BranchAddress string `json:"branchAddress"`
	BranchCity    string `json:"branchCity"`
	BranchState   string `json:"branchState"`
	BranchZip     string `json:"branchZip"`
}

func staffFromRecord(r *core.Record) StaffMember {
	return StaffMember{
		ID:            r.Id,
		Name:          r.GetString("name"),
		Position:      r.GetString("position"),
		StaffCode:     r.GetString("staff_code"),
		Branch:        r.GetString("branch"),
		BranchAddress: r.GetString("branch_address"),
		BranchCity:    r.GetString("branch_city"),
		BranchState:   r.GetString("branch_state"),
		BranchZip:     r.GetString("branch_zip"),
	}
}

func setStaffFields(record *core.Record, s StaffMember) {
	record.Set("name", s.Name)
	record.Set("position", s.Position)
	record.Set("staff_code", s.StaffCode)
	record.Set("branch", s.Branch)
	record.Set("branch_address", s.BranchAddress)
	record.Set("branch_city", s.BranchCity)
	record.Set("branch_state", s.BranchState)
	record.Set("branch_zip", s.BranchZip)
}

func HandleStaffList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("staff")
		if err != nil {
			log.Printf("staff: failed to list: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load staff")
		}

		out := []StaffMember{}
		for _, r := range records {
			out = append(out, staffFromRecord(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleStaffCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var s StaffMember
		if err := e.BindBody(&s); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if s.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "Staff name is required")
		}

		col, err := app.FindCollectionByNameOrId("staff")
		if err != nil {
			return errorJSON(e, http.StatusInternalServerError, "Failed to load staff")
		}

		record := core.NewRecord(col)
		setStaffFields(record, s)

		if err := app.Save(record); err != nil {
			log.Printf("staff: failed to save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save staff")
		}

		return e.JSON(http.StatusCreated, staffFromRecord(record))
	}
}

func HandleStaffUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("staff", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Staff member")
		}

		var s StaffMember
		if err := e.BindBody(&s); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if s.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "Staff name is required")
		}

		setStaffFields(record, s)

		if err := app.Save(record); err != nil {
			log.Printf("staff: failed to update %s: %v", record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save staff")
		}

		return e.JSON(http.StatusOK, staffFromRecord(record))
	}
}

func HandleStaffDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("staff", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Staff member")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("staff: failed to delete %s: %v", record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to delete staff")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}
