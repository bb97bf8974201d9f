package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Customer is the wire shape of a customer record.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func customerFromRecord(r *core.Record) Customer {
	return Customer{
		ID:      r.Id,
		Name:    r.GetString("name"),
		Email:   r.GetString("email"),
		Phone:   r.GetString("phone"),
		Address: r.GetString("address"),
	}
}

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("customers")
		if err != nil {
			log.Printf("customers: failed to list: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to load customers")
		}

		out := []Customer{}
		for _, r := range records {
			out = append(out, customerFromRecord(r))
		}
		return e.JSON(http.StatusOK, out)
	}
}

func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var c Customer
		if err := e.BindBody(&c); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if c.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "Customer name is required")
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			return errorJSON(e, http.StatusInternalServerError, "Failed to load customers")
		}

		record := core.NewRecord(col)
		record.Set("name", c.Name)
		record.Set("email", c.Email)
		record.Set("phone", c.Phone)
		record.Set("address", c.Address)

		if err := app.Save(record); err != nil {
			log.Printf("customers: failed to save: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save customer")
		}

		return e.JSON(http.StatusCreated, customerFromRecord(record))
	}
}

func HandleCustomerUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("customers", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Customer")
		}

		var c Customer
		if err := e.BindBody(&c); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if c.Name == "" {
			return errorJSON(e, http.StatusBadRequest, "Customer name is required")
		}

		record.Set("name", c.Name)
		record.Set("email", c.Email)
		record.Set("phone", c.Phone)
		record.Set("address", c.Address)

		if err := app.Save(record); err != nil {
			log.Printf("customers: failed to update %s: %v", record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to save customer")
		}

		return e.JSON(http.StatusOK, customerFromRecord(record))
	}
}

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("customers", e.Request.PathValue("id"))
		if err != nil {
			return notFound(e, "Customer")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("customers: failed to delete %s: %v", record.Id, err)
			return errorJSON(e, http.StatusInternalServerError, "Failed to delete customer")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}
