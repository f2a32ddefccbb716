package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/logistics-dashboard/internal/models"
	"github.com/rogerio-castellano/logistics-dashboard/internal/repo"
)

type csvRow struct {
	Name       string
	Quantity   int
	Unit       string
	Category   string
	SupplierID int
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "quantity", "unit", "category", "supplier_id"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:       record[index["name"]],
			Quantity:   parseInt(record[index["quantity"]]),
			Unit:       record[index["unit"]],
			Category:   record[index["category"]],
			SupplierID: parseInt(record[index["supplier_id"]]),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.Quantity < 0 {
		return errors.New("invalid quantity")
	}
	if r.SupplierID <= 0 {
		return errors.New("invalid supplier_id")
	}
	return nil
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ImportItemsHandler godoc
// @Summary Import items via CSV
// @Description Columns: name, quantity, unit, category, supplier_id. Mode "skip" leaves existing item names untouched, "update" overwrites them.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Router /api/items/import [post]
func ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = "skip"
	}
	if mode != "skip" && mode != "update" {
		http.Error(w, "mode must be skip or update", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportItemsResult{Errors: []ValidationError{}}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: err.Error(),
			})
			continue
		}

		item := models.Item{
			Name:        row.Name,
			Quantity:    row.Quantity,
			Unit:        row.Unit,
			Category:    row.Category,
			SupplierID:  row.SupplierID,
			LastUpdated: time.Now().UTC(),
		}

		existing, err := itemRepo.GetByName(row.Name)
		switch {
		case err == nil && mode == "skip":
			continue
		case err == nil && mode == "update":
			item.ID = existing.ID
			item.StockSold = existing.StockSold
			if _, err := itemRepo.Update(item); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:       fmt.Sprintf("row %d", i+1),
					Description: "could not update item",
				})
				continue
			}
		case errors.Is(err, repo.ErrItemNotFound):
			if _, err := itemRepo.Create(item); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Field:       fmt.Sprintf("row %d", i+1),
					Description: "could not create item",
				})
				continue
			}
		default:
			result.Errors = append(result.Errors, ValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: "could not look up item",
			})
			continue
		}
		result.ImportedItemsCount++
	}

	writeJSON(w, http.StatusOK, result)
}
