// backend-go/cmd/report/export.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/venperf/backend-go/internal/domain"
)

// exportRankingCSV writes the vendor ranking, best score first.
func exportRankingCSV(path string, vendors []domain.VendorGroup) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Rank", "Vendor Code", "Vendor Name", "City", "Items", "Orders",
		"Total PO Value", "Rejection Rate %", "On-Time Rate %",
		"Price", "Quality", "Delivery", "Total Score",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i, v := range vendors {
		record := []string{
			fmt.Sprintf("%d", i+1),
			v.VendorCode,
			v.VendorName,
			v.VendorCity,
			fmt.Sprintf("%d", v.ItemsCount),
			fmt.Sprintf("%d", v.Score.TotalOrders),
			fmt.Sprintf("%.2f", v.Score.TotalOrderValue),
			fmt.Sprintf("%.2f", v.Score.RejectionRatePct),
			fmt.Sprintf("%.1f", v.Score.OnTimeRatePct),
			fmt.Sprintf("%d", v.Score.PriceComponent),
			fmt.Sprintf("%d", v.Score.QualityComponent),
			fmt.Sprintf("%d", v.Score.DeliveryComponent),
			fmt.Sprintf("%d", v.Score.Total),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
