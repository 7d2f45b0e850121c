// Package invoice renders an assembled invoice record into a fixed-layout
// plain-text document: header block, line-item table, totals footer.
package invoice

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"stocktrack/internal/service"
)

func Render(w io.Writer, data *service.InvoiceData) error {
	if _, err := fmt.Fprintf(w, "INVOICE %s\n", data.InvoiceNumber); err != nil {
		return err
	}
	fmt.Fprintf(w, "Order:    #%d\n", data.OrderID)
	fmt.Fprintf(w, "Date:     %s\n", data.OrderDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Bill To:  %s\n", data.CustomerName)
	if data.CustomerAddress != "" {
		fmt.Fprintf(w, "          %s\n", data.CustomerAddress)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Item\tQuantity\tPrice\tTotal")
	for _, line := range data.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			line.ItemName,
			line.Quantity,
			line.UnitPrice.StringFixed(2),
			line.LineTotal.StringFixed(2),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nTotal Amount: %s\n", data.TotalAmount.StringFixed(2))
	return err
}

// RenderFile writes the document to the named output artifact.
func RenderFile(path string, data *service.InvoiceData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Render(f, data); err != nil {
		return err
	}
	return f.Sync()
}
