// Command invoice assembles one sales order into an invoice and renders it
// to a document file or stdout.
package main

import (
	"flag"
	"log"
	"os"

	"stocktrack/internal/invoice"
	"stocktrack/internal/repository"
	"stocktrack/internal/service"
	"stocktrack/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	orderID := flag.Uint("order", 0, "sales order id to invoice")
	outPath := flag.String("out", "", "output file (stdout when empty)")
	flag.Parse()

	if *orderID == 0 {
		log.Fatal("Usage: invoice -order <sales order id> [-out <path>]")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = database.DefaultPath
	}

	db, err := database.Open(storePath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", storePath, err)
	}
	if err := database.Initialize(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	reports := service.NewReportService(
		repository.NewItemRepo(db),
		repository.NewPartyRepo(db),
		repository.NewOrderRepo(db),
	)

	data, err := reports.AssembleInvoice(uint(*orderID))
	if err != nil {
		log.Fatalf("Failed to assemble invoice for order %d: %v", *orderID, err)
	}

	if *outPath == "" {
		if err := invoice.Render(os.Stdout, data); err != nil {
			log.Fatalf("Failed to render invoice: %v", err)
		}
		return
	}
	if err := invoice.RenderFile(*outPath, data); err != nil {
		log.Fatalf("Failed to write invoice to %s: %v", *outPath, err)
	}
	log.Printf("Invoice %s written to %s", data.InvoiceNumber, *outPath)
}
