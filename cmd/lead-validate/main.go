package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"leadintake_backend/internal/leads/domain"
)

func main() {
	file := flag.String("file", "", "path to a JSON file containing an array of flat lead records")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: lead-validate -file leads.json")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read file:", err)
		os.Exit(2)
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintln(os.Stderr, "parse json:", err)
		os.Exit(2)
	}

	failed := 0
	for i, record := range records {
		lead, err := validate(record)
		if err != nil {
			failed++
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				fmt.Printf("record %d: rejected (%d violations)\n", i, len(vErr.Violations))
				for _, v := range vErr.Violations {
					fmt.Printf("  - %s\n", v)
				}
			} else {
				fmt.Printf("record %d: rejected: %v\n", i, err)
			}
			continue
		}
		fmt.Printf("record %d: ok (%s lead %s, priority %s)\n", i, lead.Type, lead.ID, lead.Priority)
	}

	fmt.Printf("%d/%d records valid\n", len(records)-failed, len(records))
	if failed > 0 {
		os.Exit(1)
	}
}

// validate builds a lead from a flat record. Records without a type field
// are qualified from their contents first.
func validate(record map[string]any) (domain.Lead, error) {
	if _, ok := record[domain.FieldType]; ok {
		return domain.FromFlat(record)
	}

	f := domain.FieldsFromFlat(record)
	return domain.New(domain.Qualify(f), f)
}
