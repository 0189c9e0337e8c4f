// Command browse is an interactive catalog client for a running storefront.
// It drives the catalog view controller: filter changes re-fetch immediately,
// search input is debounced, and a failed fetch can be retried.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/premiumstore/storefront/internal/catalog"
	"github.com/premiumstore/storefront/internal/config"
	"github.com/premiumstore/storefront/internal/view"
)

func main() {
	cfg := config.Load()

	client := catalog.NewClient(cfg.StoreURL)
	cat := view.NewCatalog(client, cfg.SearchDebounce)

	go func() {
		for range cat.Done() {
			render(cat.Snapshot())
		}
	}()

	fmt.Println("commands: category <name> | stock on|off | sort <key> | search <term> | clear | retry | quit")
	cat.Fetch()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")
		switch fields[0] {
		case "category":
			cat.SetCategory(arg)
		case "stock":
			cat.SetInStock(arg == "on")
		case "sort":
			cat.SetSort(arg)
		case "search":
			cat.SetSearch(arg)
		case "clear":
			cat.ClearFilters()
		case "retry":
			cat.Retry()
		case "quit":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func render(snap view.Snapshot) {
	if snap.Err != nil {
		fmt.Printf("fetch failed: %v (type 'retry' to try again)\n", snap.Err)
		return
	}
	if len(snap.Products) == 0 {
		fmt.Println("no products match")
		return
	}
	for _, p := range snap.Products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%3d  %-35s %10s  %.1f★  %s\n", p.ID, p.Title, p.Price, p.Rating, stock)
	}
}
