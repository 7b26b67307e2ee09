package services

import (
	"fmt"
	"sort"
	"strings"

	"airbnb-cleaner/models"
	"airbnb-cleaner/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes summary diagnostics over the cleaned dataset: host
// type and room type distributions, price statistics, and the counts of
// values deliberately left absent.
func (s *InsightService) Generate(ds *models.Dataset) *models.InsightReport {
	report := &models.InsightReport{
		ListingsByHostType: make(map[string]int),
		ListingsByRoomType: make(map[string]int),
	}

	if ds == nil || len(ds.Listings) == 0 {
		return report
	}

	report.TotalListings = len(ds.Listings)
	report.MinPrice = ds.Listings[0].Price
	report.MaxPrice = ds.Listings[0].Price

	var total float64
	for _, l := range ds.Listings {
		if l.HostIsSuperhost {
			report.Superhosts++
		}
		report.ListingsByHostType[l.HostType]++
		if rt := l.Extra["room_type"]; rt != "" {
			report.ListingsByRoomType[rt]++
		}
		if l.Bedrooms == nil {
			report.MissingBedrooms++
		}
		if l.Beds == nil {
			report.MissingBeds++
		}

		total += l.Price
		if l.Price < report.MinPrice {
			report.MinPrice = l.Price
		}
		if l.Price > report.MaxPrice {
			report.MaxPrice = l.Price
		}
	}

	report.AveragePrice = round2(total / float64(report.TotalListings))
	report.MinPrice = round2(report.MinPrice)
	report.MaxPrice = round2(report.MaxPrice)

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 CLEANED DATASET SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Listings in cleaned set : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Printf("  Superhosts              : \033[1m%d\033[0m\n", r.Superhosts)
	fmt.Println()

	// Price Stats
	fmt.Printf("\033[1;33m  Price Statistics (per night)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.TotalListings > 0 {
		fmt.Printf("  Average price : \033[1;32m$%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum price : \033[1;32m$%.2f\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum price : \033[1;32m$%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	// Host type distribution
	fmt.Printf("\033[1;33m  Listings by Host Type\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCounts(r.ListingsByHostType, r.TotalListings)
	fmt.Println()

	// Room type distribution
	fmt.Printf("\033[1;33m  Listings by Room Type\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCounts(r.ListingsByRoomType, r.TotalListings)
	fmt.Println()

	// Values left absent for chart-level handling
	fmt.Printf("\033[1;33m  Absent Values (handled at chart level)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  bedrooms : %d\n", r.MissingBedrooms)
	fmt.Printf("  beds     : %d\n", r.MissingBeds)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// printCounts renders a value-count bar chart sorted by count descending.
func printCounts(counts map[string]int, total int) {
	if len(counts) == 0 {
		fmt.Printf("  No data\n")
		return
	}

	type kv struct {
		key   string
		count int
	}
	var entries []kv
	for k, c := range counts {
		entries = append(entries, kv{k, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	for _, e := range entries {
		width := e.count
		if total > 40 {
			width = e.count * 40 / total
		}
		bar := strings.Repeat("█", width)
		fmt.Printf("  %-20s %s (%d)\n", truncate(e.key, 18), bar, e.count)
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
