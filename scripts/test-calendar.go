package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/khl-team/internal/calendar"
	"github.com/pfrederiksen/khl-team/internal/team"
)

func main() {
	msk, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		msk = time.FixedZone("MSK", 3*60*60)
	}
	now := time.Now()

	// A played and an upcoming match
	matches := []*team.Match{
		team.NewMatch("Ак Барс", "СКА", []int{3, 2}, now.AddDate(0, 0, -3).In(msk), now),
		team.NewMatch("СКА", "Ак Барс", nil, now.AddDate(0, 0, 4).In(msk), now),
	}

	icsContent := calendar.GenerateICS(matches, calendar.Options{})

	// Write to file (owner read/write only)
	filename := "test-khl-matches.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
