package main

import (
	"chat-relay/domain"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

func main() {
	addr := flag.String("addr", "http://localhost:3000", "Relay base URL")
	flag.Parse()

	roster, err := fetch(*addr)
	if err != nil {
		log.Fatal("Error while reading the roster: ", err)
	}

	render("Sessions", []string{"ID", "Name", "Rooms"}, len(roster.Sessions), func(table *tablewriter.Table) {
		for _, s := range roster.Sessions {
			rooms := make([]string, 0, len(s.Rooms))
			for _, r := range s.Rooms {
				rooms = append(rooms, string(r))
			}
			table.Append([]string{shortID(string(s.ID)), s.Name, strings.Join(rooms, ",")})
		}
	})
	render("Agents", []string{"ID", "Name", "Role"}, len(roster.Agents), func(table *tablewriter.Table) {
		for _, a := range roster.Agents {
			table.Append([]string{shortID(string(a.ID)), a.Name, string(a.Role)})
		}
	})
	render("Rooms", []string{"Name", "Members"}, len(roster.Rooms), func(table *tablewriter.Table) {
		for _, r := range roster.Rooms {
			table.Append([]string{string(r.Name), fmt.Sprint(r.Members)})
		}
	})
}

func fetch(addr string) (domain.Roster, error) {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(strings.TrimSuffix(addr, "/") + "/roster")
	if err != nil {
		return domain.Roster{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Roster{}, fmt.Errorf("unexpected status %s", resp.Status)
	}
	var roster domain.Roster
	err = json.NewDecoder(resp.Body).Decode(&roster)
	return roster, err
}

func render(title string, header []string, rows int, fill func(table *tablewriter.Table)) {
	fmt.Printf("\n%s (%d)\n", title, rows)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	fill(table)
	table.Render()
}

// shortID keeps the first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
