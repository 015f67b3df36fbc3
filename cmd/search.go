package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"housing-cli/browse"
)

func searchCmd() *cobra.Command {
	var checkIn string
	var checkOut string
	var people string
	var countryID int
	var stateID int
	var cityID int
	var roomType string
	var maxCost string
	var heating string
	var beds string
	var bathrooms string
	var bedrooms string
	var area string
	var page int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search rooms with filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			facets := browse.NewFacets(time.Now())
			if people == "" {
				people = defaultPeople()
			}
			facets.NumOfPeople = people
			if checkIn != "" {
				date, err := parseDateInput(checkIn)
				if err != nil {
					return err
				}
				facets.CheckIn = date
			}
			if checkOut != "" {
				date, err := parseDateInput(checkOut)
				if err != nil {
					return err
				}
				facets.CheckOut = date
			}
			facets.CountryID = countryID
			facets.StateID = stateID
			facets.CityID = cityID
			facets.RoomType = roomType
			facets.MaxCost = maxCost
			facets.Heating = heating
			facets.NumOfBeds = beds
			facets.NumOfBathrooms = bathrooms
			facets.NumOfBedrooms = bedrooms
			facets.RoomArea = area

			ctx := context.Background()
			browser := browse.NewBrowser(client, logger, sessionUser(), pageSize())
			if err := browser.ApplyFilters(ctx, facets); err != nil {
				return err
			}
			browser.GoTo(page)

			if outputJSON {
				return writeJSON(browser.Visible())
			}
			printRoomList(browser.Visible(), browser.Window())
			return nil
		},
	}

	cmd.Flags().StringVar(&checkIn, "in", "today", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&checkOut, "out", "today", "Check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&people, "people", "", "Number of people (default from config, else 1)")
	cmd.Flags().IntVar(&countryID, "country", 0, "Country id (0 for any)")
	cmd.Flags().IntVar(&stateID, "state", 0, "State id (0 for any)")
	cmd.Flags().IntVar(&cityID, "city", 0, "City id (0 for any)")
	cmd.Flags().StringVar(&roomType, "type", browse.AnySentinel, "Room type (Private Room, Shared Room, House)")
	cmd.Flags().StringVar(&maxCost, "max-cost", browse.ZeroSentinel, "Max cost per night in euros (0 for any)")
	cmd.Flags().StringVar(&heating, "heating", browse.AnySentinel, "Heating (true/false)")
	cmd.Flags().StringVar(&beds, "beds", browse.ZeroSentinel, "Number of beds (0 for any)")
	cmd.Flags().StringVar(&bathrooms, "bathrooms", browse.ZeroSentinel, "Number of bathrooms (0 for any)")
	cmd.Flags().StringVar(&bedrooms, "bedrooms", browse.ZeroSentinel, "Number of bedrooms (0 for any)")
	cmd.Flags().StringVar(&area, "area", browse.ZeroSentinel, "Room area range, e.g. 40-50 (0 for any)")
	cmd.Flags().IntVar(&page, "page", 1, "Result page to show")
	return cmd
}
