package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

func itineraryCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "itinerary",
		Aliases: []string{"i"},
		Short:   "Manage itineraries",
	}
	cmd.AddCommand(
		itineraryAddCmd(opts),
		itineraryListCmd(opts),
		itineraryFindCmd(opts),
		itineraryDeleteCmd(opts),
		itineraryShowCmd(opts),
		planCmd(opts),
	)
	return cmd
}

func itineraryAddCmd(opts *options) *cobra.Command {
	var in parser.ItineraryInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an itinerary with empty days",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, true, func(_ context.Context, s *session, _ []string) error {
			it, err := parser.ParseItinerary(in)
			if err != nil {
				return err
			}
			if err := s.model.AddItinerary(it); err != nil {
				return err
			}
			s.printf("New itinerary added: %s\n", it)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "itinerary name")
	cmd.Flags().StringVarP(&in.StartDate, "start", "s", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVarP(&in.Days, "days", "d", "", "number of days")
	return cmd
}

func itineraryListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every itinerary",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, false, func(_ context.Context, s *session, _ []string) error {
			printItineraries(s, s.model.Itineraries())
			return nil
		}),
	}
}

func itineraryFindCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD...",
		Short: "Find itineraries whose name contains any keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: withSession(opts, false, func(_ context.Context, s *session, args []string) error {
			all := s.model.Itineraries()
			s.model.UpdateFilteredItineraries(model.ItineraryNameContains(args))
			found := s.model.FilteredItineraries()
			for _, it := range found {
				s.printf("%d. %s\n", positionOf(all, it.IsSame), it)
			}
			s.printf("%d itineraries listed!\n", len(found))
			return nil
		}),
	}
}

func itineraryDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the itinerary at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			idx, err := parser.ParseIndex(args[0])
			if err != nil {
				return err
			}
			target, err := s.model.ItineraryAt(idx)
			if err != nil {
				return err
			}
			if err := s.model.DeleteItinerary(target); err != nil {
				return err
			}
			s.printf("Deleted itinerary: %s\n", target.Name)
			return nil
		}),
	}
}

func itineraryShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show INDEX",
		Short: "Show the day-by-day schedule of the itinerary at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, false, func(_ context.Context, s *session, args []string) error {
			it, err := openItinerary(s, args[0])
			if err != nil {
				return err
			}
			printSchedule(s, it)
			return nil
		}),
	}
}

func planCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan visits inside an itinerary",
	}
	cmd.AddCommand(planAddCmd(opts), planDeleteCmd(opts))
	return cmd
}

func planAddCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add ITINERARY DAY ATTRACTION START END",
		Short: "Plan the attraction at ATTRACTION on DAY from START to END (HHmm)",
		Args:  cobra.ExactArgs(5),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			day, err := parser.ParseIndex(args[1])
			if err != nil {
				return err
			}
			attraction, err := parser.ParseIndex(args[2])
			if err != nil {
				return err
			}
			start, end, err := parser.ParseTimeSlot(args[3], args[4])
			if err != nil {
				return err
			}
			if _, err := openItinerary(s, args[0]); err != nil {
				return err
			}
			updated, err := s.model.AddItineraryAttraction(day, attraction, start, end)
			if err != nil {
				return err
			}
			s.printf("Planned on day %d of %s\n", day.OneBased(), updated.Name)
			return nil
		}),
	}
}

func planDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ITINERARY DAY INDEX",
		Short: "Remove the visit at INDEX from DAY",
		Args:  cobra.ExactArgs(3),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			day, err := parser.ParseIndex(args[1])
			if err != nil {
				return err
			}
			index, err := parser.ParseIndex(args[2])
			if err != nil {
				return err
			}
			if _, err := openItinerary(s, args[0]); err != nil {
				return err
			}
			updated, err := s.model.DeleteItineraryAttraction(day, index)
			if err != nil {
				return err
			}
			s.printf("Removed visit %d from day %d of %s\n", index.OneBased(), day.OneBased(), updated.Name)
			return nil
		}),
	}
}

// openItinerary parses raw and makes that itinerary the current one.
func openItinerary(s *session, raw string) (domain.Itinerary, error) {
	idx, err := parser.ParseIndex(raw)
	if err != nil {
		return domain.Itinerary{}, err
	}
	return s.model.OpenItinerary(idx)
}
