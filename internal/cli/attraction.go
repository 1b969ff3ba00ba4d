package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/model"
	"github.com/pkordes/trackpad/internal/parser"
)

func attractionCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attraction",
		Aliases: []string{"a"},
		Short:   "Manage attractions",
	}
	cmd.AddCommand(
		attractionAddCmd(opts),
		attractionListCmd(opts),
		attractionFindCmd(opts),
		attractionEditCmd(opts),
		attractionDeleteCmd(opts),
		attractionVisitCmd(opts),
	)
	return cmd
}

// attractionFlags binds one flag per attraction field.
type attractionFlags struct {
	name, phone, email, address, description string
	location, hours, price, rating           string
	tags                                     []string
}

func (f *attractionFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.name, "name", "n", "", "attraction name")
	fs.StringVarP(&f.phone, "phone", "p", "", "contact phone number")
	fs.StringVarP(&f.email, "email", "e", "", "contact email")
	fs.StringVarP(&f.address, "address", "a", "", "street address")
	fs.StringVarP(&f.description, "description", "d", "", "short description")
	fs.StringVarP(&f.location, "location", "l", "", "city or area")
	fs.StringVar(&f.hours, "hours", "", "opening hours, e.g. 0900-1800")
	fs.StringVar(&f.price, "price", "", "price range: LOW, MEDIUM or HIGH")
	fs.StringVarP(&f.rating, "rating", "r", "", "rating from 0 to 5")
	fs.StringSliceVarP(&f.tags, "tag", "t", nil, "tag (repeatable)")
}

func (f *attractionFlags) input() parser.AttractionInput {
	return parser.AttractionInput{
		Name:         f.name,
		Phone:        f.phone,
		Email:        f.email,
		Address:      f.address,
		Description:  f.description,
		Location:     f.location,
		OpeningHours: f.hours,
		PriceRange:   f.price,
		Rating:       f.rating,
		Tags:         f.tags,
	}
}

// edit keeps only the flags that were set on cmd.
func (f *attractionFlags) edit(cmd *cobra.Command) parser.AttractionEdit {
	changed := func(name string, v *string) *string {
		if cmd.Flags().Changed(name) {
			return v
		}
		return nil
	}
	e := parser.AttractionEdit{
		Name:         changed("name", &f.name),
		Phone:        changed("phone", &f.phone),
		Email:        changed("email", &f.email),
		Address:      changed("address", &f.address),
		Description:  changed("description", &f.description),
		Location:     changed("location", &f.location),
		OpeningHours: changed("hours", &f.hours),
		PriceRange:   changed("price", &f.price),
		Rating:       changed("rating", &f.rating),
	}
	if cmd.Flags().Changed("tag") {
		e.Tags = &f.tags
	}
	return e
}

func attractionAddCmd(opts *options) *cobra.Command {
	var flags attractionFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an attraction",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, true, func(_ context.Context, s *session, _ []string) error {
			a, err := parser.ParseAttraction(flags.input())
			if err != nil {
				return err
			}
			if err := s.model.AddAttraction(a); err != nil {
				return err
			}
			s.printf("New attraction added: %s\n", a.Name)
			return nil
		}),
	}
	flags.bind(cmd)
	return cmd
}

func attractionListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every attraction",
		Args:  cobra.NoArgs,
		RunE: withSession(opts, false, func(_ context.Context, s *session, _ []string) error {
			printAttractions(s, s.model.Attractions())
			return nil
		}),
	}
}

func attractionFindCmd(opts *options) *cobra.Command {
	var (
		tags    []string
		visited string
	)
	cmd := &cobra.Command{
		Use:   "find [KEYWORD...]",
		Short: "Find attractions by name keyword, tag or visited state",
		RunE: withSession(opts, false, func(_ context.Context, s *session, args []string) error {
			q := model.AttractionQuery{Keywords: args}
			if len(tags) > 0 {
				set, err := parser.ParseTags(tags)
				if err != nil {
					return err
				}
				q.Tags = set.Tags()
			}
			if visited != "" {
				v, err := parseVisited(visited)
				if err != nil {
					return err
				}
				q.Visited = &v
			}
			if q.IsEmpty() {
				return domain.NewError(domain.ErrValidation, MessageEmptyQuery)
			}

			all := s.model.Attractions()
			s.model.UpdateFilteredAttractions(q.Predicate())
			found := s.model.FilteredAttractions()
			for _, a := range found {
				s.printf("%d. %s\n", positionOf(all, a.IsSame), formatAttraction(a))
			}
			s.printf("%d attractions listed!\n", len(found))
			return nil
		}),
	}
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "tag the attraction must carry (repeatable)")
	cmd.Flags().StringVar(&visited, "visited", "", "true or false")
	return cmd
}

func attractionEditCmd(opts *options) *cobra.Command {
	var flags attractionFlags
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the attraction at INDEX",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			target, err := attractionAt(s, args[0])
			if err != nil {
				return err
			}
			edited, err := parser.EditAttraction(target, flags.edit(s.cmd))
			if err != nil {
				return err
			}
			if err := s.model.SetAttraction(target, edited); err != nil {
				return err
			}
			s.printf("Edited attraction: %s\n", formatAttraction(edited))
			return nil
		}),
	}
	flags.bind(cmd)
	return cmd
}

func attractionDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the attraction at INDEX and its planned visits",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			target, err := attractionAt(s, args[0])
			if err != nil {
				return err
			}
			if err := s.model.DeleteAttraction(target); err != nil {
				return err
			}
			s.printf("Deleted attraction: %s\n", target.Name)
			return nil
		}),
	}
}

func attractionVisitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "visit INDEX",
		Short: "Mark the attraction at INDEX as visited",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(opts, true, func(_ context.Context, s *session, args []string) error {
			target, err := attractionAt(s, args[0])
			if err != nil {
				return err
			}
			if _, err := s.model.MarkVisited(target); err != nil {
				return err
			}
			s.printf("Marked as visited: %s\n", target.Name)
			return nil
		}),
	}
}

// attractionAt parses raw and resolves it against the full attraction list.
func attractionAt(s *session, raw string) (domain.Attraction, error) {
	idx, err := parser.ParseIndex(raw)
	if err != nil {
		return domain.Attraction{}, err
	}
	return s.model.AttractionAt(idx)
}

func parseVisited(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y":
		return true, nil
	case "false", "no", "n":
		return false, nil
	}
	return false, domain.NewError(domain.ErrValidation, MessageInvalidVisited)
}
