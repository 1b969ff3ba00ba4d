package repo

import (
	"fmt"

	"github.com/pkordes/trackpad/internal/domain"
	"github.com/pkordes/trackpad/internal/parser"
)

// attractionRecord is the stored form of a domain.Attraction.
// Records are re-validated through the parser on load, so a hand-edited
// data file cannot smuggle invalid values into the model.
type attractionRecord struct {
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	OpeningHours string   `json:"opening_hours"`
	PriceRange   string   `json:"price_range"`
	Rating       string   `json:"rating"`
	Tags         []string `json:"tags"`
	Visited      bool     `json:"visited"`
}

// visitRecord is the stored form of a domain.ItineraryAttraction.
type visitRecord struct {
	Attraction attractionRecord `json:"attraction"`
	Start      string           `json:"start"`
	End        string           `json:"end"`
}

// itineraryRecord is the stored form of a domain.Itinerary.
// len(Days) is the itinerary's number of days.
type itineraryRecord struct {
	Name      string          `json:"name"`
	StartDate string          `json:"start_date"`
	Days      [][]visitRecord `json:"days"`
}

func toAttractionRecord(a domain.Attraction) attractionRecord {
	return attractionRecord{
		Name:         a.Name.String(),
		Phone:        a.Phone.String(),
		Email:        a.Email.String(),
		Address:      a.Address.String(),
		Description:  a.Description.String(),
		Location:     a.Location.String(),
		OpeningHours: a.OpeningHours.String(),
		PriceRange:   a.PriceRange.String(),
		Rating:       a.Rating.String(),
		Tags:         a.Tags.Names(),
		Visited:      a.Visited,
	}
}

func (r attractionRecord) toDomain() (domain.Attraction, error) {
	a, err := parser.ParseAttraction(parser.AttractionInput{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		Description:  r.Description,
		Location:     r.Location,
		OpeningHours: r.OpeningHours,
		PriceRange:   r.PriceRange,
		Rating:       r.Rating,
		Tags:         r.Tags,
	})
	if err != nil {
		return domain.Attraction{}, err
	}
	if r.Visited {
		a = a.MarkVisited()
	}
	return a, nil
}

func toItineraryRecord(it domain.Itinerary) itineraryRecord {
	days := it.Days()
	rec := itineraryRecord{
		Name:      it.Name.String(),
		StartDate: it.StartDate.String(),
		Days:      make([][]visitRecord, len(days)),
	}
	for d, visits := range days {
		rec.Days[d] = make([]visitRecord, len(visits))
		for i, v := range visits {
			rec.Days[d][i] = visitRecord{
				Attraction: toAttractionRecord(v.Attraction),
				Start:      v.Start.String(),
				End:        v.End.String(),
			}
		}
	}
	return rec
}

func (r itineraryRecord) toDomain() (domain.Itinerary, error) {
	name, err := parser.ParseName(r.Name)
	if err != nil {
		return domain.Itinerary{}, err
	}
	start, err := parser.ParseDate(r.StartDate)
	if err != nil {
		return domain.Itinerary{}, err
	}
	days := make([][]domain.ItineraryAttraction, len(r.Days))
	for d, visits := range r.Days {
		for _, v := range visits {
			a, err := v.Attraction.toDomain()
			if err != nil {
				return domain.Itinerary{}, err
			}
			s, e, err := parser.ParseTimeSlot(v.Start, v.End)
			if err != nil {
				return domain.Itinerary{}, err
			}
			ia, err := domain.NewItineraryAttraction(a, s, e)
			if err != nil {
				return domain.Itinerary{}, err
			}
			days[d] = append(days[d], ia)
		}
	}
	return domain.NewItinerary(name, start, len(days), days)
}

func decodeAttractions(recs []attractionRecord) ([]domain.Attraction, error) {
	out := make([]domain.Attraction, 0, len(recs))
	for i, rec := range recs {
		a, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: attraction %d: %w", domain.ErrPersistence, i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func encodeAttractions(as []domain.Attraction) []attractionRecord {
	out := make([]attractionRecord, len(as))
	for i, a := range as {
		out[i] = toAttractionRecord(a)
	}
	return out
}

func decodeItineraries(recs []itineraryRecord) ([]domain.Itinerary, error) {
	out := make([]domain.Itinerary, 0, len(recs))
	for i, rec := range recs {
		it, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: itinerary %d: %w", domain.ErrPersistence, i+1, err)
		}
		out = append(out, it)
	}
	return out, nil
}

func encodeItineraries(its []domain.Itinerary) []itineraryRecord {
	out := make([]itineraryRecord, len(its))
	for i, it := range its {
		out[i] = toItineraryRecord(it)
	}
	return out
}
