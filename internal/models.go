package models

import (
	"time"

	"github.com/google/uuid"
)

type TravelClass string

const (
	ClassEconomy  TravelClass = "Economy"
	ClassBusiness TravelClass = "Business"
	ClassFirst    TravelClass = "First"
)

type PassengerType string

const (
	TypeAdult  PassengerType = "Adult"
	TypeChild  PassengerType = "Child"
	TypeInfant PassengerType = "Infant"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Destination is a city the airline flies to, keyed by city name in the catalog.
type Destination struct {
	City     string `json:"city"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

type Airport struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Terminals  []string `json:"terminals"`
	Facilities []string `json:"facilities"`
}

type Aircraft struct {
	Model string              `json:"model"`
	Seats map[TravelClass]int `json:"seats"`
}

// Flight is a synthesized flight option. Options are generated fresh on
// every search: flight numbers and prices are not stable across calls.
type Flight struct {
	FlightNumber    string              `json:"flight_number"`
	Origin          string              `json:"origin"`
	Destination     string              `json:"destination"`
	OriginCode      string              `json:"origin_code"`
	DestinationCode string              `json:"destination_code"`
	DepartureDate   string              `json:"departure_date"`
	DepartureTime   string              `json:"departure_time"`
	ArrivalTime     string              `json:"arrival_time"`
	Duration        string              `json:"duration"`
	DurationMinutes int                 `json:"duration_minutes"`
	Aircraft        string              `json:"aircraft"`
	Prices          map[TravelClass]int `json:"prices"`
	SeatsAvailable  map[TravelClass]int `json:"seats_available"`
	Stops           int                 `json:"stops"`
	MealService     bool                `json:"meal_service"`
	WifiAvailable   bool                `json:"wifi_available"`
	Entertainment   bool                `json:"entertainment"`
}

type SearchRequest struct {
	Origin        string      `json:"origin" validate:"required,known_city"`
	Destination   string      `json:"destination" validate:"required,known_city,nefield=Origin"`
	DepartureDate string      `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string      `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Adults        int         `json:"adults" validate:"min=0,max=9"`
	Children      int         `json:"children" validate:"min=0,max=9"`
	Infants       int         `json:"infants" validate:"min=0,max=9"`
	TravelClass   TravelClass `json:"travel_class" validate:"omitempty,travel_class"`
}

func (r *SearchRequest) TotalPassengers() int {
	return r.Adults + r.Children + r.Infants
}

type SearchResults struct {
	Outbound []Flight `json:"outbound"`
	Return   []Flight `json:"return,omitempty"`
}

type SeatType string

const (
	SeatWindow SeatType = "window"
	SeatAisle  SeatType = "aisle"
	SeatMiddle SeatType = "middle"
)

type Seat struct {
	SeatID    string   `json:"seat_id"`
	Row       int      `json:"row"`
	Letter    string   `json:"letter"`
	Type      SeatType `json:"type"`
	Available bool     `json:"available"`
	Price     int      `json:"price"`
}

// SeatMap is regenerated on every request. Occupancy is random, so a
// seat shown available on one render may be occupied on the next.
type SeatMap struct {
	Aircraft string      `json:"aircraft"`
	Class    TravelClass `json:"class"`
	Rows     int         `json:"rows"`
	Letters  string      `json:"letters"`
	Pitch    string      `json:"pitch"`
	Seats    []Seat      `json:"seats"`
}

type Passenger struct {
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	DateOfBirth     string        `json:"date_of_birth"`
	Gender          string        `json:"gender,omitempty"`
	Nationality     string        `json:"nationality"`
	PassportNumber  string        `json:"passport_number"`
	PassportExpiry  string        `json:"passport_expiry,omitempty"`
	PassportCountry string        `json:"passport_country,omitempty"`
	MealPreference  string        `json:"meal_preference,omitempty"`
	Type            PassengerType `json:"type,omitempty"`
	Class           TravelClass   `json:"class,omitempty"`
	Seat            string        `json:"seat,omitempty"`
	SpecialRequests []string      `json:"special_requests,omitempty"`
	CheckedIn       bool          `json:"checked_in,omitempty"`
}

func (p *Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}

// CabinClass returns the booked cabin, defaulting to Economy.
func (p *Passenger) CabinClass() TravelClass {
	if p.Class == "" {
		return ClassEconomy
	}
	return p.Class
}

type Contact struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Extras are the ancillaries priced on top of fares.
type Extras struct {
	Insurance      bool `json:"insurance"`
	ExtraBaggageKg int  `json:"extra_baggage_kg" validate:"min=0,max=50"`
	SeatSurcharges int  `json:"seat_surcharges" validate:"min=0"`
}

type PriceRequest struct {
	Flights    []Flight    `json:"flights" validate:"required,min=1"`
	Passengers []Passenger `json:"passengers" validate:"required,min=1"`
	Extras     Extras      `json:"extras"`
}

type PriceQuote struct {
	Fares     int    `json:"fares"`
	Insurance int    `json:"insurance"`
	Seats     int    `json:"seats"`
	Baggage   int    `json:"baggage"`
	Taxes     string `json:"taxes"`
	Total     int    `json:"total"`
}

type BookingRequest struct {
	Flights    []Flight    `json:"flights" validate:"required,min=1"`
	Passengers []Passenger `json:"passengers" validate:"required,min=1"`
	Contact    Contact     `json:"contact" validate:"required"`
	Extras     Extras      `json:"extras"`
}

type Ticket struct {
	TicketNumber    string      `json:"ticket_number"`
	PassengerName   string      `json:"passenger_name"`
	Seat            string      `json:"seat"`
	Class           TravelClass `json:"class"`
	SpecialRequests []string    `json:"special_requests,omitempty"`
}

// Booking is the assembled record. The reference is the user-facing
// identifier; ID is internal. Neither reference nor ticket numbers are
// checked for uniqueness.
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	Reference     string        `json:"booking_reference"`
	CreatedAt     time.Time     `json:"created_at"`
	Status        BookingStatus `json:"status"`
	Flights       []Flight      `json:"flights"`
	Passengers    []Passenger   `json:"passengers"`
	Contact       Contact       `json:"contact"`
	TotalPrice    int           `json:"total_price"`
	PaymentStatus string        `json:"payment_status"`
	Tickets       []Ticket      `json:"tickets"`
}

type FlightStatus struct {
	FlightNumber string `json:"flight_number"`
	Status       string `json:"status"`
	DelayMinutes int    `json:"delay_minutes"`
	Gate         string `json:"gate"`
	Terminal     string `json:"terminal"`
	BaggageClaim *int   `json:"baggage_claim,omitempty"`
}

type CheckInRequest struct {
	Reference      string `json:"booking_reference" validate:"required,min=6"`
	LastName       string `json:"last_name" validate:"required,min=2"`
	SeatPreference string `json:"seat_preference,omitempty"`
	ExtraBaggageKg int    `json:"extra_baggage_kg" validate:"min=0,max=50"`
}

type BoardingPass struct {
	Reference        string      `json:"booking_reference"`
	PassengerName    string      `json:"passenger_name"`
	FlightNumber     string      `json:"flight_number"`
	Route            string      `json:"route"`
	DepartureDate    string      `json:"departure_date"`
	DepartureTime    string      `json:"departure_time"`
	BoardingTime     string      `json:"boarding_time"`
	Gate             string      `json:"gate"`
	Terminal         string      `json:"terminal"`
	Seat             string      `json:"seat"`
	Class            TravelClass `json:"class"`
	BaggageAllowance string      `json:"baggage_allowance"`
	ExtraBaggageCost int         `json:"extra_baggage_cost,omitempty"`
}

// Session is the per-user state for the booking funnel. Fields are
// typed slots; the whole struct is what the session store persists.
type Session struct {
	ID               string            `json:"id"`
	SearchParams     *SearchRequest    `json:"search_params,omitempty"`
	SearchResults    *SearchResults    `json:"search_results,omitempty"`
	SelectedFlights  []Flight          `json:"selected_flights,omitempty"`
	SeatSelections   map[string]string `json:"seat_selections,omitempty"`
	Passengers       []Passenger       `json:"passengers,omitempty"`
	BookingReference string            `json:"booking_reference,omitempty"`
}

// Clone returns a deep copy. The in-memory stores hand out clones so
// one request's mutations never share memory with another's reads.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	out := *b
	out.Flights = cloneFlights(b.Flights)
	out.Passengers = clonePassengers(b.Passengers)
	out.Tickets = cloneTickets(b.Tickets)
	return &out
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.SearchParams != nil {
		params := *s.SearchParams
		out.SearchParams = &params
	}
	out.SearchResults = s.SearchResults.Clone()
	out.SelectedFlights = cloneFlights(s.SelectedFlights)
	if s.SeatSelections != nil {
		selections := make(map[string]string, len(s.SeatSelections))
		for k, v := range s.SeatSelections {
			selections[k] = v
		}
		out.SeatSelections = selections
	}
	out.Passengers = clonePassengers(s.Passengers)
	return &out
}

func (r *SearchResults) Clone() *SearchResults {
	if r == nil {
		return nil
	}
	return &SearchResults{
		Outbound: cloneFlights(r.Outbound),
		Return:   cloneFlights(r.Return),
	}
}

func cloneFlights(in []Flight) []Flight {
	if in == nil {
		return nil
	}
	out := make([]Flight, len(in))
	copy(out, in)
	for i := range out {
		out[i].Prices = cloneClassMap(in[i].Prices)
		out[i].SeatsAvailable = cloneClassMap(in[i].SeatsAvailable)
	}
	return out
}

func cloneClassMap(in map[TravelClass]int) map[TravelClass]int {
	if in == nil {
		return nil
	}
	out := make(map[TravelClass]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func clonePassengers(in []Passenger) []Passenger {
	if in == nil {
		return nil
	}
	out := make([]Passenger, len(in))
	copy(out, in)
	for i := range out {
		out[i].SpecialRequests = cloneStrings(in[i].SpecialRequests)
	}
	return out
}

func cloneTickets(in []Ticket) []Ticket {
	if in == nil {
		return nil
	}
	out := make([]Ticket, len(in))
	copy(out, in)
	for i := range out {
		out[i].SpecialRequests = cloneStrings(in[i].SpecialRequests)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
