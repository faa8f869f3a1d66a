package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/ports"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/pricing"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/utils"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/validator"
)

const sessionHeader = "X-Session-ID"

// sessionID returns the caller's session id, issuing a fresh one when
// the header is absent. The id is echoed back so the client can carry
// it through the funnel.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

func SearchHandler(svc ports.FlightService, v *validator.CustomValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SearchRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		if err := v.Validate(&req); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		sid := sessionID(w, r)
		results, err := svc.Search(r.Context(), sid, &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, results)
	}
}

func FlightStatusHandler(svc ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightNumber := r.URL.Query().Get("flight_number")
		if flightNumber == "" {
			ae := utils.NewBadRequest("flight_number is required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		status, err := svc.Status(r.Context(), flightNumber)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, status)
	}
}

func SeatMapHandler(svc ports.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		aircraft := r.URL.Query().Get("aircraft")
		if aircraft == "" {
			ae := utils.NewBadRequest("aircraft is required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		class := models.TravelClass(r.URL.Query().Get("class"))
		if class == "" {
			class = models.ClassEconomy
		}

		grid, err := svc.SeatMap(r.Context(), aircraft, class)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, grid)
	}
}

func DestinationsHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RenderResponse(w, http.StatusOK, c.Destinations())
	}
}

func AirportHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			ae := utils.NewBadRequest("code is required")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		airport, ok := c.AirportByCode(code)
		if !ok {
			ae := getApiError(models.ErrUnknownAirport)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, airport)
	}
}

func PriceHandler(v *validator.CustomValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PriceRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		if err := v.Validate(&req); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, pricing.Quote(req.Flights, req.Passengers, req.Extras))
	}
}

func BookingHandler(svc ports.BookingService, v *validator.CustomValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			createBooking(svc, v, w, r)
		case http.MethodGet:
			getBooking(svc, w, r)
		}
	}
}

func createBooking(svc ports.BookingService, v *validator.CustomValidator, w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := utils.JsonDecodeBody(r, &req); err != nil {
		ae := utils.NewBadRequest("error json decoding body")
		utils.RenderResponse(w, ae.StatusCode, ae)
		return
	}
	if err := v.Validate(&req); err != nil {
		ae := utils.NewBadRequest(err.Error())
		utils.RenderResponse(w, ae.StatusCode, ae)
		return
	}

	sid := sessionID(w, r)
	booking, err := svc.CreateBooking(r.Context(), sid, &req)
	if err != nil {
		ae := getApiError(err)
		utils.RenderResponse(w, ae.StatusCode, ae)
		return
	}
	utils.RenderResponse(w, http.StatusCreated, booking)
}

func getBooking(svc ports.BookingService, w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	lastName := r.URL.Query().Get("last_name")
	if reference == "" || lastName == "" {
		ae := utils.NewBadRequest("reference and last_name are required")
		utils.RenderResponse(w, ae.StatusCode, ae)
		return
	}

	booking, err := svc.GetBooking(r.Context(), reference, lastName)
	if err != nil {
		ae := getApiError(err)
		utils.RenderResponse(w, ae.StatusCode, ae)
		return
	}
	utils.RenderResponse(w, http.StatusOK, booking)
}

func CheckInHandler(svc ports.BookingService, v *validator.CustomValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CheckInRequest
		if err := utils.JsonDecodeBody(r, &req); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		if err := v.Validate(&req); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		pass, err := svc.CheckIn(r.Context(), &req)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusOK, pass)
	}
}

func getApiError(err error) utils.ApiError {
	var pve *models.PassengerValidationError
	if errors.As(err, &pve) {
		return utils.NewUnprocessable("invalid passenger details", pve.Failures)
	}

	switch {
	case errors.Is(err, models.ErrSameCity), errors.Is(err, models.ErrUnknownCity):
		return utils.NewBadRequest(err.Error())
	case errors.Is(err, models.ErrUnknownAirport),
		errors.Is(err, models.ErrUnknownAircraft),
		errors.Is(err, models.ErrUnknownCabin),
		errors.Is(err, models.ErrBookingNotFound):
		return utils.NewNotFound(err.Error())
	default:
		return utils.NewInternalServerError(err.Error())
	}
}
