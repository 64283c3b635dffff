package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	resdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/response"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/commands"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book a stay
// @Description Reserve a date range for a maison and niveau; all days commit or none do
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ReserveRequest true "Booking request"
// @Success 200 {object} resdto.ReserveResponse
// @Failure 400 {object} resdto.ReserveResponse
// @Failure 409 {object} resdto.ReserveResponse
// @Router /reserver [post]
func (h *BookingHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, resdto.ReserveFailed("Données manquantes"))
		return
	}

	_, err := h.bookingCommands.Reserve(c.Request.Context(), req)
	if err != nil {
		var conflict *commands.ConflictError
		switch {
		case errors.Is(err, errs.ErrMissingFields):
			c.JSON(http.StatusBadRequest, resdto.ReserveFailed("Champs requis manquants"))
		case errors.Is(err, errs.ErrInvalidDateFormat):
			c.JSON(http.StatusBadRequest, resdto.ReserveFailed("Format de date invalide"))
		case errors.Is(err, errs.ErrInvertedRange):
			c.JSON(http.StatusBadRequest, resdto.ReserveFailed("Date de fin antérieure à la date de début"))
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, resdto.ReserveFailed(
				fmt.Sprintf("Date déjà réservée : %s", conflict.DisplayDate)))
		default:
			c.JSON(http.StatusInternalServerError, resdto.ReserveFailed("Erreur interne du serveur"))
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ReserveOK())
}

// @Summary List reservations
// @Description Every booked day with its rendered date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItem
// @Router /liste [get]
func (h *BookingHandler) List(c *gin.Context) {
	views, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Download the reservation snapshot
// @Description Raw persisted snapshot as an attachment
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /telecharger [get]
func (h *BookingHandler) Download(c *gin.Context) {
	export, err := h.bookingQueries.Export(c.Request.Context())
	if err != nil {
		if errors.Is(err, errs.ErrSnapshotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fichier non trouvé",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne du serveur",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", export.Content)
}
