package main

import (
	"errors"
	"log"
	"net/http"
	"stays/src/db"
	"stays/src/lib/mailer"
	"stays/src/models"
	"stays/src/types"
	"stays/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guestId := ctx.GetUint("id")
			booking, err := utils.CreateBooking(&body, guestId)
			if err != nil {
				switch {
				case errors.Is(err, types.ErrInvalidDateRange):
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				case errors.Is(err, types.ErrListingUnavailable):
					ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				default:
					ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				}
				return
			}

			// Best effort: an enqueue failure never rolls back the booking.
			email := ctx.GetString("email")
			title := booking.Listing.Title
			go func() {
				if err := mailer.NewBookingConfirmation(email, title); err != nil {
					log.Printf("Could not enqueue confirmation for Booking [%d]: %s\n", booking.ID, err.Error())
				}
			}()

			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			guestId := ctx.GetUint("id")
			db := db.GetDb()
			var bookings []models.Booking
			err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{GuestID: guestId}).
				Preload("Listing").
				Order("created_at DESC").
				Find(&bookings).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			guestId := ctx.GetUint("id")
			db := db.GetDb()
			var booking models.Booking
			if err := db.
				Model(&models.Booking{}).
				Where(&models.Booking{ID: params.ID, GuestID: guestId}).
				Preload("Listing").
				Preload("Guest").
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			guestId := ctx.GetUint("id")
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var booking models.Booking
				if err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID, GuestID: guestId}).
					First(&booking).
					Error; err != nil {
					return err
				}
				if booking.Status != types.BOOKING_CONFIRMED {
					return errors.New("only confirmed bookings can be cancelled")
				}
				if err := tx.
					Model(&models.Booking{}).
					Where(&models.Booking{ID: params.ID}).
					Update("status", types.BOOKING_CANCELED).
					Error; err != nil {
					return err
				}
				return nil
			})
			if err != nil {
				log.Printf("Could not complete request: %s\n", err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			ctx.Status(http.StatusNoContent)
		})
	return g
}
