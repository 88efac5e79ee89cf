package main

import (
	"errors"
	"net/http"
	"stays/src/db"
	"stays/src/models"
	"stays/src/models/scopes"
	"stays/src/types"
	"stays/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var errForbidden = errors.New("forbidden")

// Listing reads are public; mutations require the authenticated host.
func publicListingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/listings", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Listing{})
			if ctx.Query("available") == "true" {
				q = q.Scopes(scopes.AvailableListings)
			}
			var listings []models.Listing
			err := q.
				Order("created_at DESC").
				Limit(100).
				Find(&listings).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": listings, "count": len(listings)})
		}).
		GET("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var listing models.Listing
			if err := db.
				Model(&models.Listing{}).
				Scopes(scopes.WithID(params.ID)).
				Preload("Host").
				Preload("Bookings").
				Preload("Reviews").
				First(&listing).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			avg := utils.GetListingAverageRating(db, listing.ID)
			ctx.JSON(http.StatusOK, gin.H{"data": listing, "average_rating": avg})
		}).
		GET("/listings/:id/reviews", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var reviews []models.Review
			err := db.
				Model(&models.Review{}).
				Where(&models.Review{ListingID: params.ID}).
				Order("created_at DESC").
				Find(&reviews).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": reviews, "count": len(reviews)})
		})
	return g
}

func listingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/listings", func(ctx *gin.Context) {
			var body types.CreateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hostId := ctx.GetUint("id")
			available := true
			if body.Available != nil {
				available = *body.Available
			}
			maxGuests := body.MaxGuests
			if maxGuests == 0 {
				maxGuests = 1
			}
			listing := models.Listing{
				HostID:        hostId,
				Title:         body.Title,
				Slug:          slug.Make(body.Title),
				Location:      body.Location,
				PricePerNight: body.PricePerNight,
				MaxGuests:     maxGuests,
				Available:     available,
			}
			if body.Description != "" {
				listing.Description = &body.Description
			}
			if len(body.Amenities) > 0 {
				amenities := types.StringList(body.Amenities)
				listing.Amenities = &amenities
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&listing).Error
			})
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": listing})
		}).
		PUT("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateListingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hostId := ctx.GetUint("id")
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var listing models.Listing
				if err := tx.
					Model(&models.Listing{}).
					Where(&models.Listing{ID: params.ID}).
					First(&listing).
					Error; err != nil {
					return err
				}
				if listing.HostID != hostId {
					return errForbidden
				}
				updates := map[string]any{}
				if body.Title != nil {
					updates["title"] = *body.Title
					updates["slug"] = slug.Make(*body.Title)
				}
				if body.Description != nil {
					updates["description"] = *body.Description
				}
				if body.Location != nil {
					updates["location"] = *body.Location
				}
				if body.PricePerNight != nil {
					updates["price_per_night"] = *body.PricePerNight
				}
				if body.MaxGuests != nil {
					updates["max_guests"] = *body.MaxGuests
				}
				if body.Amenities != nil {
					updates["amenities"] = types.StringList(body.Amenities)
				}
				if body.Available != nil {
					updates["available"] = *body.Available
				}
				if len(updates) == 0 {
					return nil
				}
				return tx.
					Model(&models.Listing{}).
					Where(&models.Listing{ID: params.ID}).
					Updates(updates).
					Error
			})
			if err != nil {
				if err == errForbidden {
					ctx.Status(http.StatusForbidden)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		}).
		DELETE("/listings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			hostId := ctx.GetUint("id")
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var listing models.Listing
				if err := tx.
					Model(&models.Listing{}).
					Where(&models.Listing{ID: params.ID}).
					First(&listing).
					Error; err != nil {
					return err
				}
				if listing.HostID != hostId {
					return errForbidden
				}
				// Listing owns its bookings and reviews.
				if err := tx.
					Where(&models.Booking{ListingID: params.ID}).
					Delete(&models.Booking{}).
					Error; err != nil {
					return err
				}
				if err := tx.
					Where(&models.Review{ListingID: params.ID}).
					Delete(&models.Review{}).
					Error; err != nil {
					return err
				}
				return tx.Delete(&listing).Error
			})
			if err != nil {
				if err == errForbidden {
					ctx.Status(http.StatusForbidden)
					return
				}
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusNoContent)
		})
	return g
}
