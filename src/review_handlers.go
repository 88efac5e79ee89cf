package main

import (
	"net/http"
	"stays/src/db"
	"stays/src/models"
	"stays/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func reviewHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/reviews", func(ctx *gin.Context) {
			var body types.CreateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userId := ctx.GetUint("id")
			review := models.Review{
				ListingID: body.ListingID,
				UserID:    userId,
				Rating:    body.Rating,
				Comment:   body.Comment,
			}
			db := db.GetDb()
			err := db.Transaction(func(tx *gorm.DB) error {
				var listing models.Listing
				if err := tx.
					Model(&models.Listing{}).
					Where(&models.Listing{ID: body.ListingID}).
					First(&listing).
					Error; err != nil {
					return err
				}
				// One review per user per listing. Posting again replaces it.
				return tx.
					Clauses(clause.OnConflict{
						Columns:   []clause.Column{{Name: "listing_id"}, {Name: "user_id"}},
						DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
					}).
					Create(&review).
					Error
			})
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": review})
		}).
		GET("/reviews", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			db := db.GetDb()
			var reviews []models.Review
			err := db.
				Model(&models.Review{}).
				Where(&models.Review{UserID: userId}).
				Preload("Listing").
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
