package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"stays/src/config"
	"stays/src/db"
	"stays/src/lib"
	"stays/src/models"
	"stays/src/types"
	"stays/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func paymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/payments/initiate", func(ctx *gin.Context) {
			var body types.InitiatePaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			txRef := uuid.NewString()
			returnURL := fmt.Sprintf("%s/api/v1/payments/verify?tx_ref=%s", config.APIHost(), txRef)
			chapa := lib.GetChapaClient()
			rctx, cancel := context.WithTimeout(ctx.Request.Context(), 30*time.Second)
			defer cancel()
			out, err := chapa.InitializeTransaction(rctx, &lib.InitializeTransactionInput{
				Amount:    body.Amount,
				Currency:  config.PAYMENT_CURRENCY,
				TxRef:     txRef,
				ReturnURL: returnURL,
			})
			if err != nil {
				log.Printf("payment initiation for %s failed: %s\n", body.BookingReference, err.Error())
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Payment initiation failed"})
				return
			}
			payment := models.Payment{
				BookingReference: body.BookingReference,
				TransactionID:    &out.TxRef,
				Amount:           body.Amount,
				Status:           types.PAYMENT_PENDING,
			}
			db := db.GetDb()
			err = db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&payment).Error
			})
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payment, "checkout_url": out.CheckoutURL})
		}).
		GET("/payments", func(ctx *gin.Context) {
			db := db.GetDb()
			var payments []models.Payment
			err := db.
				Model(&models.Payment{}).
				Order("created_at DESC").
				Limit(100).
				Find(&payments).
				Error
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payments, "count": len(payments)})
		})
	return g
}

// The gateway redirects the payer's browser here after checkout, so the
// route carries no bearer token.
func publicPaymentHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/payments/verify", func(ctx *gin.Context) {
			txRef := ctx.Query("tx_ref")
			if txRef == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "tx_ref is required"})
				return
			}
			rctx, cancel := context.WithTimeout(ctx.Request.Context(), 30*time.Second)
			defer cancel()
			status, err := utils.VerifyPayment(rctx, txRef)
			if err != nil {
				if errors.Is(err, types.ErrTransactionNotFound) {
					ctx.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
					return
				}
				log.Printf("payment verification for %s failed: %s\n", txRef, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if status == types.PAYMENT_COMPLETED {
				ctx.JSON(http.StatusOK, gin.H{"status": "Payment successful"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"status": "Payment failed"})
		})
	return g
}
