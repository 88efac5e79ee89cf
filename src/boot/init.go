package boot

import (
	"context"
	"errors"
	"log"
	"os"
	"stays/src/common"
	"stays/src/db"
	"stays/src/lib"
	"stays/src/lib/mailer"
	"stays/src/models"
	"stays/src/models/scopes"
	"stays/src/types"
	"stays/src/utils"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitBroker() {
	if os.Getenv("API_ENV") == "local" {
		go lib.KafkaCreateTopics(utils.WithSuffix(mailer.BookingConfirmationsQueue))
	}
	common.QueueConsumers()
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateCronJob(ReconcilePendingPayments, 10*time.Minute); err != nil {
		log.Printf("Error scheduling payment reconciliation: %s\n", err.Error())
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}

// ReconcilePendingPayments sweeps Payments stuck in Pending and asks the
// gateway for their final status. Covers the case where the guest never
// came back through the verify redirect.
func ReconcilePendingPayments() {
	db := db.GetDb()
	var payments []models.Payment
	staleBefore := time.Now().Add(-15 * time.Minute)
	err := db.
		Model(&models.Payment{}).
		Scopes(scopes.WithPendingStatus).
		Where("transaction_id IS NOT NULL").
		Where("created_at < ?", staleBefore).
		Order("created_at asc").
		Limit(100).
		Find(&payments).
		Error
	if err != nil {
		log.Printf("Error retrieving pending payments: %s\n", err.Error())
		return
	}
	if len(payments) == 0 {
		return
	}
	log.Printf("Found %d pending payments to reconcile", len(payments))
	for _, payment := range payments {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		status, err := utils.VerifyPayment(ctx, *payment.TransactionID)
		cancel()
		if err != nil {
			if errors.Is(err, types.ErrGatewayUnreachable) {
				log.Printf("Gateway unreachable while reconciling [%s]; will retry next sweep\n", *payment.TransactionID)
				return
			}
			log.Printf("Error reconciling payment [%s]: %s\n", *payment.TransactionID, err.Error())
			continue
		}
		log.Printf("Reconciled payment [%s]: %s\n", *payment.TransactionID, status)
	}
}
