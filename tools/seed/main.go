package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path"
	"time"

	"stays/src/boot"
	"stays/src/db"
	"stays/src/models"
	"stays/src/types"
	"stays/src/utils"

	"github.com/go-faker/faker/v4"
	"github.com/gosimple/slug"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var locations = []string{
	"Addis Ababa", "Bahir Dar", "Lalibela", "Gondar", "Hawassa", "Axum", "Harar",
}

var amenityPool = []string{
	"wifi", "kitchen", "parking", "pool", "air conditioning", "washer", "balcony", "garden",
}

func main() {
	seed := flag.Int64("seed", 42, "random seed")
	hosts := flag.Int("hosts", 5, "number of host users")
	guests := flag.Int("guests", 20, "number of guest users")
	listings := flag.Int("listings", 30, "number of listings")
	flag.Parse()

	if os.Getenv("API_ENV") == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("no .env file loaded: %s\n", err.Error())
		}
	}

	rnd := rand.New(rand.NewSource(*seed))
	faker.SetRandomSource(rand.NewSource(*seed))

	boot.InitDb()
	d := db.GetDb()

	var hostRows []models.User
	var guestRows []models.User
	err := d.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < *hosts; i++ {
			user := models.User{
				Name:  faker.Name(),
				Email: fmt.Sprintf("host%d@%s", i, faker.DomainName()),
				Role:  "host",
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			hostRows = append(hostRows, user)
		}
		for i := 0; i < *guests; i++ {
			user := models.User{
				Name:  faker.Name(),
				Email: fmt.Sprintf("guest%d@%s", i, faker.DomainName()),
				Role:  "guest",
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			guestRows = append(guestRows, user)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error seeding users: %s\n", err.Error())
	}
	log.Printf("seeded %d hosts, %d guests\n", len(hostRows), len(guestRows))

	var listingRows []models.Listing
	err = d.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < *listings; i++ {
			title := fmt.Sprintf("%s %s", faker.Word(), faker.Word())
			description := faker.Paragraph()
			amenities := types.StringList(pick(rnd, amenityPool, 2+rnd.Intn(4)))
			listing := models.Listing{
				HostID:        hostRows[rnd.Intn(len(hostRows))].ID,
				Title:         title,
				Slug:          slug.Make(fmt.Sprintf("%s-%d", title, i)),
				Description:   &description,
				Location:      locations[rnd.Intn(len(locations))],
				PricePerNight: float64(30 + rnd.Intn(270)),
				MaxGuests:     uint(1 + rnd.Intn(8)),
				Amenities:     &amenities,
				Available:     rnd.Intn(10) > 0,
			}
			if err := tx.Create(&listing).Error; err != nil {
				return err
			}
			listingRows = append(listingRows, listing)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error seeding listings: %s\n", err.Error())
	}
	log.Printf("seeded %d listings\n", len(listingRows))

	bookings := 0
	for _, guest := range guestRows {
		listing := listingRows[rnd.Intn(len(listingRows))]
		start := time.Now().AddDate(0, 0, 7+rnd.Intn(60)).Truncate(24 * time.Hour)
		end := start.AddDate(0, 0, 1+rnd.Intn(7))
		params := &types.CreateBookingRequestBody{
			ListingID: listing.ID,
			StartDate: start.Format("2006-01-02"),
			EndDate:   end.Format("2006-01-02"),
		}
		if _, err := utils.CreateBooking(params, guest.ID); err != nil {
			log.Printf("skipping booking for guest %d: %s\n", guest.ID, err.Error())
			continue
		}
		bookings++
	}
	log.Printf("seeded %d bookings\n", bookings)

	reviews := 0
	err = d.Transaction(func(tx *gorm.DB) error {
		for _, guest := range guestRows {
			if rnd.Intn(2) == 0 {
				continue
			}
			comment := faker.Sentence()
			review := models.Review{
				ListingID: listingRows[rnd.Intn(len(listingRows))].ID,
				UserID:    guest.ID,
				Rating:    1 + rnd.Intn(5),
				Comment:   comment,
			}
			if err := tx.Create(&review).Error; err != nil {
				return err
			}
			reviews++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error seeding reviews: %s\n", err.Error())
	}
	log.Printf("seeded %d reviews\n", reviews)
}

func pick(rnd *rand.Rand, pool []string, n int) []string {
	idx := rnd.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}
