package main

import (
	"log"
	"time"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/domain"
)

// Genre reference data. The app itself never creates genres; this list is
// the only way they enter the database.
var genreNames = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Details{},
		&domain.Genre{},
		&domain.Venue{},
		&domain.Artist{},
		&domain.Show{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (FK-safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM shows")
	db.Exec("DELETE FROM artist_genres")
	db.Exec("DELETE FROM venue_genres")
	db.Exec("DELETE FROM artists")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM details")
	db.Exec("DELETE FROM genres")

	// ================== GENRES ==================
	log.Println("Creating genres...")
	genres := map[string]domain.Genre{}
	for _, name := range genreNames {
		g := domain.Genre{Name: name}
		db.Create(&g)
		genres[name] = g
	}

	// ================== VENUES ==================
	log.Println("Creating venues...")

	venueSeeds := []struct {
		name, city, state, address, phone, website, image, facebook string
		seeking                                                     bool
		seekingText                                                 string
		genres                                                      []string
	}{
		{
			name: "The Musical Hop", city: "San Francisco", state: "CA",
			address: "1015 Folsom Street", phone: "123-123-1234",
			website: "https://www.themusicalhop.com",
			image:   "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			facebook: "https://www.facebook.com/TheMusicalHop",
			seeking: true, seekingText: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			genres: []string{"Jazz", "Reggae", "Classical", "Folk"},
		},
		{
			name: "The Dueling Pianos Bar", city: "New York", state: "NY",
			address: "335 Delancey Street", phone: "914-003-1132",
			website: "https://www.theduelingpianos.com",
			image:   "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			facebook: "https://www.facebook.com/theduelingpianos",
			genres:  []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			name: "Park Square Live Music & Coffee", city: "San Francisco", state: "CA",
			address: "34 Whiskey Moore Ave", phone: "415-000-1234",
			website: "https://www.parksquarelivemusicandcoffee.com",
			image:   "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			facebook: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			genres:  []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}

	venues := make([]domain.Venue, 0, len(venueSeeds))
	for _, seed := range venueSeeds {
		d := domain.Details{
			City: seed.city, State: seed.state, Address: seed.address,
			Phone: seed.phone, Website: seed.website,
			ImageLink: seed.image, FacebookLink: seed.facebook,
		}
		db.Create(&d)

		v := domain.Venue{
			Name:          seed.name,
			DetailsID:     d.ID,
			SeekingTalent: seed.seeking,
			SeekingText:   seed.seekingText,
		}
		db.Create(&v)
		for _, name := range seed.genres {
			db.Exec("INSERT INTO venue_genres (venue_id, genre_id) VALUES (?, ?)", v.ID, genres[name].ID)
		}
		venues = append(venues, v)
	}

	// ================== ARTISTS ==================
	log.Println("Creating artists...")

	artistSeeds := []struct {
		name, city, state, phone, website, image, facebook string
		seeking                                            bool
		seekingText                                        string
		genres                                             []string
	}{
		{
			name: "Guns N Petals", city: "San Francisco", state: "CA",
			phone: "326-123-5000", website: "https://www.gunsnpetalsband.com",
			image:    "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			facebook: "https://www.facebook.com/GunsNPetals",
			seeking:  true, seekingText: "Looking for shows to perform at in the San Francisco Bay Area!",
			genres: []string{"Rock n Roll"},
		},
		{
			name: "Matt Quevedo", city: "New York", state: "NY",
			phone:    "300-400-5000",
			image:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
			facebook: "https://www.facebook.com/mattquevedo923251523",
			genres:   []string{"Jazz"},
		},
		{
			name: "The Wild Sax Band", city: "San Francisco", state: "CA",
			phone:  "432-325-5432",
			image:  "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
			genres: []string{"Jazz", "Classical"},
		},
	}

	artists := make([]domain.Artist, 0, len(artistSeeds))
	for _, seed := range artistSeeds {
		d := domain.Details{
			City: seed.city, State: seed.state, Phone: seed.phone,
			Website: seed.website, ImageLink: seed.image, FacebookLink: seed.facebook,
		}
		db.Create(&d)

		a := domain.Artist{
			Name:         seed.name,
			DetailsID:    d.ID,
			SeekingVenue: seed.seeking,
			SeekingText:  seed.seekingText,
		}
		db.Create(&a)
		for _, name := range seed.genres {
			db.Exec("INSERT INTO artist_genres (artist_id, genre_id) VALUES (?, ?)", a.ID, genres[name].ID)
		}
		artists = append(artists, a)
	}

	// ================== SHOWS ==================
	log.Println("Creating shows...")

	now := time.Now()
	showSeeds := []struct {
		artist, venue int
		start         time.Time
	}{
		{artist: 0, venue: 0, start: now.AddDate(0, -10, 0)},
		{artist: 1, venue: 2, start: now.AddDate(0, -8, 0)},
		{artist: 2, venue: 2, start: now.AddDate(0, 1, 0)},
		{artist: 2, venue: 0, start: now.AddDate(0, 1, 7)},
		{artist: 0, venue: 1, start: now.AddDate(0, 2, 0)},
	}

	for _, seed := range showSeeds {
		sh := domain.Show{
			ArtistID:  artists[seed.artist].ID,
			VenueID:   venues[seed.venue].ID,
			StartTime: seed.start,
			Upcoming:  seed.start.After(now),
		}
		db.Create(&sh)
	}

	log.Println("Seed complete.")
}
