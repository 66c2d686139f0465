package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"padel-games/internal/database"
	"padel-games/internal/padel"
	"padel-games/internal/store"
)

const demoUserID = "demo-user"

func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "padel.db"
	}

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	padelStore := store.New(db)

	players := []padel.Player{
		{FirstName: ptr("Marco"), LastName: "Rossi", Nickname: ptr("Il Martello"), UserID: demoUserID},
		{FirstName: ptr("Luca"), LastName: "Bianchi", UserID: demoUserID},
		{FirstName: ptr("Giulia"), LastName: "Verdi", YearOfBirth: ptr("1992"), UserID: demoUserID},
		{FirstName: ptr("Sara"), LastName: "Esposito", UserID: demoUserID},
	}
	for i := range players {
		if err := padelStore.CreatePlayer(&players[i]); err != nil {
			log.Fatalf("Failed to seed player %s: %s", players[i].LastName, err)
		}
		log.Info("Seeded player", "id", players[i].ID, "lastName", players[i].LastName)
	}

	tournament := padel.Tournament{
		Name:      "Torneo di Primavera",
		StartDate: date(2024, 4, 1),
		UserID:    demoUserID,
	}
	if err := padelStore.CreateTournament(&tournament); err != nil {
		log.Fatalf("Failed to seed tournament: %s", err)
	}
	log.Info("Seeded tournament", "id", tournament.ID, "name", tournament.Name)

	games := []padel.Game{
		{
			PlayedAt:      date(2024, 4, 2),
			Team1PlayerDx: players[0].ID, Team1PlayerSx: players[1].ID,
			Team2PlayerDx: players[2].ID, Team2PlayerSx: players[3].ID,
			Team1Set1: ptr(6), Team2Set1: ptr(4),
			Team1Set2: ptr(3), Team2Set2: ptr(6),
			Team1Set3: ptr(6), Team2Set3: ptr(2),
			TournamentID: &tournament.ID,
			UserID:       demoUserID,
		},
		{
			PlayedAt:      date(2024, 4, 9),
			Team1PlayerDx: players[0].ID, Team1PlayerSx: players[2].ID,
			Team2PlayerDx: players[1].ID, Team2PlayerSx: players[3].ID,
			Team1Set1: ptr(6), Team2Set1: ptr(7),
			Team1Set2: ptr(7), Team2Set2: ptr(5),
			UserID: demoUserID,
		},
	}
	for i := range games {
		if err := padelStore.CreateGame(&games[i]); err != nil {
			log.Fatalf("Failed to seed game: %s", err)
		}
		log.Info("Seeded game", "id", games[i].ID, "playedAt", games[i].PlayedAt.Format("2006-01-02"))
	}

	log.Info("Seeding complete", "userId", demoUserID)
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
