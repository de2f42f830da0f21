// Command seed loads pets from a CSV file into the database with idempotent
// upserts. It is the administrative batch path; the API itself only inserts
// one pet at a time.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/adoteumpet/service-adoption/internal/config"
	"github.com/adoteumpet/service-adoption/internal/database"
	"github.com/adoteumpet/service-adoption/internal/logger"
	"github.com/adoteumpet/service-adoption/internal/repository"
)

func main() {
	csvPath := flag.String("file", "pets.csv", "path to the pets CSV file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DBConfig.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(&repository.PetModel{}); err != nil {
		log.Fatal("failed to run auto-migration", zap.Error(err))
	}

	models, err := readPetsCSV(*csvPath)
	if err != nil {
		log.Fatal("failed to read seed file", zap.String("file", *csvPath), zap.Error(err))
	}
	log.Info("read pets from CSV", zap.Int("count", len(models)))

	seeded := 0
	for _, model := range models {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&model).Error
		if err != nil {
			log.Error("failed to upsert pet",
				zap.String("pet_id", model.ID.String()),
				zap.Error(err),
			)
			continue
		}
		seeded++
	}

	log.Info("seeding completed", zap.Int("seeded", seeded), zap.Int("total", len(models)))
}

// readPetsCSV parses the seed file. Expected header:
// id,name,species,breed,age_years,shelter_city,shelter_cep,shelter_street,
// shelter_number,shelter_neighborhood,shelter_state,status
func readPetsCSV(path string) ([]repository.PetModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("seed file %s has no data rows", path)
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	now := time.Now().UTC()
	models := make([]repository.PetModel, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id, err := uuid.Parse(field(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("invalid pet id %q: %w", field(row, "id"), err)
		}
		age, err := strconv.Atoi(field(row, "age_years"))
		if err != nil {
			return nil, fmt.Errorf("invalid age_years for pet %s: %w", id, err)
		}
		status := field(row, "status")
		if status == "" {
			status = "available"
		}

		models = append(models, repository.PetModel{
			ID:                  id,
			Name:                field(row, "name"),
			Species:             field(row, "species"),
			Breed:               field(row, "breed"),
			AgeYears:            age,
			ShelterCity:         field(row, "shelter_city"),
			ShelterCEP:          field(row, "shelter_cep"),
			ShelterStreet:       field(row, "shelter_street"),
			ShelterNumber:       field(row, "shelter_number"),
			ShelterNeighborhood: field(row, "shelter_neighborhood"),
			ShelterState:        field(row, "shelter_state"),
			Status:              status,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}
	return models, nil
}
