package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/signsetu/signsetu/internal/entities"
)

// demoWords is the demo content shipped with the application.
var demoWords = []entities.Word{
	{
		Word:       "Namaste",
		Definition: "A traditional Indian greeting, showing respect by joining palms together in front of the chest.",
		ImageURL:   "https://images.unsplash.com/photo-1576867277899-9d790876ca5a?auto=format&fit=crop&w=987&q=80",
		VideoURL:   "https://www.youtube.com/embed/HcQ7dNWmJQc",
		Category:   "greeting",
	},
	{
		Word:       "Diwali",
		Definition: "The Festival of Lights, one of the most significant festivals in Indian culture symbolizing the victory of light over darkness.",
		ImageURL:   "https://images.unsplash.com/photo-1604423439387-36e829b2aa81?auto=format&fit=crop&w=2002&q=80",
		VideoURL:   "https://www.youtube.com/embed/byLO0U_tV_A",
		Category:   "culture",
	},
	{
		Word:       "Cricket",
		Definition: "A bat-and-ball game that is extremely popular in India, often referred to as a religion rather than just a sport.",
		ImageURL:   "https://images.unsplash.com/photo-1566577134770-3d85bb3a9cc4?auto=format&fit=crop&w=2070&q=80",
		VideoURL:   "https://www.youtube.com/embed/wrMcpeACozM",
		Category:   "sport",
	},
	{
		Word:       "Yoga",
		Definition: "An ancient physical, mental and spiritual practice that originated in India, aiming at body-mind harmony.",
		ImageURL:   "https://images.unsplash.com/photo-1545389336-cf090694435e?auto=format&fit=crop&w=1064&q=80",
		VideoURL:   "https://www.youtube.com/embed/19P9MdCG_nY",
		Category:   "practice",
	},
	{
		Word:       "Chai",
		Definition: "A sweetened blend of tea and spices with milk, integral to Indian culture and hospitality.",
		ImageURL:   "https://images.unsplash.com/photo-1577968897966-3d4325b36b07?auto=format&fit=crop&w=1974&q=80",
		VideoURL:   "https://www.youtube.com/embed/4-QsQeVIcIw",
		Category:   "food",
	},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.WordDefinition{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedDemoWords replaces all word content with the bundled demo set.
func (d *Database) SeedDemoWords() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.WordDefinition{}).Error; err != nil {
			return fmt.Errorf("failed to clear definitions: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&entities.Word{}).Error; err != nil {
			return fmt.Errorf("failed to clear words: %w", err)
		}

		for i := range demoWords {
			word := demoWords[i]
			if err := tx.Create(&word).Error; err != nil {
				return fmt.Errorf("failed to create word %s: %w", word.Word, err)
			}
			log.Printf("Seeded word: %s", word.Word)
		}
		return nil
	})
}
