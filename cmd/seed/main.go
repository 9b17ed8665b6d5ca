package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agorahq/agora/internal/model"
	"github.com/agorahq/agora/pkg/database"
)

func usage() {
	cmd := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <database_url>\n(example: \"%s postgres://postgres@localhost:5432/agora\")\n", cmd, cmd)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	db, err := database.Connect(os.Args[1])
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Author{},
		&model.Idea{},
		&model.Category{},
		&model.Tag{},
	); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("seeding failed: %v", err)
	}
	logrus.Info("database seeded")
}

// Every seed helper is idempotent per unique key, so the command can run
// against an already-populated database.
func seed(db *gorm.DB) error {
	author, err := seedAuthor(db)
	if err != nil {
		return err
	}
	if err := seedIdeas(db, author); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	return seedTags(db)
}

func seedAuthor(db *gorm.DB) (*model.Author, error) {
	var author model.Author
	err := db.Where("username = ?", "michaelc").First(&author).Error
	if err == nil {
		return &author, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	author = model.Author{
		Username: "michaelc",
		Fullname: "mike cullerton",
		Email:    "michaelc@cullerton.com",
	}
	if err := db.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func seedIdeas(db *gorm.DB, author *model.Author) error {
	ideas := []model.Idea{
		{Title: "First Idea!", Body: "This is my idea.", AuthorID: author.ID},
		{Title: "Another Idea!", Body: "This is another idea.", AuthorID: author.ID},
	}

	for _, idea := range ideas {
		var count int64
		if err := db.Model(&model.Idea{}).
			Where("title = ?", idea.Title).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&idea).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	for _, name := range []string{"Local", "Politics", "Sports"} {
		var count int64
		if err := db.Model(&model.Category{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.Category{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedTags(db *gorm.DB) error {
	for _, name := range []string{"Python", "Zoey", "BBQ"} {
		var count int64
		if err := db.Model(&model.Tag{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&model.Tag{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
