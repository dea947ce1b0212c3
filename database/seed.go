package database

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gurukul-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates the database with the initial admin account, gallery
// images and announcements. Safe to run repeatedly: every step checks
// what is already there before inserting.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	log.Println("Starting database seeding...")

	if err := seedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	if err := seedGallery(db, adminEmail); err != nil {
		return err
	}
	if err := seedAnnouncements(db, adminEmail); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed!")
	return nil
}

func seedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %v", err)
	}
	if count > 0 {
		log.Println("✓ Admin user already exists")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  string(hashed),
		Name:      "Admin",
		Phone:     "+91 1234567890",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %v", err)
	}
	log.Printf("✓ Created admin user (email: %s)", email)
	return nil
}

func seedGallery(db *gorm.DB, uploadedBy string) error {
	var count int64
	if err := db.Model(&models.Gallery{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count gallery images: %v", err)
	}
	if count > 0 {
		log.Printf("✓ Gallery already has %d images", count)
		return nil
	}

	type galleryImage struct {
		title    string
		imageURL string
		category string
	}
	images := []galleryImage{
		{"Campus Classroom", "https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=400&h=300&fit=crop", "campus"},
		{"Library", "https://images.unsplash.com/photo-1427504494785-3a9ca7044f45?w=400&h=300&fit=crop", "facilities"},
		{"Student Life", "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400&h=300&fit=crop", "students"},
		{"Sports", "https://images.unsplash.com/photo-1509062522246-3755977927d7?w=400&h=300&fit=crop", "sports"},
		{"Science Lab", "https://images.unsplash.com/photo-1577896851231-70ef18881754?w=400&h=300&fit=crop", "facilities"},
		{"Campus Ground", "https://images.unsplash.com/photo-1588072432836-e10032774350?w=400&h=300&fit=crop", "campus"},
		{"Music Room", "https://images.unsplash.com/photo-1546410531-bb4caa6b424d?w=400&h=300&fit=crop", "facilities"},
		{"Students Learning", "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400&h=300&fit=crop", "students"},
		{"Classroom", "https://images.unsplash.com/photo-1524178232363-1fb2b075b655?w=400&h=300&fit=crop", "campus"},
		{"Study Time", "https://images.unsplash.com/photo-1541339907198-e08756dedf3f?w=400&h=300&fit=crop", "students"},
		{"Group Study", "https://images.unsplash.com/photo-1519999482648-25049ddd37b1?w=400&h=300&fit=crop", "students"},
		{"Discussion", "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400&h=300&fit=crop", "students"},
	}

	items := make([]models.Gallery, 0, len(images))
	for _, img := range images {
		items = append(items, models.Gallery{
			ID:         uuid.New().String(),
			Title:      img.title,
			ImageURL:   img.imageURL,
			Category:   img.category,
			UploadedBy: uploadedBy,
			CreatedAt:  time.Now().UTC(),
		})
	}
	if err := db.Create(&items).Error; err != nil {
		return fmt.Errorf("failed to seed gallery: %v", err)
	}
	log.Printf("✓ Created %d gallery images", len(items))
	return nil
}

func seedAnnouncements(db *gorm.DB, createdBy string) error {
	var count int64
	if err := db.Model(&models.Announcement{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count announcements: %v", err)
	}
	if count > 0 {
		log.Printf("✓ Announcements already exist (%d items)", count)
		return nil
	}

	announcements := []models.Announcement{
		{
			ID:        uuid.New().String(),
			Title:     "Admissions Open for 2025-26",
			Content:   "We are excited to announce that admissions are now open for the academic year 2025-26. Apply now!",
			Category:  "admissions",
			IsActive:  true,
			CreatedBy: createdBy,
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:        uuid.New().String(),
			Title:     "Annual Sports Day",
			Content:   "Join us for our annual sports day celebration on March 15th. All parents and students are invited!",
			Category:  "events",
			IsActive:  true,
			CreatedBy: createdBy,
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:        uuid.New().String(),
			Title:     "Academic Excellence Awards",
			Content:   "Congratulations to all students who achieved outstanding results in the recent examinations!",
			Category:  "achievements",
			IsActive:  true,
			CreatedBy: createdBy,
			CreatedAt: time.Now().UTC(),
		},
	}
	if err := db.Create(&announcements).Error; err != nil {
		return fmt.Errorf("failed to seed announcements: %v", err)
	}
	log.Printf("✓ Created %d announcements", len(announcements))
	return nil
}
