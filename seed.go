package main

import (
	"log"
	"os"

	"github.com/lib/pq"

	"lawfirm-server/database"
	"lawfirm-server/models"
	"lawfirm-server/utils"
)

// seed fills the tables the site cannot function without. Every block is
// idempotent: existing rows are left untouched on restart.
func seed() error {
	if err := seedAdminUser(); err != nil {
		return err
	}
	if err := seedPracticeAreas(); err != nil {
		return err
	}
	return seedPackageTiers()
}

// seedAdminUser creates the dashboard admin from ADMIN_EMAIL/ADMIN_PASSWORD
func seedAdminUser() error {
	db := database.GetDB()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	admin := models.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %s", email)
	return nil
}

func seedPracticeAreas() error {
	db := database.GetDB()

	var count int64
	db.Model(&models.PracticeArea{}).Count(&count)
	if count > 0 {
		return nil
	}

	areas := []models.PracticeArea{
		{
			Title:         "Commercial Law",
			TitleAr:       "القانون التجاري",
			Description:   "Company formation, commercial disputes and trade regulation",
			DescriptionAr: "تأسيس الشركات والمنازعات التجارية وتنظيم التجارة",
			IconName:      "briefcase",
			SortOrder:     1,
		},
		{
			Title:         "Labor Law",
			TitleAr:       "قانون العمل",
			Description:   "Employment contracts, dismissal claims and labor disputes",
			DescriptionAr: "عقود العمل ودعاوى الفصل والمنازعات العمالية",
			IconName:      "users",
			SortOrder:     2,
		},
		{
			Title:         "Criminal Law",
			TitleAr:       "القانون الجنائي",
			Description:   "Defense and representation in criminal proceedings",
			DescriptionAr: "الدفاع والتمثيل في الدعاوى الجنائية",
			IconName:      "scale",
			SortOrder:     3,
		},
		{
			Title:         "Personal Status",
			TitleAr:       "الأحوال الشخصية",
			Description:   "Family matters, inheritance and personal status cases",
			DescriptionAr: "قضايا الأسرة والميراث والأحوال الشخصية",
			IconName:      "home",
			SortOrder:     4,
		},
		{
			Title:         "Contract Drafting",
			TitleAr:       "صياغة العقود",
			Description:   "Drafting and reviewing contracts and agreements",
			DescriptionAr: "صياغة ومراجعة العقود والاتفاقيات",
			IconName:      "file-text",
			SortOrder:     5,
		},
	}

	if err := db.Create(&areas).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d practice areas", len(areas))
	return nil
}

func seedPackageTiers() error {
	db := database.GetDB()

	var count int64
	db.Model(&models.PackageTier{}).Count(&count)
	if count > 0 {
		return nil
	}

	tiers := []models.PackageTier{
		{
			Title:   "Individual Consultation",
			TitleAr: "استشارة فردية",
			Price:   500,
			Features: pq.StringArray{
				"One consultation session",
				"Written legal summary",
				"Follow-up within one week",
			},
			SortOrder: 1,
		},
		{
			Title:   "Small Business",
			TitleAr: "الأعمال الصغيرة",
			Price:   2500,
			Features: pq.StringArray{
				"Monthly consultation hours",
				"Contract review",
				"Priority scheduling",
			},
			SortOrder: 2,
		},
		{
			Title:   "Corporate Retainer",
			TitleAr: "اشتراك الشركات",
			Price:   8000,
			Features: pq.StringArray{
				"Dedicated legal counsel",
				"Unlimited contract drafting",
				"Litigation representation",
				"24h response time",
			},
			SortOrder: 3,
		},
	}

	if err := db.Create(&tiers).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d package tiers", len(tiers))
	return nil
}
