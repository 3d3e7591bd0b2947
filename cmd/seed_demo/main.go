package main

import (
	"fmt"
	"log"

	"github.com/xelth-com/manualsgo/internal/config"
	"github.com/xelth-com/manualsgo/internal/database"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
	"github.com/xelth-com/manualsgo/internal/utils"
)

func main() {
	fmt.Println("🌱 Manuals Demo Data Seeder")
	fmt.Println("=" + string(make([]rune, 60)))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")
	fmt.Println()

	// Run migrations first
	fmt.Println("🔨 Running database migrations...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Document{},
		&models.Section{},
		&models.ContentModule{},
		&models.Language{},
		&models.SectionTranslation{},
		&models.ContentModuleTranslation{},
		&models.Component{},
		&models.Bom{},
		&models.BomItem{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")
	fmt.Println()

	// Check if data already exists
	var docCount int64
	db.Model(&models.Document{}).Count(&docCount)
	if docCount > 0 {
		fmt.Printf("⚠️  Database already has %d documents. Clear it first? (y/N): ", docCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}

		// Clear existing data
		fmt.Println("🗑️  Clearing existing data...")
		db.Exec("TRUNCATE TABLE content_module_translations CASCADE")
		db.Exec("TRUNCATE TABLE section_translations CASCADE")
		db.Exec("TRUNCATE TABLE content_modules CASCADE")
		db.Exec("TRUNCATE TABLE sections CASCADE")
		db.Exec("TRUNCATE TABLE documents CASCADE")
		db.Exec("TRUNCATE TABLE bom_items CASCADE")
		db.Exec("TRUNCATE TABLE boms CASCADE")
		db.Exec("TRUNCATE TABLE components CASCADE")
		db.Exec("TRUNCATE TABLE languages CASCADE")
		fmt.Println("✅ Data cleared")
	}

	fmt.Println()
	fmt.Println("📦 Creating demo data...")
	fmt.Println()

	// 1. Admin user
	fmt.Println("👤 Creating admin user...")
	hash, err := utils.HashPassword("admin123")
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	admin := models.UserAuth{Email: "admin@example.com", Password: hash, Name: "Admin", Role: "admin"}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️  Failed to create admin user: %v", err)
	} else {
		fmt.Println("   ✓ admin@example.com / admin123")
	}
	fmt.Println()

	// 2. Languages
	fmt.Println("🌍 Creating languages...")
	languages := []models.Language{
		{Code: "en", Name: "English", IsActive: true, IsDefault: true},
		{Code: "de", Name: "Deutsch", IsActive: true},
		{Code: "fr", Name: "Français", IsActive: true},
	}
	for i := range languages {
		if err := db.Create(&languages[i]).Error; err != nil {
			log.Printf("⚠️  Failed to create language %s: %v", languages[i].Code, err)
		} else {
			fmt.Printf("   ✓ Created language: %s (%s)\n", languages[i].Name, languages[i].Code)
		}
	}
	fmt.Printf("✅ Created %d languages\n\n", len(languages))

	// 3. Components and BOMs
	fmt.Println("🔩 Creating components...")
	components := []models.Component{
		{Code: "IB270-MB-01", Description: "Mainboard assembly"},
		{Code: "IB270-PSU-02", Description: "Power supply unit 24V"},
		{Code: "IB270-DSP-03", Description: "Display panel 7 inch"},
		{Code: "IB270-ELC-04", Description: "Hand electrode set"},
		{Code: "IB270-ELC-05", Description: "Foot electrode set"},
		{Code: "IB570-MB-01", Description: "Mainboard assembly rev B"},
		{Code: "IB570-DSP-03", Description: "Display panel 10 inch"},
	}
	for i := range components {
		if err := db.Create(&components[i]).Error; err != nil {
			log.Printf("⚠️  Failed to create component %s: %v", components[i].Code, err)
		} else {
			fmt.Printf("   ✓ Created component: [%s] %s\n", components[i].Code, components[i].Description)
		}
	}
	fmt.Printf("✅ Created %d components\n\n", len(components))

	fmt.Println("📋 Creating BOMs...")
	bomA := models.Bom{Title: "Analyzer 270 v1", Description: "Production BOM, revision 1"}
	bomB := models.Bom{Title: "Analyzer 270 v2", Description: "Production BOM, revision 2"}
	for _, b := range []*models.Bom{&bomA, &bomB} {
		if err := db.Create(b).Error; err != nil {
			log.Fatalf("❌ Failed to create BOM %s: %v", b.Title, err)
		}
		fmt.Printf("   ✓ Created BOM: %s\n", b.Title)
	}

	items := []models.BomItem{
		{BomID: bomA.ID, ComponentID: components[0].ID, Level: 1, Quantity: 1},
		{BomID: bomA.ID, ComponentID: components[1].ID, Level: 1, Quantity: 1},
		{BomID: bomA.ID, ComponentID: components[2].ID, Level: 2, Quantity: 1},
		{BomID: bomA.ID, ComponentID: components[3].ID, Level: 2, Quantity: 2},
		{BomID: bomB.ID, ComponentID: components[5].ID, Level: 1, Quantity: 1}, // mainboard rev B
		{BomID: bomB.ID, ComponentID: components[1].ID, Level: 1, Quantity: 1},
		{BomID: bomB.ID, ComponentID: components[6].ID, Level: 2, Quantity: 1}, // larger display
		{BomID: bomB.ID, ComponentID: components[3].ID, Level: 2, Quantity: 2},
		{BomID: bomB.ID, ComponentID: components[4].ID, Level: 2, Quantity: 2}, // added foot electrodes
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			log.Printf("⚠️  Failed to create BOM item: %v", err)
		}
	}
	fmt.Printf("✅ Created 2 BOMs with %d items\n\n", len(items))

	// 4. Document with a section tree exercising every module type
	fmt.Println("📖 Creating demo manual...")
	doc := models.Document{
		Title:       "Body Composition Analyzer 270",
		Description: "Service and user manual",
		Version:     "1.0",
		Status:      models.DocumentStatusDraft,
	}
	if err := db.Create(&doc).Error; err != nil {
		log.Fatalf("❌ Failed to create document: %v", err)
	}
	fmt.Printf("   ✓ Created document: %s (%s)\n", doc.Title, doc.ID)

	intro := createSection(db, doc.ID, nil, 1, "Introduction", "Purpose and scope of this manual")
	safety := createSection(db, doc.ID, nil, 2, "Safety", "Read before operating the device")
	install := createSection(db, doc.ID, nil, 3, "Installation", "")
	unpack := createSection(db, doc.ID, &install.ID, 1, "Unpacking", "")
	setup := createSection(db, doc.ID, &install.ID, 2, "Initial Setup", "")
	maint := createSection(db, doc.ID, nil, 4, "Maintenance", "")
	parts := createSection(db, doc.ID, nil, 5, "Spare Parts", "")

	type seedModule struct {
		section *models.Section
		order   int
		typ     string
		content models.JSONB
	}
	seedModules := []seedModule{
		{intro, 1, modules.TypeText, models.JSONB{
			"text": "This manual describes installation, operation and maintenance of the analyzer.",
		}},
		{intro, 2, modules.TypeImage, models.JSONB{
			"title": "Front view", "caption": "Analyzer with display and electrodes", "alt": "Front view of the device", "src": "/assets/front.png",
		}},
		{intro, 3, modules.TypeVideo, models.JSONB{
			"title": "Product tour", "caption": "Three minute overview", "alt": "Overview video", "src": "/assets/tour.mp4",
		}},
		{intro, 4, modules.TypeLink, models.JSONB{
			"text": "Manufacturer support portal", "description": "Firmware downloads and FAQ", "url": "https://support.example.com",
		}},
		{safety, 1, modules.TypeWarning, models.JSONB{
			"title": "Electric shock hazard", "message": "Disconnect mains power before opening the housing.",
		}},
		{safety, 2, modules.TypeDanger, models.JSONB{
			"title": "Pacemaker interference", "description": "Persons with implanted medical devices must not use the analyzer.",
		}},
		{safety, 3, modules.TypeNote, models.JSONB{
			"title": "Storage conditions", "description": "Store between 10 and 40 degrees Celsius.",
		}},
		{safety, 4, modules.TypeSafetyInstructions, models.JSONB{
			"title": "General precautions", "description": "Operate on a level, dry surface only.",
		}},
		{unpack, 1, modules.TypeChecklist, models.JSONB{
			"title": "Delivery contents",
			"items": []interface{}{
				map[string]interface{}{"text": "Analyzer base unit", "checked": false},
				map[string]interface{}{"text": "Power cable", "checked": false},
				map[string]interface{}{"text": "Quick start guide", "checked": false},
			},
		}},
		{setup, 1, modules.TypeTable, models.JSONB{
			"caption": "Operating conditions",
			"headers": []interface{}{"Parameter", "Range"},
			"rows": []interface{}{
				[]interface{}{"Temperature", "10-40 °C"},
				[]interface{}{"Humidity", "30-75 %"},
			},
		}},
		{setup, 2, modules.TypeFile, models.JSONB{
			"title": "Calibration protocol", "description": "Printable calibration record sheet", "src": "/assets/calibration.xlsx",
		}},
		{setup, 3, modules.TypePdf, models.JSONB{
			"title": "Declaration of conformity", "description": "EU declaration, all languages", "src": "/assets/doc.pdf",
		}},
		{setup, 4, modules.Type3DModel, models.JSONB{
			"title": "Housing model", "description": "Exploded view of the housing", "src": "/assets/housing.glb",
		}},
		{maint, 1, modules.TypeComponent, models.JSONB{
			"componentId": components[3].ID,
		}},
		{maint, 2, modules.TypeCaution, models.JSONB{
			"title": "Cleaning agents", "description": "Do not use solvent based cleaners on electrode surfaces.",
		}},
		{parts, 1, modules.TypeBom, models.JSONB{
			"title": "Replacement parts",
			"headers": map[string]interface{}{
				"code": "Part number", "description": "Description", "quantity": "Qty",
			},
			"messages": map[string]interface{}{
				"empty": "No parts listed",
			},
			"descriptions": map[string]interface{}{
				components[3].Code: "Hand electrode set",
				components[4].Code: "Foot electrode set",
			},
		}},
	}

	created := 0
	for _, sm := range seedModules {
		m := models.ContentModule{SectionID: sm.section.ID, Type: sm.typ, Order: sm.order, Content: sm.content}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("⚠️  Failed to create %s module: %v", sm.typ, err)
		} else {
			created++
		}
	}
	fmt.Printf("✅ Created %d sections and %d content modules\n\n", 7, created)

	// 5. A partial German translation so the status endpoint has something
	// to report
	fmt.Println("🇩🇪 Creating partial German translation...")
	var de models.Language
	db.First(&de, "code = ?", "de")

	secTr := models.SectionTranslation{
		SectionID:   intro.ID,
		LanguageID:  de.ID,
		Title:       "Einführung",
		Description: "Zweck und Umfang dieses Handbuchs",
		Status:      models.TranslationStatusTranslated,
	}
	if err := db.Create(&secTr).Error; err != nil {
		log.Printf("⚠️  Failed to create section translation: %v", err)
	}

	var textModule models.ContentModule
	db.Where("section_id = ? AND type = ?", intro.ID, modules.TypeText).First(&textModule)
	modTr := models.ContentModuleTranslation{
		ModuleID:   textModule.ID,
		LanguageID: de.ID,
		Content: models.JSONB{
			"text": "Dieses Handbuch beschreibt Installation, Betrieb und Wartung des Analysators.",
		},
		Status: models.TranslationStatusTranslated,
	}
	if err := db.Create(&modTr).Error; err != nil {
		log.Printf("⚠️  Failed to create module translation: %v", err)
	}
	fmt.Println("✅ Partial translation created")

	fmt.Println()
	fmt.Println("=" + string(make([]rune, 60)))
	fmt.Println("🎉 Demo data seeded successfully!")
	fmt.Printf("   Document: %s\n", doc.ID)
	fmt.Printf("   BOM A:    %s\n", bomA.ID)
	fmt.Printf("   BOM B:    %s\n", bomB.ID)
}

func createSection(db *database.DB, documentID string, parentID *string, order int, title, description string) *models.Section {
	s := models.Section{
		DocumentID:  documentID,
		ParentID:    parentID,
		Order:       order,
		Title:       title,
		Description: description,
	}
	if err := db.Create(&s).Error; err != nil {
		log.Fatalf("❌ Failed to create section %s: %v", title, err)
	}
	fmt.Printf("   ✓ Created section: %s\n", title)
	return &s
}
