package erp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xelth-com/manualsgo/internal/config"
	"github.com/xelth-com/manualsgo/internal/database"
	"github.com/xelth-com/manualsgo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// erpProduct mirrors the fields fetched from product.product
type erpProduct struct {
	ID          int64  `json:"id"`
	DefaultCode string `json:"default_code"`
	Name        string `json:"name"`
}

// erpBom mirrors the fields fetched from mrp.bom
type erpBom struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// erpBomLine mirrors the fields fetched from mrp.bom.line
type erpBomLine struct {
	ID        int64         `json:"id"`
	BomID     []interface{} `json:"bom_id"`     // [id, display_name]
	ProductID []interface{} `json:"product_id"` // [id, display_name]
	Qty       float64       `json:"product_qty"`
}

// SyncService mirrors ERP components and BOMs into the local store on an
// interval. Disabled when no ERP URL is configured.
type SyncService struct {
	db     *database.DB
	cfg    config.ERPConfig
	client *Client
	stop   chan struct{}
}

// NewSyncService creates the sync service
func NewSyncService(db *database.DB, cfg config.ERPConfig) *SyncService {
	return &SyncService{
		db:   db,
		cfg:  cfg,
		stop: make(chan struct{}),
	}
}

// Start launches the background sync loop
func (s *SyncService) Start() {
	if s.cfg.URL == "" {
		log.Println("ℹ️ ERP sync disabled (no ERP_URL configured)")
		return
	}

	s.client = NewClient(s.cfg.URL, s.cfg.Database, s.cfg.Username, s.cfg.Password)

	go func() {
		// Initial sync shortly after boot, then on the interval
		timer := time.NewTimer(10 * time.Second)
		defer timer.Stop()
		select {
		case <-timer.C:
			s.runOnce()
		case <-s.stop:
			return
		}

		ticker := time.NewTicker(time.Duration(s.cfg.SyncInterval) * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stop:
				return
			}
		}
	}()
	log.Printf("✅ ERP sync started (every %d min)", s.cfg.SyncInterval)
}

// Stop terminates the background loop
func (s *SyncService) Stop() {
	close(s.stop)
}

func (s *SyncService) runOnce() {
	if _, err := s.client.Authenticate(); err != nil {
		log.Printf("❌ ERP sync: %v", err)
		return
	}

	if err := s.syncComponents(); err != nil {
		log.Printf("❌ ERP component sync: %v", err)
	}
	if err := s.syncBoms(); err != nil {
		log.Printf("❌ ERP BOM sync: %v", err)
	}
}

// syncComponents upserts every ERP product that carries a part number
func (s *SyncService) syncComponents() error {
	var products []erpProduct
	domain := []interface{}{[]interface{}{"default_code", "!=", false}}
	if err := s.client.SearchRead("product.product", domain, []string{"default_code", "name"}, 0, 0, &products); err != nil {
		return err
	}

	count := 0
	for _, p := range products {
		if p.DefaultCode == "" {
			continue
		}
		raw, _ := json.Marshal(p)
		component := models.Component{
			Code:        p.DefaultCode,
			Description: p.Name,
			ErpID:       p.ID,
			RawData:     raw,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "erp_id", "raw_data", "updated_at"}),
		}).Create(&component).Error
		if err != nil {
			log.Printf("⚠️ ERP sync: failed to upsert component %s: %v", p.DefaultCode, err)
			continue
		}
		count++
	}
	log.Printf("🔄 ERP sync: %d components mirrored", count)
	return nil
}

// syncBoms mirrors mrp.bom headers and their lines. Line depth is not
// exposed by the flat line model, so mirrored items land at level 1.
func (s *SyncService) syncBoms() error {
	var erpBoms []erpBom
	if err := s.client.SearchRead("mrp.bom", nil, []string{"display_name"}, 0, 0, &erpBoms); err != nil {
		return err
	}

	for _, eb := range erpBoms {
		// erp_id is not unique locally (authored BOMs carry zero), so
		// upsert via lookup instead of ON CONFLICT
		var local models.Bom
		err := s.db.Where("erp_id = ?", eb.ID).First(&local).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			local = models.Bom{Title: eb.DisplayName, ErpID: eb.ID}
			err = s.db.Create(&local).Error
		} else if err == nil && local.Title != eb.DisplayName {
			local.Title = eb.DisplayName
			err = s.db.Save(&local).Error
		}
		if err != nil {
			log.Printf("⚠️ ERP sync: failed to upsert BOM %s: %v", eb.DisplayName, err)
			continue
		}

		if err := s.syncBomLines(eb.ID, local.ID); err != nil {
			log.Printf("⚠️ ERP sync: lines of BOM %s: %v", eb.DisplayName, err)
		}
	}
	log.Printf("🔄 ERP sync: %d BOMs mirrored", len(erpBoms))
	return nil
}

func (s *SyncService) syncBomLines(erpBomID int64, localBomID string) error {
	var lines []erpBomLine
	domain := []interface{}{[]interface{}{"bom_id", "=", erpBomID}}
	if err := s.client.SearchRead("mrp.bom.line", domain, []string{"bom_id", "product_id", "product_qty"}, 0, 0, &lines); err != nil {
		return err
	}

	// Full replace: the ERP owns this list
	if err := s.db.Where("bom_id = ?", localBomID).Delete(&models.BomItem{}).Error; err != nil {
		return err
	}

	for _, line := range lines {
		productErpID, ok := relationID(line.ProductID)
		if !ok {
			continue
		}
		var component models.Component
		if err := s.db.Where("erp_id = ?", productErpID).First(&component).Error; err != nil {
			// Product not mirrored (no part number); skip the line
			continue
		}
		qty := int(line.Qty)
		if qty < 1 {
			qty = 1
		}
		item := models.BomItem{
			BomID:       localBomID,
			ComponentID: component.ID,
			Level:       1,
			Quantity:    qty,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create BOM item: %w", err)
		}
	}
	return nil
}

// relationID extracts the id from an Odoo many2one tuple [id, name]
func relationID(rel []interface{}) (int64, bool) {
	if len(rel) == 0 {
		return 0, false
	}
	switch v := rel[0].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}
