// server/internal/database/seeder.go
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"taller-api-server/internal/auth"
	"taller-api-server/internal/models"
	"taller-api-server/internal/store"
)

// SeedStores groups the stores the seeder writes to.
type SeedStores struct {
	Profiles  store.ProfileStore
	Mechanics store.MechanicStore
	Zones     store.ZoneStore
	Catalog   store.CatalogStore
	Parts     store.PartStore
	Tools     store.ToolStore
}

// Seed bootstraps a fresh database: one user per role, the reference
// tables and a starter stock of parts and tools. Skipped entirely when
// the admin account already exists.
func Seed(ctx context.Context, s SeedStores, adminPassword string, log *logrus.Logger) error {
	if _, err := s.Profiles.GetByUsername(ctx, "admin"); err == nil {
		log.Info("seed data already present, skipping")
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	log.Info("seeding database")

	now := time.Now()

	users := []struct {
		username string
		name     string
		role     models.Role
	}{
		{"admin", "Administrator", models.RoleAdmin},
		{"recepcion", "Carla Soto", models.RoleReceptionist},
		{"jefe", "Pedro Fuentes", models.RoleShopManager},
		{"mecanico1", "Luis Rojas", models.RoleMechanic},
		{"mecanico2", "Ana Morales", models.RoleMechanic},
		{"bodega", "Jorge Castro", models.RoleWarehouseManager},
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	mechanicSpecialties := []string{"engine", "electrical"}
	mechanicIdx := 0
	for _, u := range users {
		profile := &models.UserProfile{
			ProfileID: seedID("USR"),
			Username:  u.username,
			Name:      u.name,
			Email:     u.username + "@taller.cl",
			Password:  hashed,
			Role:      u.role,
			Status:    "active",
			CreatedAt: now,
		}
		if err := s.Profiles.Create(ctx, profile); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		if u.role == models.RoleMechanic {
			mechanic := &models.Mechanic{
				MechanicID: seedID("MEC"),
				ProfileID:  profile.ProfileID,
				Name:       u.name,
				Specialty:  mechanicSpecialties[mechanicIdx%len(mechanicSpecialties)],
			}
			mechanicIdx++
			if err := s.Mechanics.Create(ctx, mechanic); err != nil {
				return fmt.Errorf("seed mechanic %s: %w", u.username, err)
			}
		}
	}

	for i := 1; i <= 4; i++ {
		zone := &models.WorkZone{
			ZoneID:   fmt.Sprintf("zone-%d", i),
			Name:     fmt.Sprintf("Zona %d", i),
			Capacity: 5,
			Active:   true,
		}
		if err := s.Zones.Create(ctx, zone); err != nil {
			return fmt.Errorf("seed zone %d: %w", i, err)
		}
	}

	specialties := []string{
		"engine", "transmission", "brakes", "suspension", "exhaust",
		"electrical", "electronic", "fuel", "general",
	}
	for _, name := range specialties {
		if err := s.Catalog.CreateSpecialty(ctx, &models.Specialty{Name: name}); err != nil {
			return err
		}
	}

	brands := map[string][]string{
		"Toyota":    {"Corolla", "Hilux", "Yaris"},
		"Chevrolet": {"Sail", "Spark"},
		"Hyundai":   {"Accent", "Tucson"},
		"Nissan":    {"Versa", "Qashqai"},
	}
	for brand, brandModels := range brands {
		if err := s.Catalog.CreateBrand(ctx, &models.VehicleBrand{Name: brand}); err != nil {
			return err
		}
		for _, model := range brandModels {
			if err := s.Catalog.CreateModel(ctx, &models.VehicleModel{Brand: brand, Name: model}); err != nil {
				return err
			}
		}
	}

	// Prices in CLP.
	services := []models.CatalogService{
		{Name: "Cambio de aceite", BasePrice: 25000},
		{Name: "Cambio de pastillas de freno", BasePrice: 45000},
		{Name: "Alineacion y balanceo", BasePrice: 30000},
		{Name: "Revision general", BasePrice: 20000},
		{Name: "Cambio de correa de distribucion", BasePrice: 120000},
	}
	for i := range services {
		if err := s.Catalog.CreateService(ctx, &services[i]); err != nil {
			return err
		}
	}

	parts := []models.Part{
		{Code: "FIL-001", Name: "Filtro de aceite", Stock: 20, PriceBuy: 3500, PriceSell: 6000, Location: "A-1"},
		{Code: "FIL-002", Name: "Filtro de aire", Stock: 15, PriceBuy: 4200, PriceSell: 7500, Location: "A-2"},
		{Code: "PAS-001", Name: "Pastillas de freno delanteras", Stock: 8, PriceBuy: 18000, PriceSell: 28000, Location: "B-1"},
		{Code: "BUJ-001", Name: "Bujia de encendido", Stock: 30, PriceBuy: 2500, PriceSell: 4500, Location: "B-3"},
		// Seeded low so the alert path is visible from day one.
		{Code: "COR-001", Name: "Correa de distribucion", Stock: 2, PriceBuy: 22000, PriceSell: 35000, Location: "C-1"},
		{Code: "AMO-001", Name: "Amortiguador delantero", Stock: 1, PriceBuy: 35000, PriceSell: 52000, Location: "C-2"},
	}
	for i := range parts {
		p := parts[i]
		p.Status = p.StatusForStock()
		p.ReceivedAt = now
		if err := s.Parts.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed part %s: %w", p.Code, err)
		}
	}

	tools := []models.Tool{
		{Code: "TOR-001", Name: "Torquimetro 1/2", Location: "Pañol 1"},
		{Code: "SCA-001", Name: "Scanner OBD2", Location: "Pañol 1"},
		{Code: "GAT-001", Name: "Gata hidraulica 3T", Location: "Pañol 2"},
		{Code: "COM-001", Name: "Compresor de resortes", Location: "Pañol 2"},
	}
	for i := range tools {
		t := tools[i]
		t.Status = models.ToolOperational
		t.AcquiredAt = now
		if err := s.Tools.Create(ctx, &t); err != nil {
			return fmt.Errorf("seed tool %s: %w", t.Code, err)
		}
	}

	log.Info("database seeded")
	return nil
}

func seedID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}
