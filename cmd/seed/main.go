// Seed inicial: esquema, usuarios admin/staff y las categorías base.
// Idempotente: puede ejecutarse varias veces sin duplicar datos.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Despensa-api/pkg/config"
	"github.com/jhoicas/Despensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	users := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", entity.RoleAdmin},
		{"staff", "staff123", entity.RoleStaff},
	}
	for _, u := range users {
		existing, err := userRepo.GetByUsername(u.username)
		if err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("buscar usuario")
		}
		if existing != nil {
			log.Info().Str("username", u.username).Msg("usuario ya existe, omitiendo")
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		now := time.Now()
		err = userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("crear usuario")
		}
		log.Info().Str("username", u.username).Str("role", u.role).Msg("usuario creado")
	}

	categoryNames := []string{"Flour", "Snacks", "Veg", "Fruits", "Packing", "Others"}
	existing, err := categoryRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar categorías")
	}
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[c.Name] = true
	}
	for _, name := range categoryNames {
		if have[name] {
			log.Info().Str("category", name).Msg("categoría ya existe, omitiendo")
			continue
		}
		now := time.Now()
		err := categoryRepo.Create(&entity.Category{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		log.Info().Str("category", name).Msg("categoría creada")
	}

	log.Info().Msg("seed completado")
}
