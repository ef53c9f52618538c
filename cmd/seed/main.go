// Package main provides data seeding for the Versus Arena engine.
//
// The command is idempotent: it bootstraps the default admin account and the
// initial engine settings (global voting duration, rate-limit rule table),
// then optionally loads a YAML fixture file with users and submissions for
// development environments.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"versus-arena.io/arena/ent"
	"versus-arena.io/arena/ent/user"
	"versus-arena.io/arena/internal/config"
	"versus-arena.io/arena/internal/governance/ratelimit"
	"versus-arena.io/arena/internal/infrastructure"
	"versus-arena.io/arena/internal/pkg/logger"
	"versus-arena.io/arena/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before
	// seeding. This command only performs idempotent data bootstrap.

	if err := seedEngineSettings(ctx, client); err != nil {
		return fmt.Errorf("seed engine settings: %w", err)
	}
	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if path := fixturePath(); path != "" {
		if err := loadFixtures(ctx, client, path); err != nil {
			return fmt.Errorf("load fixtures %s: %w", path, err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func fixturePath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return os.Getenv("SEED_FIXTURES")
}

// defaultRateLimitRules is the initial per-minute budget table. Admins tune
// it at runtime through the versioned settings store.
func defaultRateLimitRules() map[string]interface{} {
	rule := func(perMinute int) map[string]interface{} {
		return map[string]interface{}{
			"scope":              ratelimit.ScopeUser,
			"allowed_per_minute": perMinute,
			"enabled":            true,
		}
	}
	// Admin procedures are deliberately absent: they ship unlimited and can
	// be added to the table at runtime if needed.
	return map[string]interface{}{
		ratelimit.ProcedureBattlePropose: rule(5),
		ratelimit.ProcedureBattleRespond: rule(10),
		ratelimit.ProcedureVoteCast:      rule(30),
		ratelimit.ProcedureCommentCreate: rule(10),
	}
}

// seedEngineSettings writes the initial settings documents, version 1 each.
// Existing keys are left untouched so reseeding never clobbers admin tuning.
func seedEngineSettings(ctx context.Context, client *ent.Client) error {
	store := settings.NewStore(client)

	documents := map[string]map[string]interface{}{
		settings.KeyVotingDefaultDuration: {"days": 5},
		settings.KeyRateLimitRules:        defaultRateLimitRules(),
	}

	for key, body := range documents {
		if _, ok, err := store.Get(ctx, key); err != nil {
			return fmt.Errorf("check setting %s: %w", key, err)
		} else if ok {
			logger.Info("Setting already present, skipping", zap.String("key", key))
			continue
		}
		version, err := store.Put(ctx, key, body, "system-seed")
		if err != nil {
			return fmt.Errorf("put setting %s: %w", key, err)
		}
		logger.Info("Seeded engine setting", zap.String("key", key), zap.Int("version", version))
	}
	return nil
}

// seedDefaultAdmin creates the default admin account (admin/admin). Change
// the password immediately in any non-development environment.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID("user-default-admin").
		SetUsername("admin").
		SetEmail("admin@localhost").
		SetEmailVerified(true).
		SetPasswordHash(string(hashBytes)).
		SetRole(user.RoleADMIN).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("username", "admin"))
	return nil
}

// Fixture file shape, YAML.
type fixtures struct {
	Users []struct {
		ID            string `yaml:"id"`
		Username      string `yaml:"username"`
		Email         string `yaml:"email"`
		EmailVerified bool   `yaml:"email_verified"`
		Password      string `yaml:"password"`
		Role          string `yaml:"role"`
	} `yaml:"users"`
	Submissions []struct {
		ID        string `yaml:"id"`
		OwnerID   string `yaml:"owner_id"`
		Title     string `yaml:"title"`
		MediaPath string `yaml:"media_path"`
	} `yaml:"submissions"`
}

// loadFixtures creates users and submissions from a YAML file, skipping rows
// that already exist.
func loadFixtures(ctx context.Context, client *ent.Client, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fx fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	for _, u := range fx.Users {
		hashBytes, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		role := user.RoleUSER
		if u.Role == user.RoleADMIN.String() {
			role = user.RoleADMIN
		}
		_, err = client.User.Create().
			SetID(u.ID).
			SetUsername(u.Username).
			SetEmail(u.Email).
			SetEmailVerified(u.EmailVerified).
			SetPasswordHash(string(hashBytes)).
			SetRole(role).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("create user %s: %w", u.Username, err)
		}
		logger.Info("Seeded user", zap.String("username", u.Username))
	}

	for _, s := range fx.Submissions {
		create := client.Submission.Create().
			SetID(s.ID).
			SetOwnerID(s.OwnerID).
			SetTitle(s.Title)
		if s.MediaPath != "" {
			create.SetMediaPath(s.MediaPath)
		}
		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("create submission %s: %w", s.ID, err)
		}
		logger.Info("Seeded submission", zap.String("submission_id", s.ID))
	}

	return nil
}
